package fetch_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/propstore/internal/adapters/fetch"
	"go.trai.ch/propstore/internal/core/domain"
)

func TestFetcher_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok.png":
			w.Header().Set("Content-Type", "image/png")
			_, _ = w.Write([]byte("png-bytes"))
		case "/empty.png":
			w.WriteHeader(http.StatusNoContent)
		case "/missing.png":
			http.NotFound(w, r)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	t.Cleanup(srv.Close)

	tests := []struct {
		name    string
		path    string
		want    []byte
		wantErr string
	}{
		{name: "success", path: "/ok.png", want: []byte("png-bytes")},
		{name: "2xx without body", path: "/empty.png", want: []byte{}},
		{name: "not found", path: "/missing.png", wantErr: "404 Not Found"},
		{name: "server error", path: "/boom.png", wantErr: "500 Internal Server Error"},
	}

	f := fetch.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := f.Fetch(t.Context(), srv.URL+tt.path)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.ErrorContains(t, err, domain.ErrImageStatus.Error())
				assert.ErrorContains(t, err, tt.wantErr)
				assert.Nil(t, data)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, data)
		})
	}
}

func TestFetcher_Fetch_Timeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		srv.Close()
	})

	ctx, cancel := context.WithTimeout(t.Context(), 50*time.Millisecond)
	defer cancel()

	_, err := fetch.New().Fetch(ctx, srv.URL+"/slow.png")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrImageFetchFailed.Error())
}

func TestFetcher_Fetch_InvalidURL(t *testing.T) {
	_, err := fetch.New().Fetch(t.Context(), "://not-a-url")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrImageFetchFailed.Error())
}
