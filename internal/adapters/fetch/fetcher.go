// Package fetch implements the ImageFetcher port over HTTP.
package fetch

import (
	"context"
	"errors"
	"io"
	"net/http"

	"go.trai.ch/propstore/internal/core/domain"
	"go.trai.ch/zerr"
)

// Fetcher implements ports.ImageFetcher with a plain HTTP GET.
// Per-request deadlines come from the caller's context.
type Fetcher struct {
	client *http.Client
}

// New creates a Fetcher using a dedicated http.Client.
func New() *Fetcher {
	return NewWithClient(&http.Client{})
}

// NewWithClient creates a Fetcher using client.
func NewWithClient(client *http.Client) *Fetcher {
	return &Fetcher{client: client}
}

// Fetch returns the body of a GET to url. Any non-2xx status is an error.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrImageFetchFailed.Error()), "url", url)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrImageFetchFailed.Error()), "url", url)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		statusErr := zerr.Wrap(errors.New(resp.Status), domain.ErrImageStatus.Error())
		statusErr = zerr.With(statusErr, "status", resp.StatusCode)
		return nil, zerr.With(statusErr, "url", url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrImageFetchFailed.Error()), "url", url)
	}
	return data, nil
}
