package supervisor_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thejerf/suture/v4"
	"go.trai.ch/propstore/internal/adapters/supervisor"
	"go.trai.ch/propstore/internal/core/domain"
	"go.trai.ch/propstore/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type fakeServer struct {
	listenErr error
	stopped   chan struct{}
	once      sync.Once
	shutdowns int
	mu        sync.Mutex
}

func newFakeServer(listenErr error) *fakeServer {
	return &fakeServer{listenErr: listenErr, stopped: make(chan struct{})}
}

func (f *fakeServer) ListenAndServe() error {
	if f.listenErr != nil {
		return f.listenErr
	}
	<-f.stopped
	return http.ErrServerClosed
}

func (f *fakeServer) Shutdown(context.Context) error {
	f.mu.Lock()
	f.shutdowns++
	f.mu.Unlock()
	f.once.Do(func() { close(f.stopped) })
	return nil
}

type fakeWarmer struct {
	stats domain.CacheStats
	err   error
	calls chan struct{}
}

func (f *fakeWarmer) Initialize(context.Context) (domain.CacheStats, error) {
	if f.calls != nil {
		f.calls <- struct{}{}
	}
	return f.stats, f.err
}

func TestHTTPService_ShutsDownOnCancel(t *testing.T) {
	server := newFakeServer(nil)
	svc := supervisor.NewHTTPService(server, time.Second)

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() { done <- svc.Serve(ctx) }()

	cancel()
	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("service did not stop")
	}

	server.mu.Lock()
	defer server.mu.Unlock()
	assert.Equal(t, 1, server.shutdowns)
}

func TestHTTPService_ListenFailure(t *testing.T) {
	svc := supervisor.NewHTTPService(newFakeServer(errors.New("address already in use")), 0)

	err := svc.Serve(t.Context())
	require.Error(t, err)
	assert.ErrorContains(t, err, "http server failed")
	assert.ErrorContains(t, err, "address already in use")
	assert.Equal(t, "http-server", svc.String())
}

func TestWarmupService(t *testing.T) {
	t.Run("logs stats and does not restart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		log := mocks.NewMockLogger(ctrl)
		log.EXPECT().Info("image cache warm: 3 images from 2 urls")

		svc := supervisor.NewWarmupService(&fakeWarmer{stats: domain.CacheStats{TotalImages: 3, UniqueURLs: 2}}, log)
		err := svc.Serve(t.Context())
		assert.ErrorIs(t, err, suture.ErrDoNotRestart)
	})

	t.Run("logs failures and does not restart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		log := mocks.NewMockLogger(ctrl)
		log.EXPECT().Error(gomock.Any()).Do(func(err error) {
			assert.ErrorContains(t, err, "image cache warmup failed")
			assert.ErrorContains(t, err, "catalog down")
		})

		svc := supervisor.NewWarmupService(&fakeWarmer{err: errors.New("catalog down")}, log)
		err := svc.Serve(t.Context())
		assert.ErrorIs(t, err, suture.ErrDoNotRestart)
	})
}

func TestTree_RunsServicesUntilCancelled(t *testing.T) {
	var logs bytes.Buffer
	slogger := slog.New(slog.NewTextHandler(&logs, nil))

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	server := newFakeServer(nil)
	warmer := &fakeWarmer{calls: make(chan struct{}, 1)}

	tree := supervisor.NewTree("propstore-test", slogger, time.Second)
	tree.Add(supervisor.NewHTTPService(server, time.Second))
	tree.Add(supervisor.NewWarmupService(warmer, log))

	ctx, cancel := context.WithCancel(t.Context())
	done := make(chan error, 1)
	go func() { done <- tree.Serve(ctx) }()

	select {
	case <-warmer.calls:
	case <-time.After(time.Second):
		t.Fatal("warmup did not run")
	}
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("tree did not stop")
	}

	server.mu.Lock()
	defer server.mu.Unlock()
	assert.Equal(t, 1, server.shutdowns)
	assert.False(t, strings.Contains(logs.String(), "panic"))
}
