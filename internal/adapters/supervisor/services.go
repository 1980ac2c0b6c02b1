package supervisor

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/thejerf/suture/v4"
	"go.trai.ch/propstore/internal/core/domain"
	"go.trai.ch/propstore/internal/core/ports"
	"go.trai.ch/zerr"
)

// HTTPServer is the part of *http.Server driven by HTTPService.
type HTTPServer interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// HTTPService serves HTTP until its context is done, then shuts the server
// down gracefully.
type HTTPService struct {
	server   HTTPServer
	shutdown time.Duration
}

// NewHTTPService wraps server. A non-positive shutdown timeout uses the default of 10s.
func NewHTTPService(server HTTPServer, shutdown time.Duration) *HTTPService {
	if shutdown <= 0 {
		shutdown = defaultShutdownTimeout
	}
	return &HTTPService{server: server, shutdown: shutdown}
}

// Serve implements suture.Service.
func (h *HTTPService) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		err := h.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		errCh <- err
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return zerr.Wrap(err, "http server failed")
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), h.shutdown)
		defer cancel()
		if err := h.server.Shutdown(shutdownCtx); err != nil {
			return zerr.Wrap(err, "http server shutdown failed")
		}
		<-errCh
		return ctx.Err()
	}
}

func (h *HTTPService) String() string {
	return "http-server"
}

// Warmer populates the image cache.
type Warmer interface {
	Initialize(ctx context.Context) (domain.CacheStats, error)
}

// WarmupService runs the image cache pipeline once in the background.
// Failures are logged and never restart the service or stop the tree.
type WarmupService struct {
	cache  Warmer
	logger ports.Logger
}

// NewWarmupService creates a WarmupService.
func NewWarmupService(cache Warmer, logger ports.Logger) *WarmupService {
	return &WarmupService{cache: cache, logger: logger}
}

// Serve implements suture.Service.
func (w *WarmupService) Serve(ctx context.Context) error {
	stats, err := w.cache.Initialize(ctx)
	switch {
	case ctx.Err() != nil:
		return ctx.Err()
	case err != nil:
		w.logger.Error(zerr.Wrap(err, "image cache warmup failed"))
	default:
		w.logger.Info(fmt.Sprintf("image cache warm: %d images from %d urls", stats.TotalImages, stats.UniqueURLs))
	}
	return suture.ErrDoNotRestart
}

func (w *WarmupService) String() string {
	return "image-cache-warmup"
}
