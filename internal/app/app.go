// Package app implements the application layer for propstore.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.trai.ch/propstore/internal/adapters/fixture" //nolint:depguard // Wired in app layer
	"go.trai.ch/propstore/internal/core/domain"
	"go.trai.ch/propstore/internal/core/ports"
	"go.trai.ch/zerr"
)

// ImageCache is the image cache engine as driven by the commands.
type ImageCache interface {
	Initialize(ctx context.Context) (domain.CacheStats, error)
	Reload(ctx context.Context) (domain.CacheStats, error)
	Close()
}

// Suggester is the recommendation engine as driven by the commands.
type Suggester interface {
	Suggest(ctx context.Context, items []domain.CartItem) ([]domain.Product, error)
	SuggestForSession(ctx context.Context, sessionID string) ([]domain.Product, error)
}

// Runner runs the long-lived services until its context is done.
type Runner interface {
	Serve(ctx context.Context) error
}

// TraceFlusher flushes buffered spans on shutdown.
type TraceFlusher interface {
	Shutdown(ctx context.Context) error
}

// traceFlushTimeout bounds the span flush in Close.
const traceFlushTimeout = 5 * time.Second

// SeedStore receives a catalog seed.
type SeedStore interface {
	Seed(ctx context.Context, seed *domain.CatalogSeed) error
	Close() error
}

// SeedOpener opens the store the seed command writes to.
type SeedOpener func(ctx context.Context) (SeedStore, error)

// SuggestOptions selects the cart to suggest for. SessionID wins over Items.
type SuggestOptions struct {
	SessionID string
	Items     []domain.CartItem
}

// SeedSummary counts the records written by Seed.
type SeedSummary struct {
	Products int
	Orders   int
	Carts    int
}

// App represents the main application logic.
type App struct {
	cache     ImageCache
	suggester Suggester
	runner    Runner
	catalog   ports.CatalogStore
	openSeed  SeedOpener
	traces    TraceFlusher
	logger    ports.Logger
	addr      string
}

// New creates a new App instance.
func New(
	cache ImageCache,
	suggester Suggester,
	runner Runner,
	catalog ports.CatalogStore,
	openSeed SeedOpener,
	traces TraceFlusher,
	logger ports.Logger,
	addr string,
) *App {
	return &App{
		cache:     cache,
		suggester: suggester,
		runner:    runner,
		catalog:   catalog,
		openSeed:  openSeed,
		traces:    traces,
		logger:    logger,
		addr:      addr,
	}
}

// Serve runs the HTTP API and the background cache warmup until ctx is done.
func (a *App) Serve(ctx context.Context) error {
	defer a.cache.Close()

	a.logger.Info(fmt.Sprintf("serving on %s", a.addr))
	err := a.runner.Serve(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return zerr.Wrap(err, "serve failed")
	}
	a.logger.Info("shutdown complete")
	return nil
}

// Warm runs the image cache pipeline once and returns the resulting stats.
// With reload set the cache is cleared first.
func (a *App) Warm(ctx context.Context, reload bool) (domain.CacheStats, error) {
	run := a.cache.Initialize
	if reload {
		run = a.cache.Reload
	}
	stats, err := run(ctx)
	if err != nil {
		return stats, zerr.Wrap(err, "image cache warmup failed")
	}
	return stats, nil
}

// Suggest returns the suggestions for a stored session cart or an ad hoc one.
func (a *App) Suggest(ctx context.Context, opts SuggestOptions) ([]domain.Product, error) {
	if opts.SessionID != "" {
		return a.suggester.SuggestForSession(ctx, opts.SessionID)
	}
	return a.suggester.Suggest(ctx, opts.Items)
}

// Seed loads a YAML catalog fixture into the store opened by the seed opener.
func (a *App) Seed(ctx context.Context, path string) (summary SeedSummary, err error) {
	fixtureCatalog, err := fixture.Load(path)
	if err != nil {
		return SeedSummary{}, err
	}
	seed := fixtureCatalog.Seed()

	store, err := a.openSeed(ctx)
	if err != nil {
		return SeedSummary{}, err
	}
	defer func() {
		if cerr := store.Close(); cerr != nil && err == nil {
			err = zerr.Wrap(cerr, "failed to close seeded store")
		}
	}()

	if err := store.Seed(ctx, seed); err != nil {
		return SeedSummary{}, zerr.With(zerr.Wrap(err, "seed failed"), "path", path)
	}

	summary = SeedSummary{
		Products: len(seed.Products),
		Orders:   len(seed.Orders),
		Carts:    len(seed.Carts),
	}
	a.logger.Info(fmt.Sprintf("seeded %d products, %d orders and %d carts", summary.Products, summary.Orders, summary.Carts))
	return summary, nil
}

// Close stops any running pipeline, releases the catalog connection and
// flushes the buffered spans.
func (a *App) Close() error {
	a.cache.Close()

	var errs []error
	if err := a.catalog.Close(); err != nil {
		errs = append(errs, zerr.Wrap(err, "failed to close catalog"))
	}

	ctx, cancel := context.WithTimeout(context.Background(), traceFlushTimeout)
	defer cancel()
	if err := a.traces.Shutdown(ctx); err != nil {
		errs = append(errs, zerr.Wrap(err, "failed to flush traces"))
	}
	return errors.Join(errs...)
}
