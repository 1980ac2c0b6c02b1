package app_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/propstore/internal/adapters/telemetry"
	"go.trai.ch/propstore/internal/app"
	"go.trai.ch/propstore/internal/core/domain"
	"go.trai.ch/propstore/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const fixturePath = "../adapters/fixture/testdata/catalog.yaml"

type fakeCache struct {
	stats       domain.CacheStats
	err         error
	initialized int
	reloaded    int
	closed      int
}

func (f *fakeCache) Initialize(context.Context) (domain.CacheStats, error) {
	f.initialized++
	return f.stats, f.err
}

func (f *fakeCache) Reload(context.Context) (domain.CacheStats, error) {
	f.reloaded++
	return f.stats, f.err
}

func (f *fakeCache) Close() { f.closed++ }

type fakeSuggester struct {
	session string
	items   []domain.CartItem
}

func (f *fakeSuggester) Suggest(_ context.Context, items []domain.CartItem) ([]domain.Product, error) {
	f.items = items
	return []domain.Product{{ID: 1, Name: "ad hoc"}}, nil
}

func (f *fakeSuggester) SuggestForSession(_ context.Context, sessionID string) ([]domain.Product, error) {
	f.session = sessionID
	return []domain.Product{{ID: 2, Name: "stored"}}, nil
}

type runnerFunc func(ctx context.Context) error

func (f runnerFunc) Serve(ctx context.Context) error { return f(ctx) }

type fakeSeedStore struct {
	seed    *domain.CatalogSeed
	err     error
	closed  bool
	opened  int
	openErr error
}

func (f *fakeSeedStore) Seed(_ context.Context, seed *domain.CatalogSeed) error {
	f.seed = seed
	return f.err
}

func (f *fakeSeedStore) Close() error {
	f.closed = true
	return nil
}

func (f *fakeSeedStore) opener() app.SeedOpener {
	return func(context.Context) (app.SeedStore, error) {
		f.opened++
		if f.openErr != nil {
			return nil, f.openErr
		}
		return f, nil
	}
}

type fakeFlusher struct {
	err     error
	flushed int
}

func (f *fakeFlusher) Shutdown(context.Context) error {
	f.flushed++
	return f.err
}

type fixtureApp struct {
	app       *app.App
	cache     *fakeCache
	suggester *fakeSuggester
	seeds     *fakeSeedStore
	traces    *fakeFlusher
	catalog   *mocks.MockCatalogStore
	logger    *mocks.MockLogger
}

func newApp(t *testing.T, runner app.Runner) *fixtureApp {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixtureApp{
		cache:     &fakeCache{},
		suggester: &fakeSuggester{},
		seeds:     &fakeSeedStore{},
		traces:    &fakeFlusher{},
		catalog:   mocks.NewMockCatalogStore(ctrl),
		logger:    mocks.NewMockLogger(ctrl),
	}
	if runner == nil {
		runner = runnerFunc(func(context.Context) error { return nil })
	}
	f.app = app.New(f.cache, f.suggester, runner, f.catalog, f.seeds.opener(), f.traces, f.logger, ":3001")
	return f
}

func TestApp_Serve(t *testing.T) {
	t.Run("stops cleanly on cancel", func(t *testing.T) {
		f := newApp(t, runnerFunc(func(ctx context.Context) error {
			<-ctx.Done()
			return ctx.Err()
		}))
		f.logger.EXPECT().Info("serving on :3001")
		f.logger.EXPECT().Info("shutdown complete")

		ctx, cancel := context.WithCancel(t.Context())
		cancel()
		require.NoError(t, f.app.Serve(ctx))
		assert.Equal(t, 1, f.cache.closed)
	})

	t.Run("reports runner failure", func(t *testing.T) {
		f := newApp(t, runnerFunc(func(context.Context) error {
			return errors.New("listen tcp :3001: bind: address already in use")
		}))
		f.logger.EXPECT().Info(gomock.Any())

		err := f.app.Serve(t.Context())
		require.Error(t, err)
		assert.ErrorContains(t, err, "serve failed")
		assert.Equal(t, 1, f.cache.closed)
	})
}

func TestApp_Warm(t *testing.T) {
	f := newApp(t, nil)
	f.cache.stats = domain.CacheStats{TotalImages: 3, Initialized: true}

	stats, err := f.app.Warm(t.Context(), false)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalImages)
	assert.Equal(t, 1, f.cache.initialized)
	assert.Zero(t, f.cache.reloaded)

	_, err = f.app.Warm(t.Context(), true)
	require.NoError(t, err)
	assert.Equal(t, 1, f.cache.reloaded)

	f.cache.err = errors.New("catalog down")
	_, err = f.app.Warm(t.Context(), false)
	require.Error(t, err)
	assert.ErrorContains(t, err, "image cache warmup failed")
}

func TestApp_Suggest(t *testing.T) {
	f := newApp(t, nil)

	products, err := f.app.Suggest(t.Context(), app.SuggestOptions{SessionID: "s-1", Items: []domain.CartItem{{ProductID: 9}}})
	require.NoError(t, err)
	assert.Equal(t, "stored", products[0].Name)
	assert.Equal(t, "s-1", f.suggester.session)
	assert.Nil(t, f.suggester.items)

	items := []domain.CartItem{{ProductID: 4, Category: "cards"}}
	products, err = f.app.Suggest(t.Context(), app.SuggestOptions{Items: items})
	require.NoError(t, err)
	assert.Equal(t, "ad hoc", products[0].Name)
	assert.Equal(t, items, f.suggester.items)
}

func TestApp_Seed(t *testing.T) {
	t.Run("writes fixture", func(t *testing.T) {
		f := newApp(t, nil)
		f.logger.EXPECT().Info("seeded 4 products, 3 orders and 1 carts")

		summary, err := f.app.Seed(t.Context(), fixturePath)
		require.NoError(t, err)
		assert.Equal(t, app.SeedSummary{Products: 4, Orders: 3, Carts: 1}, summary)
		require.NotNil(t, f.seeds.seed)
		assert.True(t, f.seeds.closed)
	})

	t.Run("missing fixture does not open the store", func(t *testing.T) {
		f := newApp(t, nil)

		_, err := f.app.Seed(t.Context(), "does-not-exist.yaml")
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrFixtureReadFailed.Error())
		assert.Zero(t, f.seeds.opened)
	})

	t.Run("store failure", func(t *testing.T) {
		f := newApp(t, nil)
		f.seeds.err = errors.New("disk full")

		_, err := f.app.Seed(t.Context(), fixturePath)
		require.Error(t, err)
		assert.ErrorContains(t, err, "seed failed")
		assert.True(t, f.seeds.closed)
	})
}

func TestApp_Close(t *testing.T) {
	f := newApp(t, nil)
	f.catalog.EXPECT().Close().Return(nil)
	require.NoError(t, f.app.Close())
	assert.Equal(t, 1, f.cache.closed)
	assert.Equal(t, 1, f.traces.flushed)

	f.catalog.EXPECT().Close().Return(errors.New("busy"))
	f.traces.err = errors.New("exporter gone")
	err := f.app.Close()
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to close catalog")
	assert.ErrorContains(t, err, "failed to flush traces")
	assert.Equal(t, 2, f.traces.flushed)
}

func TestApp_CloseFlushesBufferedSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	catalog := mocks.NewMockCatalogStore(ctrl)
	catalog.EXPECT().Close().Return(nil)

	out := &bytes.Buffer{}
	provider, err := telemetry.NewProvider("propstore-test", domain.TelemetrySettings{Stdout: true}, out)
	require.NoError(t, err)

	_, span := provider.Tracer().Start(t.Context(), "imagecache.populate")
	span.End()

	a := app.New(&fakeCache{}, &fakeSuggester{}, nil, catalog, nil, provider, mocks.NewMockLogger(ctrl), ":3001")
	require.NoError(t, a.Close())

	assert.Contains(t, out.String(), `"Name":"imagecache.populate"`)
}
