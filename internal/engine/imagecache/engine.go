// Package imagecache implements the in-memory product image prefetch cache.
package imagecache

import (
	"bytes"
	"context"
	"fmt"
	"slices"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/propstore/internal/core/domain"
	"go.trai.ch/propstore/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const pipelineKey = "pipeline"

// Engine owns the image store and drives the batched fetch pipeline.
//
// Readers (Image, Metadata, Stats, Health) never wait on a running pipeline
// and may observe a partially populated cache while it runs.
type Engine struct {
	catalog ports.Catalog
	fetcher ports.ImageFetcher
	logger  ports.Logger
	tracer  ports.Tracer
	metrics ports.Metrics

	batchSize int
	timeout   time.Duration

	store    *Store
	state    atomic.Int32
	pipeline singleflight.Group
	inflight singleflight.Group

	lifetime context.Context
	cancel   context.CancelFunc
}

// New creates an Engine. Non-positive settings fall back to the defaults.
func New(
	catalog ports.Catalog,
	fetcher ports.ImageFetcher,
	logger ports.Logger,
	tracer ports.Tracer,
	metrics ports.Metrics,
	settings domain.ImageCacheSettings,
) *Engine {
	if settings.BatchSize <= 0 {
		settings.BatchSize = domain.DefaultBatchSize
	}
	if settings.TimeoutMS <= 0 {
		settings.TimeoutMS = domain.DefaultFetchTimeoutMS
	}

	lifetime, cancel := context.WithCancel(context.Background())
	return &Engine{
		catalog:   catalog,
		fetcher:   fetcher,
		logger:    logger,
		tracer:    tracer,
		metrics:   metrics,
		batchSize: settings.BatchSize,
		timeout:   settings.FetchTimeout(),
		store:     NewStore(),
		lifetime:  lifetime,
		cancel:    cancel,
	}
}

// Close stops a running pipeline after its current batch. The cache keeps
// whatever it loaded so far.
func (e *Engine) Close() {
	e.cancel()
}

// State returns the current lifecycle state.
func (e *Engine) State() domain.CacheState {
	return domain.CacheState(e.state.Load())
}

func (e *Engine) setState(s domain.CacheState) {
	e.state.Store(int32(s))
}

// Initialize populates the cache unless it is already initialized.
//
// At most one pipeline runs at a time: a call arriving while Initialize or
// Reload is in flight waits for that run and returns its result. Cancelling
// ctx stops the wait, not the pipeline.
func (e *Engine) Initialize(ctx context.Context) (domain.CacheStats, error) {
	if e.State() == domain.CacheInitialized {
		return e.Stats(), nil
	}
	return e.run(ctx, false)
}

// Reload clears the cache and runs the pipeline again, returning the fresh stats.
func (e *Engine) Reload(ctx context.Context) (domain.CacheStats, error) {
	return e.run(ctx, true)
}

func (e *Engine) run(ctx context.Context, reset bool) (domain.CacheStats, error) {
	ch := e.pipeline.DoChan(pipelineKey, func() (any, error) {
		if reset {
			e.store.Clear()
			e.setState(domain.CacheUninitialized)
		} else if e.State() == domain.CacheInitialized {
			return e.Stats(), nil
		}
		err := e.populate(e.lifetime)
		return e.Stats(), err
	})

	select {
	case res := <-ch:
		stats, _ := res.Val.(domain.CacheStats)
		return stats, res.Err
	case <-ctx.Done():
		return e.Stats(), ctx.Err()
	}
}

func (e *Engine) populate(ctx context.Context) (err error) {
	start := time.Now()
	ctx, span := e.tracer.Start(ctx, "imagecache.populate")
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
		e.metrics.PipelineFinished(time.Since(start), err)
	}()

	e.setState(domain.CacheInitializing)
	e.logger.Info("starting image cache initialization")

	sources, err := e.catalog.ListImageableProducts(ctx)
	if err != nil {
		e.setState(domain.CacheUninitialized)
		err = zerr.Wrap(err, domain.ErrCollaboratorUnavailable.Error())
		e.logger.Error(zerr.Wrap(err, "failed to initialize image cache"))
		return err
	}

	e.logger.Info(fmt.Sprintf("found %d products with images", len(sources)))
	span.SetAttribute("products", len(sources))

	batches := slices.Collect(slices.Chunk(sources, e.batchSize))
	for i, batch := range batches {
		if ctx.Err() != nil {
			e.setState(domain.CacheUninitialized)
			err = zerr.With(zerr.Wrap(ctx.Err(), domain.ErrPipelineAborted.Error()), "batch", i+1)
			e.logger.Warn(fmt.Sprintf("image cache initialization stopped before batch %d/%d", i+1, len(batches)))
			return err
		}
		e.loadBatch(ctx, batch)
		e.logger.Info(fmt.Sprintf("loaded batch %d/%d", i+1, len(batches)))
	}

	e.setState(domain.CacheInitialized)
	stats := e.Stats()
	span.SetAttribute("images", stats.TotalImages)
	e.logger.Info(fmt.Sprintf("image cache initialized: %d images, %.2fMB", stats.TotalImages, stats.TotalSizeMB))
	return nil
}

// loadBatch fetches every image of batch concurrently and returns once all have settled.
func (e *Engine) loadBatch(ctx context.Context, batch []domain.ImageSource) {
	var g errgroup.Group
	g.SetLimit(e.batchSize)
	for _, src := range batch {
		g.Go(func() error {
			e.loadSingleImage(ctx, src)
			return nil
		})
	}
	_ = g.Wait()
}

// loadSingleImage caches the image of one product. A URL that is already
// cached is reused from its first product without a request; concurrent
// loads of the same URL share a single request.
func (e *Engine) loadSingleImage(ctx context.Context, src domain.ImageSource) {
	if e.store.Has(src.ProductID) {
		return
	}
	if donor, ok := e.store.Donor(src.ImageURL); ok {
		e.reuse(src, donor)
		return
	}

	v, err, _ := e.inflight.Do(src.ImageURL, func() (any, error) {
		if donor, ok := e.store.Donor(src.ImageURL); ok {
			return donor, nil
		}
		data, err := e.fetch(ctx, src.ImageURL)
		if err != nil {
			return nil, err
		}
		img := &domain.CachedImage{
			ProductID: src.ProductID,
			SourceURL: src.ImageURL,
			Data:      data,
			SizeBytes: len(data),
			Digest:    xxhash.Sum64(data),
			LoadedAt:  time.Now(),
		}
		if e.store.Put(img) {
			e.metrics.ImageLoaded(ports.OutcomeFetched, img.SizeBytes)
		}
		return img, nil
	})
	if err != nil {
		e.logger.Warn(fmt.Sprintf("failed to load image for product %d: %v", src.ProductID, err))
		e.metrics.ImageLoaded(ports.OutcomeFailed, 0)
		return
	}

	if donor, _ := v.(*domain.CachedImage); donor != nil && donor.ProductID != src.ProductID {
		e.reuse(src, donor)
	}
}

func (e *Engine) reuse(src domain.ImageSource, donor *domain.CachedImage) {
	img := &domain.CachedImage{
		ProductID: src.ProductID,
		SourceURL: src.ImageURL,
		Data:      donor.Data,
		SizeBytes: len(donor.Data),
		Digest:    donor.Digest,
		LoadedAt:  time.Now(),
	}
	if e.store.Put(img) {
		e.metrics.ImageLoaded(ports.OutcomeDeduped, img.SizeBytes)
	}
}

// fetch bounds a single download by the configured timeout. Cancellation of
// the pipeline does not reach an in-flight download.
func (e *Engine) fetch(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), e.timeout)
	defer cancel()
	return e.fetcher.Fetch(ctx, url)
}

// Image returns a copy of the cached content of a product.
func (e *Engine) Image(productID int64) ([]byte, bool) {
	img, ok := e.store.Get(productID)
	if !ok {
		return nil, false
	}
	return bytes.Clone(img.Data), true
}

// Metadata returns the cache entry of a product without its content.
func (e *Engine) Metadata(productID int64) (domain.ImageMetadata, bool) {
	img, ok := e.store.Get(productID)
	if !ok {
		return domain.ImageMetadata{}, false
	}
	meta := img.Metadata()
	for _, id := range e.store.ProductsFor(img.SourceURL) {
		if id != productID {
			meta.SharedWith = append(meta.SharedWith, id)
		}
	}
	return meta, true
}

// Stats summarizes the current store content.
func (e *Engine) Stats() domain.CacheStats {
	images, size, urls := e.store.Totals()
	return domain.CacheStats{
		TotalImages:    images,
		TotalSizeBytes: size,
		TotalSizeMB:    domain.SizeMB(size),
		UniqueURLs:     urls,
		Initialized:    e.State() == domain.CacheInitialized,
	}
}

// Health reports whether the cache finished initializing.
func (e *Engine) Health() domain.CacheHealth {
	stats := e.Stats()
	status := domain.HealthInitializing
	if stats.Initialized {
		status = domain.HealthHealthy
	}
	return domain.CacheHealth{
		Status:     status,
		ImageCount: stats.TotalImages,
		SizeMB:     stats.TotalSizeMB,
	}
}
