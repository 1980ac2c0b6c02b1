// Package metrics exposes engine measurements as Prometheus collectors.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.trai.ch/propstore/internal/core/domain"
	"go.trai.ch/propstore/internal/core/ports"
)

const namespace = "propstore"

// Collector implements ports.Metrics on a private Prometheus registry.
type Collector struct {
	registry *prometheus.Registry

	imagesLoaded       *prometheus.CounterVec
	imageBytes         prometheus.Counter
	pipelineRuns       *prometheus.CounterVec
	pipelineDuration   prometheus.Histogram
	suggestions        *prometheus.CounterVec
	suggestionDuration prometheus.Histogram
}

// New creates a Collector with the Go runtime and process collectors registered.
func New() *Collector {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Collector{
		registry: reg,
		imagesLoaded: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "image_loads_total",
				Help:      "Product image loads by outcome (fetched, deduped, failed)",
			},
			[]string{"outcome"},
		),
		imageBytes: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "image_fetched_bytes_total",
				Help:      "Bytes downloaded from image sources",
			},
		),
		pipelineRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "image_cache_pipeline_runs_total",
				Help:      "Image cache pipeline runs by result",
			},
			[]string{"result"},
		),
		pipelineDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "image_cache_pipeline_duration_seconds",
				Help:      "Duration of image cache pipeline runs",
				Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
			},
		),
		suggestions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cart_suggestions_total",
				Help:      "Cart suggestion queries by outcome",
			},
			[]string{"outcome"},
		),
		suggestionDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "cart_suggestion_duration_seconds",
				Help:      "Duration of cart suggestion queries",
				Buckets:   prometheus.DefBuckets,
			},
		),
	}
}

// ImageLoaded records the outcome of one product's image load.
func (c *Collector) ImageLoaded(outcome string, sizeBytes int) {
	c.imagesLoaded.WithLabelValues(outcome).Inc()
	if outcome == ports.OutcomeFetched {
		c.imageBytes.Add(float64(sizeBytes))
	}
}

// PipelineFinished records one run of the image cache pipeline.
func (c *Collector) PipelineFinished(d time.Duration, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	c.pipelineRuns.WithLabelValues(result).Inc()
	c.pipelineDuration.Observe(d.Seconds())
}

// SuggestionServed records one suggestion query.
func (c *Collector) SuggestionServed(outcome string, d time.Duration) {
	c.suggestions.WithLabelValues(outcome).Inc()
	c.suggestionDuration.Observe(d.Seconds())
}

// ObserveCache exposes the cache totals as gauges read at scrape time.
func (c *Collector) ObserveCache(stats func() domain.CacheStats) {
	factory := promauto.With(c.registry)
	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "image_cache_images",
		Help:      "Cached product images",
	}, func() float64 { return float64(stats().TotalImages) })
	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "image_cache_size_bytes",
		Help:      "Summed size of cached images",
	}, func() float64 { return float64(stats().TotalSizeBytes) })
	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "image_cache_unique_urls",
		Help:      "Distinct source URLs in the cache",
	}, func() float64 { return float64(stats().UniqueURLs) })
	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "image_cache_initialized",
		Help:      "1 once the image cache finished initializing",
	}, func() float64 {
		if stats().Initialized {
			return 1
		}
		return 0
	})
}

// Registry returns the registry backing the collectors.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}
