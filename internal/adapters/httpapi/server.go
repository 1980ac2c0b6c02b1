// Package httpapi exposes the image cache and the cart suggestions over HTTP.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.trai.ch/propstore/internal/core/domain"
	"go.trai.ch/propstore/internal/core/ports"
	"golang.org/x/time/rate"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// ImageCache is the part of the image cache engine served over HTTP.
type ImageCache interface {
	Stats() domain.CacheStats
	Health() domain.CacheHealth
	Reload(ctx context.Context) (domain.CacheStats, error)
	Image(productID int64) ([]byte, bool)
	Metadata(productID int64) (domain.ImageMetadata, bool)
}

// Suggester is the part of the recommendation engine served over HTTP.
type Suggester interface {
	Suggest(ctx context.Context, items []domain.CartItem) ([]domain.Product, error)
	SuggestForSession(ctx context.Context, sessionID string) ([]domain.Product, error)
}

// Options configures a Server.
type Options struct {
	ServiceName string
	// ReloadPerMinute caps /cache/load calls. Non-positive values disable the cap.
	ReloadPerMinute int
}

// Server holds the HTTP handlers.
type Server struct {
	cache     ImageCache
	suggester Suggester
	logger    ports.Logger
	metrics   http.Handler
	service   string
	reloads   *rate.Limiter
}

// NewServer creates a Server. A nil metrics handler leaves /metrics unrouted.
func NewServer(cache ImageCache, suggester Suggester, logger ports.Logger, metrics http.Handler, opts Options) *Server {
	reloads := rate.NewLimiter(rate.Inf, 0)
	if opts.ReloadPerMinute > 0 {
		reloads = rate.NewLimiter(rate.Every(time.Minute/time.Duration(opts.ReloadPerMinute)), opts.ReloadPerMinute)
	}
	return &Server{
		cache:     cache,
		suggester: suggester,
		logger:    logger,
		metrics:   metrics,
		service:   opts.ServiceName,
		reloads:   reloads,
	}
}

// Routes builds the router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(chimiddleware.Recoverer)

	r.Get("/health", s.health)

	r.Route("/cache", func(r chi.Router) {
		r.Get("/stats", s.cacheStats)
		r.Get("/health", s.cacheHealth)
		r.Get("/load", s.cacheLoad)
		r.Post("/load", s.cacheLoad)
		r.Get("/images/{productID}", s.image)
		r.Get("/images/{productID}/meta", s.imageMeta)
	})

	r.Route("/cart", func(r chi.Router) {
		r.Get("/suggestions", s.sessionSuggestions)
		r.Post("/suggestions", s.cartSuggestions)
	})

	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}
	return r
}

// requestID echoes the caller's request id or assigns a new one.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
			r.Header.Set(RequestIDHeader, id)
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}
