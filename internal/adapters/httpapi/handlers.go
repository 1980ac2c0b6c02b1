package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.trai.ch/propstore/internal/core/domain"
	"go.trai.ch/zerr"
)

type errorResponse struct {
	Error string `json:"error"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

type suggestionRequest struct {
	Items []domain.CartItem `json:"items"`
}

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, healthResponse{Status: domain.HealthHealthy, Service: s.service})
}

func (s *Server) cacheStats(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.cache.Stats())
}

func (s *Server) cacheHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.cache.Health())
}

func (s *Server) cacheLoad(w http.ResponseWriter, r *http.Request) {
	if !s.reloads.Allow() {
		w.Header().Set("Retry-After", "60")
		s.writeError(w, http.StatusTooManyRequests, domain.ErrReloadThrottled)
		return
	}

	stats, err := s.cache.Reload(r.Context())
	if err != nil {
		s.logger.Error(zerr.Wrap(err, "cache reload failed"))
		s.writeError(w, http.StatusServiceUnavailable, err)
		return
	}
	s.writeJSON(w, http.StatusOK, stats)
}

func (s *Server) image(w http.ResponseWriter, r *http.Request) {
	id, ok := s.productID(w, r)
	if !ok {
		return
	}

	meta, found := s.cache.Metadata(id)
	data, hasData := s.cache.Image(id)
	if !found || !hasData {
		s.writeError(w, http.StatusNotFound, zerr.With(domain.ErrImageNotCached, "product_id", id))
		return
	}

	etag := fmt.Sprintf(`"%016x"`, meta.Digest)
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("Content-Type", http.DetectContentType(data))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) imageMeta(w http.ResponseWriter, r *http.Request) {
	id, ok := s.productID(w, r)
	if !ok {
		return
	}

	meta, found := s.cache.Metadata(id)
	if !found {
		s.writeError(w, http.StatusNotFound, zerr.With(domain.ErrImageNotCached, "product_id", id))
		return
	}
	s.writeJSON(w, http.StatusOK, meta)
}

// cartSuggestions answers for a cart snapshot posted by the caller.
// Engine failures degrade to an empty list.
func (s *Server) cartSuggestions(w http.ResponseWriter, r *http.Request) {
	var req suggestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, zerr.Wrap(err, domain.ErrInvalidCartItem.Error()))
		return
	}
	for _, item := range req.Items {
		if item.ProductID <= 0 {
			s.writeError(w, http.StatusBadRequest, zerr.With(domain.ErrInvalidCartItem, "product_id", item.ProductID))
			return
		}
	}

	products, err := s.suggester.Suggest(r.Context(), req.Items)
	if err != nil {
		s.logger.Error(zerr.Wrap(err, "cart suggestions failed"))
		products = []domain.Product{}
	}
	s.writeJSON(w, http.StatusOK, products)
}

// sessionSuggestions answers for the stored cart of ?sessionId=.
func (s *Server) sessionSuggestions(w http.ResponseWriter, r *http.Request) {
	session := r.URL.Query().Get("sessionId")
	if session == "" {
		s.writeError(w, http.StatusBadRequest, domain.ErrSessionRequired)
		return
	}

	products, err := s.suggester.SuggestForSession(r.Context(), session)
	if err != nil {
		s.logger.Error(zerr.With(zerr.Wrap(err, "cart suggestions failed"), "session_id", session))
		products = []domain.Product{}
	}
	s.writeJSON(w, http.StatusOK, products)
}

func (s *Server) productID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "productID")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, zerr.With(zerr.New("invalid product id"), "product_id", raw))
		return 0, false
	}
	return id, true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error(zerr.Wrap(err, "failed to encode response"))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	msg := err.Error()
	if m, ok := err.(interface{ Message() string }); ok && m.Message() != "" {
		msg = m.Message()
	}
	s.writeJSON(w, status, errorResponse{Error: msg})
}
