// Package recommend ranks products to suggest for a shopping cart from
// category membership and co-purchase history.
package recommend

import (
	"context"
	"time"

	"go.trai.ch/propstore/internal/core/domain"
	"go.trai.ch/propstore/internal/core/ports"
	"go.trai.ch/zerr"
)

// Engine computes cart suggestions. It keeps no state between calls and is
// safe for concurrent use as long as its catalog is.
type Engine struct {
	catalog ports.Catalog
	carts   ports.CartSource
	tracer  ports.Tracer
	metrics ports.Metrics
}

// New creates an Engine.
func New(catalog ports.Catalog, carts ports.CartSource, tracer ports.Tracer, metrics ports.Metrics) *Engine {
	return &Engine{
		catalog: catalog,
		carts:   carts,
		tracer:  tracer,
		metrics: metrics,
	}
}

// Suggest returns up to three products of the cart's primary category,
// best co-purchase match first. The result is never nil.
func (e *Engine) Suggest(ctx context.Context, items []domain.CartItem) ([]domain.Product, error) {
	scored, err := e.Score(ctx, items)
	if err != nil {
		return []domain.Product{}, err
	}

	products := make([]domain.Product, len(scored))
	for i, s := range scored {
		products[i] = s.Product
	}
	return products, nil
}

// SuggestForSession loads the stored cart of a session and suggests for it.
func (e *Engine) SuggestForSession(ctx context.Context, sessionID string) ([]domain.Product, error) {
	items, err := e.carts.ListCartItems(ctx, sessionID)
	if err != nil {
		err = zerr.Wrap(err, domain.ErrCollaboratorUnavailable.Error())
		return []domain.Product{}, zerr.With(err, "session_id", sessionID)
	}
	return e.Suggest(ctx, items)
}

// Score returns the ranked candidates with their final scores. Without
// co-purchase data the first candidates are returned unscored in fetch order.
func (e *Engine) Score(ctx context.Context, items []domain.CartItem) (result []domain.ScoredCandidate, err error) {
	start := time.Now()
	outcome := ports.OutcomeEmpty
	ctx, span := e.tracer.Start(ctx, "recommend.score", ports.WithAttribute("cart_items", len(items)))
	defer func() {
		if err != nil {
			outcome = ports.OutcomeError
			span.RecordError(err)
		}
		span.SetAttribute("outcome", outcome)
		span.End()
		e.metrics.SuggestionServed(outcome, time.Since(start))
	}()

	if len(items) == 0 {
		return nil, nil
	}

	cartIDs := distinctProducts(items)
	category, ok := primaryCategory(items)
	if !ok {
		return nil, nil
	}
	span.SetAttribute("category", category)

	candidates, err := e.catalog.ListProductsByCategory(ctx, category, cartIDs)
	if err != nil {
		err = zerr.Wrap(err, domain.ErrCollaboratorUnavailable.Error())
		return nil, zerr.With(err, "category", category)
	}
	candidates = withoutProducts(candidates, cartIDs)
	if len(candidates) == 0 {
		return nil, nil
	}

	rows, err := e.catalog.ListOrdersTouching(ctx, cartIDs)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrCollaboratorUnavailable.Error())
	}

	if len(rows) == 0 {
		outcome = ports.OutcomeFallback
		limit := min(len(candidates), domain.MaxSuggestions)
		result = make([]domain.ScoredCandidate, limit)
		for i := range limit {
			result[i] = domain.ScoredCandidate{Product: candidates[i]}
		}
		return result, nil
	}

	scored := scoreCandidates(candidates, cartIDs, buildOrderSets(rows))
	normalize(scored)
	outcome = ports.OutcomeScored
	return rank(scored, domain.MaxSuggestions), nil
}

func withoutProducts(products []domain.Product, ids []int64) []domain.Product {
	excluded := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		excluded[id] = struct{}{}
	}
	out := products[:0:0]
	for _, p := range products {
		if _, skip := excluded[p.ID]; !skip {
			out = append(out, p)
		}
	}
	return out
}
