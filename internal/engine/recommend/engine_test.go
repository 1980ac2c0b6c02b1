package recommend_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/propstore/internal/adapters/telemetry"
	"go.trai.ch/propstore/internal/core/domain"
	"go.trai.ch/propstore/internal/core/ports"
	"go.trai.ch/propstore/internal/core/ports/mocks"
	"go.trai.ch/propstore/internal/engine/recommend"
	"go.uber.org/mock/gomock"
)

type harness struct {
	catalog *mocks.MockCatalog
	carts   *mocks.MockCartSource
	metrics *mocks.MockMetrics
	engine  *recommend.Engine
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)
	h := &harness{
		catalog: mocks.NewMockCatalog(ctrl),
		carts:   mocks.NewMockCartSource(ctrl),
		metrics: mocks.NewMockMetrics(ctrl),
	}
	h.engine = recommend.New(h.catalog, h.carts, telemetry.NewNoOpTracer(), h.metrics)
	return h
}

func names(products []domain.Product) []string {
	out := make([]string, len(products))
	for i, p := range products {
		out[i] = p.Name
	}
	return out
}

func TestSuggest_FallbackWithoutOrderHistory(t *testing.T) {
	h := newHarness(t)
	h.metrics.EXPECT().SuggestionServed(ports.OutcomeFallback, gomock.Any())
	h.catalog.EXPECT().ListProductsByCategory(gomock.Any(), "cards", []int64{1}).Return([]domain.Product{
		{ID: 2, Name: "Marked Deck"},
		{ID: 3, Name: "Svengali Deck"},
		{ID: 4, Name: "Card Box"},
		{ID: 5, Name: "Thumb Tip"},
	}, nil)
	h.catalog.EXPECT().ListOrdersTouching(gomock.Any(), []int64{1}).Return(nil, nil)

	got, err := h.engine.Suggest(t.Context(), []domain.CartItem{{ProductID: 1, Category: "cards"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"Marked Deck", "Svengali Deck", "Card Box"}, names(got))
}

func TestSuggest_CoPurchaseOrder(t *testing.T) {
	h := newHarness(t)
	h.metrics.EXPECT().SuggestionServed(ports.OutcomeScored, gomock.Any())
	h.catalog.EXPECT().ListProductsByCategory(gomock.Any(), "cards", []int64{1}).Return([]domain.Product{
		{ID: 3, Name: "B", Category: "cards"},
		{ID: 2, Name: "A", Category: "cards"},
	}, nil)
	h.catalog.EXPECT().ListOrdersTouching(gomock.Any(), []int64{1}).Return([]domain.OrderLine{
		{OrderID: 1, ProductID: 1}, {OrderID: 2, ProductID: 1}, {OrderID: 3, ProductID: 1},
		{OrderID: 1, ProductID: 2}, {OrderID: 2, ProductID: 2},
		{OrderID: 3, ProductID: 3},
	}, nil)

	got, err := h.engine.Suggest(t.Context(), []domain.CartItem{{ProductID: 1, Category: "cards"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, names(got))
}

func TestScore_EqualScoresKeepFetchOrder(t *testing.T) {
	h := newHarness(t)
	h.metrics.EXPECT().SuggestionServed(ports.OutcomeScored, gomock.Any())
	h.catalog.EXPECT().ListProductsByCategory(gomock.Any(), "coins", []int64{1}).Return([]domain.Product{
		{ID: 5, Name: "first"},
		{ID: 6, Name: "second"},
		{ID: 7, Name: "third"},
		{ID: 8, Name: "fourth"},
	}, nil)
	h.catalog.EXPECT().ListOrdersTouching(gomock.Any(), []int64{1}).Return([]domain.OrderLine{
		{OrderID: 9, ProductID: 1},
	}, nil)

	scored, err := h.engine.Score(t.Context(), []domain.CartItem{{ProductID: 1, Category: "coins"}})
	require.NoError(t, err)
	require.Len(t, scored, 3)
	for i, want := range []string{"first", "second", "third"} {
		assert.Equal(t, want, scored[i].Product.Name)
		assert.Zero(t, scored[i].Score)
	}
}

func TestSuggest_EmptyResults(t *testing.T) {
	t.Run("empty cart", func(t *testing.T) {
		h := newHarness(t)
		h.metrics.EXPECT().SuggestionServed(ports.OutcomeEmpty, gomock.Any())

		got, err := h.engine.Suggest(t.Context(), nil)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("no categorized item", func(t *testing.T) {
		h := newHarness(t)
		h.metrics.EXPECT().SuggestionServed(ports.OutcomeEmpty, gomock.Any())

		got, err := h.engine.Suggest(t.Context(), []domain.CartItem{{ProductID: 1}})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("no candidates", func(t *testing.T) {
		h := newHarness(t)
		h.metrics.EXPECT().SuggestionServed(ports.OutcomeEmpty, gomock.Any())
		h.catalog.EXPECT().ListProductsByCategory(gomock.Any(), "silks", []int64{1}).Return(nil, nil)

		got, err := h.engine.Suggest(t.Context(), []domain.CartItem{{ProductID: 1, Category: "silks"}})
		require.NoError(t, err)
		assert.Empty(t, got)
	})
}

func TestSuggest_NeverReturnsCartProducts(t *testing.T) {
	h := newHarness(t)
	h.metrics.EXPECT().SuggestionServed(ports.OutcomeFallback, gomock.Any())
	// A catalog that ignores the exclusion list.
	h.catalog.EXPECT().ListProductsByCategory(gomock.Any(), "cards", []int64{1, 2}).Return([]domain.Product{
		{ID: 1, Name: "in cart"},
		{ID: 2, Name: "also in cart"},
		{ID: 3, Name: "fresh"},
	}, nil)
	h.catalog.EXPECT().ListOrdersTouching(gomock.Any(), []int64{1, 2}).Return(nil, nil)

	got, err := h.engine.Suggest(t.Context(), []domain.CartItem{
		{ProductID: 1, Category: "cards"},
		{ProductID: 2, Category: "cards"},
		{ProductID: 1, Category: "cards"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"fresh"}, names(got))
}

func TestSuggest_CollaboratorErrors(t *testing.T) {
	t.Run("category query", func(t *testing.T) {
		h := newHarness(t)
		h.metrics.EXPECT().SuggestionServed(ports.OutcomeError, gomock.Any())
		h.catalog.EXPECT().ListProductsByCategory(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database is locked"))

		got, err := h.engine.Suggest(t.Context(), []domain.CartItem{{ProductID: 1, Category: "cards"}})
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrCollaboratorUnavailable.Error())
		assert.ErrorContains(t, err, "database is locked")
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("order query", func(t *testing.T) {
		h := newHarness(t)
		h.metrics.EXPECT().SuggestionServed(ports.OutcomeError, gomock.Any())
		h.catalog.EXPECT().ListProductsByCategory(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]domain.Product{{ID: 2}}, nil)
		h.catalog.EXPECT().ListOrdersTouching(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection reset"))

		_, err := h.engine.Suggest(t.Context(), []domain.CartItem{{ProductID: 1, Category: "cards"}})
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrCollaboratorUnavailable.Error())
	})
}

func TestSuggestForSession(t *testing.T) {
	t.Run("loads cart", func(t *testing.T) {
		h := newHarness(t)
		h.metrics.EXPECT().SuggestionServed(ports.OutcomeFallback, gomock.Any())
		h.carts.EXPECT().ListCartItems(gomock.Any(), "s-1").Return([]domain.CartItem{
			{ProductID: 7, Category: "ropes", Quantity: 2},
		}, nil)
		h.catalog.EXPECT().ListProductsByCategory(gomock.Any(), "ropes", []int64{7}).
			Return([]domain.Product{{ID: 8, Name: "Cut and Restored Rope"}}, nil)
		h.catalog.EXPECT().ListOrdersTouching(gomock.Any(), []int64{7}).Return(nil, nil)

		got, err := h.engine.SuggestForSession(t.Context(), "s-1")
		require.NoError(t, err)
		assert.Equal(t, []string{"Cut and Restored Rope"}, names(got))
	})

	t.Run("cart source fails", func(t *testing.T) {
		h := newHarness(t)
		h.carts.EXPECT().ListCartItems(gomock.Any(), "s-2").Return(nil, errors.New("timeout"))

		got, err := h.engine.SuggestForSession(t.Context(), "s-2")
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrCollaboratorUnavailable.Error())
		assert.Empty(t, got)
	})
}
