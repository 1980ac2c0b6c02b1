package fixture_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/propstore/internal/adapters/fixture"
	"go.trai.ch/propstore/internal/core/domain"
)

func loadTestCatalog(t *testing.T) *fixture.Catalog {
	t.Helper()
	c, err := fixture.Load("testdata/catalog.yaml")
	require.NoError(t, err)
	return c
}

func TestCatalog_ListImageableProducts(t *testing.T) {
	c := loadTestCatalog(t)

	got, err := c.ListImageableProducts(t.Context())
	require.NoError(t, err)

	assert.Equal(t, []domain.ImageSource{
		{ProductID: 1, ImageURL: "https://img.example.test/deck.png"},
		{ProductID: 2, ImageURL: "https://img.example.test/thumb.png"},
		{ProductID: 3, ImageURL: "https://img.example.test/deck.png"},
	}, got)
}

func TestCatalog_ListOrdersTouching(t *testing.T) {
	c := loadTestCatalog(t)

	got, err := c.ListOrdersTouching(t.Context(), []int64{3})
	require.NoError(t, err)
	assert.Equal(t, []domain.OrderLine{
		{OrderID: 10, ProductID: 1},
		{OrderID: 10, ProductID: 3},
		{OrderID: 12, ProductID: 3},
		{OrderID: 12, ProductID: 4},
	}, got)

	got, err = c.ListOrdersTouching(t.Context(), []int64{2})
	require.NoError(t, err)
	assert.Equal(t, []domain.OrderLine{{OrderID: 11, ProductID: 2}}, got, "duplicate lines collapse")

	got, err = c.ListOrdersTouching(t.Context(), nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCatalog_ListProductsByCategory(t *testing.T) {
	c := loadTestCatalog(t)

	got, err := c.ListProductsByCategory(t.Context(), "Cards", []int64{1})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(3), got[0].ID)
	assert.Equal(t, int64(4), got[1].ID)

	got, err = c.ListProductsByCategory(t.Context(), "Unknown", nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCatalog_ListCartItems(t *testing.T) {
	c := loadTestCatalog(t)

	got, err := c.ListCartItems(t.Context(), "s-cart")
	require.NoError(t, err)
	assert.Equal(t, []domain.CartItem{
		{ProductID: 1, Category: "Cards", Quantity: 2},
		{ProductID: 2, Category: "Sleight", Quantity: 1},
	}, got)

	got, err = c.ListCartItems(t.Context(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCatalog_CancelledContext(t *testing.T) {
	c := loadTestCatalog(t)
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := c.ListImageableProducts(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestLoad_Errors(t *testing.T) {
	_, err := fixture.Load("testdata/missing.yaml")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrFixtureReadFailed.Error())

	_, err = fixture.Parse([]byte("products: {not: [a list"))
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrFixtureParseFailed.Error())
}
