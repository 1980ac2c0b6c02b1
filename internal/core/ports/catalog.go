package ports

import (
	"context"

	"go.trai.ch/propstore/internal/core/domain"
)

// Catalog is the read side of the product and order store consumed by the core.
// Implementations must be safe for concurrent use.
//
//go:generate go run go.uber.org/mock/mockgen -source=catalog.go -destination=mocks/mock_catalog.go -package=mocks
type Catalog interface {
	// ListImageableProducts returns every product with a non-empty image URL, ordered by product id.
	ListImageableProducts(ctx context.Context) ([]domain.ImageSource, error)

	// ListOrdersTouching returns every (order, product) pair of the orders
	// that contain at least one of productIDs.
	ListOrdersTouching(ctx context.Context, productIDs []int64) ([]domain.OrderLine, error)

	// ListProductsByCategory returns the products of category, ordered by id,
	// leaving out the ids in excluding.
	ListProductsByCategory(ctx context.Context, category string, excluding []int64) ([]domain.Product, error)
}

// CartSource reads stored carts.
type CartSource interface {
	// ListCartItems returns the cart lines of a session in insertion order.
	ListCartItems(ctx context.Context, sessionID string) ([]domain.CartItem, error)
}

// CatalogStore is a catalog backend that also serves carts and owns a connection.
type CatalogStore interface {
	Catalog
	CartSource
	Close() error
}
