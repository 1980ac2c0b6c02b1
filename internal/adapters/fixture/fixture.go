// Package fixture serves the Catalog and CartSource ports from a YAML snapshot held in memory.
package fixture

import (
	"cmp"
	"context"
	"os"
	"slices"

	"go.trai.ch/propstore/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Catalog implements ports.CatalogStore over a CatalogSeed. It is immutable
// after construction and safe for concurrent use.
type Catalog struct {
	seed     *domain.CatalogSeed
	products []domain.Product
	carts    map[string][]domain.SeedCartItem
}

// Load reads and parses a YAML snapshot file.
func Load(path string) (*Catalog, error) {
	//nolint:gosec // path comes from settings
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrFixtureReadFailed.Error()), "path", path)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return c, nil
}

// Parse decodes a YAML snapshot.
func Parse(data []byte) (*Catalog, error) {
	var seed domain.CatalogSeed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, zerr.Wrap(err, domain.ErrFixtureParseFailed.Error())
	}
	return New(&seed), nil
}

// New indexes seed for querying.
func New(seed *domain.CatalogSeed) *Catalog {
	products := slices.Clone(seed.Products)
	slices.SortStableFunc(products, func(a, b domain.Product) int {
		return cmp.Compare(a.ID, b.ID)
	})

	carts := make(map[string][]domain.SeedCartItem, len(seed.Carts))
	for _, c := range seed.Carts {
		carts[c.SessionID] = append(carts[c.SessionID], c.Items...)
	}

	return &Catalog{seed: seed, products: products, carts: carts}
}

// Seed returns the snapshot the catalog was built from.
func (c *Catalog) Seed() *domain.CatalogSeed {
	return c.seed
}

// Close does nothing.
func (c *Catalog) Close() error {
	return nil
}

// ListImageableProducts returns every product with a non-empty image URL, ordered by id.
func (c *Catalog) ListImageableProducts(ctx context.Context) ([]domain.ImageSource, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []domain.ImageSource
	for _, p := range c.products {
		if p.ImageURL != "" {
			out = append(out, domain.ImageSource{ProductID: p.ID, ImageURL: p.ImageURL})
		}
	}
	return out, nil
}

// ListOrdersTouching returns the distinct (order, product) pairs of every
// order containing at least one of productIDs.
func (c *Catalog) ListOrdersTouching(ctx context.Context, productIDs []int64) ([]domain.OrderLine, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []domain.OrderLine
	for _, o := range c.seed.Orders {
		if !containsAny(o.ProductIDs, productIDs) {
			continue
		}
		seen := make(map[int64]struct{}, len(o.ProductIDs))
		for _, id := range o.ProductIDs {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, domain.OrderLine{OrderID: o.ID, ProductID: id})
		}
	}
	return out, nil
}

// ListProductsByCategory returns the products of category ordered by id, leaving out excluding.
func (c *Catalog) ListProductsByCategory(ctx context.Context, category string, excluding []int64) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []domain.Product
	for _, p := range c.products {
		if p.Category == category && !slices.Contains(excluding, p.ID) {
			out = append(out, p)
		}
	}
	return out, nil
}

// ListCartItems returns the cart lines of a session with their product categories.
// Lines referring to unknown products are skipped.
func (c *Catalog) ListCartItems(ctx context.Context, sessionID string) ([]domain.CartItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []domain.CartItem
	for _, item := range c.carts[sessionID] {
		idx, found := slices.BinarySearchFunc(c.products, item.ProductID, func(p domain.Product, id int64) int {
			return cmp.Compare(p.ID, id)
		})
		if !found {
			continue
		}
		out = append(out, domain.CartItem{
			ProductID: item.ProductID,
			Category:  c.products[idx].Category,
			Quantity:  max(item.Quantity, 1),
		})
	}
	return out, nil
}

func containsAny(haystack, needles []int64) bool {
	for _, n := range needles {
		if slices.Contains(haystack, n) {
			return true
		}
	}
	return false
}
