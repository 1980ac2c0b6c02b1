// Package catalog implements the Catalog and CartSource ports on SQLite.
package catalog

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/sony/gobreaker/v2"
	"go.trai.ch/propstore/internal/core/domain"
	"go.trai.ch/propstore/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	driverName = "sqlite3"

	breakerFailures = 5
	breakerTimeout  = 30 * time.Second
)

//go:embed schema.sql
var schema string

// Store is a read-only view of the storefront database.
// Every query passes through a circuit breaker that opens after consecutive failures.
type Store struct {
	db      *sql.DB
	breaker *gobreaker.CircuitBreaker[any]
}

// Open connects to the SQLite database named by settings.DSN and applies
// the schema when settings.Migrate is set.
func Open(ctx context.Context, settings domain.CatalogSettings, logger ports.Logger) (*Store, error) {
	db, err := sql.Open(driverName, settings.DSN)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCatalogOpenFailed.Error()), "dsn", settings.DSN)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCatalogOpenFailed.Error()), "dsn", settings.DSN)
	}

	s := New(db, logger)
	if settings.Migrate {
		if err := s.Migrate(ctx); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	return s, nil
}

// New wraps an open database.
func New(db *sql.DB, logger ports.Logger) *Store {
	return &Store{
		db: db,
		breaker: gobreaker.NewCircuitBreaker[any](gobreaker.Settings{
			Name:    "catalog",
			Timeout: breakerTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures >= breakerFailures
			},
			OnStateChange: func(name string, from, to gobreaker.State) {
				logger.Warn("circuit breaker " + name + " changed from " + from.String() + " to " + to.String())
			},
			IsExcluded: func(err error) bool {
				return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
			},
		}),
	}
}

// Migrate creates the tables if they do not exist.
func (s *Store) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return zerr.Wrap(err, domain.ErrCatalogMigrateFailed.Error())
	}
	return nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// guarded runs fn through the breaker of s.
func guarded[T any](s *Store, fn func() (T, error)) (T, error) {
	v, err := s.breaker.Execute(func() (any, error) {
		return fn()
	})
	if err != nil {
		var zero T
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return zero, zerr.Wrap(err, domain.ErrCircuitOpen.Error())
		}
		return zero, err
	}
	return v.(T), nil
}

// ListImageableProducts returns every product with a non-empty image URL, ordered by id.
func (s *Store) ListImageableProducts(ctx context.Context) ([]domain.ImageSource, error) {
	return guarded(s, func() ([]domain.ImageSource, error) {
		rows, err := s.db.QueryContext(ctx, `
			SELECT id, image_url
			FROM products
			WHERE image_url IS NOT NULL AND image_url != ''
			ORDER BY id`)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to query products with images")
		}
		defer func() { _ = rows.Close() }()

		var out []domain.ImageSource
		for rows.Next() {
			var src domain.ImageSource
			if err := rows.Scan(&src.ProductID, &src.ImageURL); err != nil {
				return nil, zerr.Wrap(err, "failed to scan product image")
			}
			out = append(out, src)
		}
		if err := rows.Err(); err != nil {
			return nil, zerr.Wrap(err, "failed to iterate products with images")
		}
		return out, nil
	})
}

// ListOrdersTouching returns the distinct (order, product) pairs of every
// order containing at least one of productIDs.
func (s *Store) ListOrdersTouching(ctx context.Context, productIDs []int64) ([]domain.OrderLine, error) {
	if len(productIDs) == 0 {
		return nil, nil
	}

	return guarded(s, func() ([]domain.OrderLine, error) {
		rows, err := s.db.QueryContext(ctx, `
			SELECT DISTINCT oi.order_id, oi.product_id
			FROM order_items oi
			WHERE oi.order_id IN (
				SELECT order_id FROM order_items WHERE product_id IN (`+placeholders(len(productIDs))+`)
			)
			ORDER BY oi.order_id, oi.product_id`, int64Args(productIDs)...)
		if err != nil {
			return nil, zerr.Wrap(err, "failed to query co-purchases")
		}
		defer func() { _ = rows.Close() }()

		var out []domain.OrderLine
		for rows.Next() {
			var line domain.OrderLine
			if err := rows.Scan(&line.OrderID, &line.ProductID); err != nil {
				return nil, zerr.Wrap(err, "failed to scan co-purchase")
			}
			out = append(out, line)
		}
		if err := rows.Err(); err != nil {
			return nil, zerr.Wrap(err, "failed to iterate co-purchases")
		}
		return out, nil
	})
}

// ListProductsByCategory returns the products of category ordered by id, leaving out excluding.
func (s *Store) ListProductsByCategory(ctx context.Context, category string, excluding []int64) ([]domain.Product, error) {
	query := `
		SELECT id, name, COALESCE(description, ''), price, COALESCE(image_url, ''), COALESCE(category, ''), stock
		FROM products
		WHERE category = ?`
	args := []any{category}
	if len(excluding) > 0 {
		query += ` AND id NOT IN (` + placeholders(len(excluding)) + `)`
		args = append(args, int64Args(excluding)...)
	}
	query += ` ORDER BY id`

	return guarded(s, func() ([]domain.Product, error) {
		rows, err := s.db.QueryContext(ctx, query, args...)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to query products by category"), "category", category)
		}
		defer func() { _ = rows.Close() }()

		var out []domain.Product
		for rows.Next() {
			var p domain.Product
			if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL, &p.Category, &p.Stock); err != nil {
				return nil, zerr.Wrap(err, "failed to scan product")
			}
			out = append(out, p)
		}
		if err := rows.Err(); err != nil {
			return nil, zerr.Wrap(err, "failed to iterate products")
		}
		return out, nil
	})
}

// ListCartItems returns the cart lines of a session with their product
// categories, in the order they were added.
func (s *Store) ListCartItems(ctx context.Context, sessionID string) ([]domain.CartItem, error) {
	return guarded(s, func() ([]domain.CartItem, error) {
		rows, err := s.db.QueryContext(ctx, `
			SELECT ci.product_id, COALESCE(p.category, ''), ci.quantity
			FROM cart_items ci
			JOIN products p ON ci.product_id = p.id
			WHERE ci.session_id = ?
			ORDER BY ci.id`, sessionID)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to query cart"), "session_id", sessionID)
		}
		defer func() { _ = rows.Close() }()

		var out []domain.CartItem
		for rows.Next() {
			var item domain.CartItem
			if err := rows.Scan(&item.ProductID, &item.Category, &item.Quantity); err != nil {
				return nil, zerr.Wrap(err, "failed to scan cart item")
			}
			out = append(out, item)
		}
		if err := rows.Err(); err != nil {
			return nil, zerr.Wrap(err, "failed to iterate cart")
		}
		return out, nil
	})
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

func int64Args(ids []int64) []any {
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	return args
}
