package catalog

import (
	"context"
	"database/sql"

	"go.trai.ch/propstore/internal/core/domain"
	"go.trai.ch/zerr"
)

// Seed inserts a catalog snapshot in one transaction. Existing rows with
// the same ids are replaced.
func (s *Store) Seed(ctx context.Context, seed *domain.CatalogSeed) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return zerr.Wrap(err, "failed to begin seed transaction")
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	prices := make(map[int64]float64, len(seed.Products))
	for _, p := range seed.Products {
		prices[p.ID] = p.Price
		if _, err = tx.ExecContext(ctx, `
			INSERT OR REPLACE INTO products (id, name, description, price, image_url, category, stock)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			p.ID, p.Name, nullable(p.Description), p.Price, nullable(p.ImageURL), nullable(p.Category), p.Stock,
		); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to insert product"), "product_id", p.ID)
		}
	}

	for _, o := range seed.Orders {
		var total float64
		for _, id := range o.ProductIDs {
			total += prices[id]
		}
		if _, err = tx.ExecContext(ctx,
			`INSERT OR REPLACE INTO orders (id, session_id, total_amount) VALUES (?, ?, ?)`,
			o.ID, o.SessionID, total,
		); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to insert order"), "order_id", o.ID)
		}
		if _, err = tx.ExecContext(ctx, `DELETE FROM order_items WHERE order_id = ?`, o.ID); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to reset order items"), "order_id", o.ID)
		}
		for _, id := range o.ProductIDs {
			if _, err = tx.ExecContext(ctx,
				`INSERT INTO order_items (order_id, product_id, quantity, price) VALUES (?, ?, 1, ?)`,
				o.ID, id, prices[id],
			); err != nil {
				return zerr.With(zerr.Wrap(err, "failed to insert order item"), "order_id", o.ID)
			}
		}
	}

	for _, c := range seed.Carts {
		if _, err = tx.ExecContext(ctx, `DELETE FROM cart_items WHERE session_id = ?`, c.SessionID); err != nil {
			return zerr.With(zerr.Wrap(err, "failed to reset cart"), "session_id", c.SessionID)
		}
		for _, item := range c.Items {
			quantity := max(item.Quantity, 1)
			if _, err = tx.ExecContext(ctx,
				`INSERT INTO cart_items (session_id, product_id, quantity) VALUES (?, ?, ?)`,
				c.SessionID, item.ProductID, quantity,
			); err != nil {
				return zerr.With(zerr.Wrap(err, "failed to insert cart item"), "session_id", c.SessionID)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return zerr.Wrap(err, "failed to commit seed transaction")
	}
	return nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
