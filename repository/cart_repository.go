package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"produceMarketplace/models"
)

type CartRepository struct {
	db *sql.DB
}

func NewCartRepository(db *sql.DB) *CartRepository {
	return &CartRepository{db: db}
}

// Add inserts a cart line or, if the product is already carted, accumulates
// quantity at the stored unit price. The price captured first wins, matching
// the original add-to-cart behaviour where a re-add keeps the earlier price.
func (r *CartRepository) Add(ctx context.Context, item *models.CartItem) error {
	if item == nil {
		return errors.New("cart item is nil")
	}
	if item.Quantity < 1 {
		return errors.New("quantity must be at least 1")
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `
INSERT INTO cart_items (user_id, product_id, name, emoji, unit_price, quantity)
VALUES (?,?,?,?,?,?)
ON CONFLICT(user_id, product_id) DO UPDATE SET quantity = quantity + excluded.quantity`,
		item.UserID, item.ProductID, item.Name, item.Emoji, item.UnitPrice, item.Quantity)
	return err
}

// UpdateQuantity sets the quantity for a carted product. A quantity of zero
// or less removes the line.
func (r *CartRepository) UpdateQuantity(ctx context.Context, userID, productID string, quantity int64) error {
	if quantity <= 0 {
		return r.Remove(ctx, userID, productID)
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `UPDATE cart_items SET quantity = ? WHERE user_id = ? AND product_id = ?`,
		quantity, userID, productID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *CartRepository) Remove(ctx context.Context, userID, productID string) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `DELETE FROM cart_items WHERE user_id = ? AND product_id = ?`, userID, productID)
	return err
}

func (r *CartRepository) Clear(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `DELETE FROM cart_items WHERE user_id = ?`, userID)
	return err
}

func (r *CartRepository) List(ctx context.Context, userID string) ([]models.CartItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx,
		`SELECT user_id, product_id, name, emoji, unit_price, quantity FROM cart_items WHERE user_id = ? ORDER BY product_id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []models.CartItem
	for rows.Next() {
		var it models.CartItem
		if err := rows.Scan(&it.UserID, &it.ProductID, &it.Name, &it.Emoji, &it.UnitPrice, &it.Quantity); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}

// Total sums the cart at the captured unit prices.
func Total(items []models.CartItem) float64 {
	var t float64
	for _, it := range items {
		t += it.Subtotal()
	}
	return t
}
