package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"produceMarketplace/models"
)

const productColumns = `id, name, category, price_per_kg, stock_kg, emoji, supplier_id, supplier_name, delivery_radius_km, created_at`

type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Create inserts a new product listing. ID and CreatedAt must be set by the caller.
func (r *ProductRepository) Create(ctx context.Context, p *models.Product) (*models.Product, error) {
	if p == nil {
		return nil, errors.New("product is nil")
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO products (`+productColumns+`) VALUES (?,?,?,?,?,?,?,?,?,?)`,
		p.ID, p.Name, p.Category, p.PricePerKg, p.StockKg, p.Emoji, p.SupplierID, p.SupplierName, p.DeliveryRadiusKm, p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var p models.Product
	err := r.db.QueryRowContext(ctx, `SELECT `+productColumns+` FROM products WHERE id = ?`, id).
		Scan(&p.ID, &p.Name, &p.Category, &p.PricePerKg, &p.StockKg, &p.Emoji, &p.SupplierID, &p.SupplierName, &p.DeliveryRadiusKm, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// List returns all products, newest listings first.
func (r *ProductRepository) List(ctx context.Context) ([]models.Product, error) {
	return r.list(ctx, `SELECT `+productColumns+` FROM products ORDER BY created_at DESC, id`)
}

// ListBySupplier returns the supplier's own listings for the inventory view.
func (r *ProductRepository) ListBySupplier(ctx context.Context, supplierID string) ([]models.Product, error) {
	return r.list(ctx, `SELECT `+productColumns+` FROM products WHERE supplier_id = ? ORDER BY created_at DESC, id`, supplierID)
}

// UpdateListing updates a product's price and stock. The stock value is
// checked against the non-negative constraint by SQLite.
func (r *ProductRepository) UpdateListing(ctx context.Context, id string, pricePerKg, stockKg float64) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `UPDATE products SET price_per_kg = ?, stock_kg = ? WHERE id = ?`, pricePerKg, stockKg, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *ProductRepository) list(ctx context.Context, query string, args ...any) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []models.Product
	for rows.Next() {
		var p models.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.PricePerKg, &p.StockKg, &p.Emoji, &p.SupplierID, &p.SupplierName, &p.DeliveryRadiusKm, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
