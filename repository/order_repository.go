package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"produceMarketplace/models"
)

const orderColumns = `id, vendor_id, vendor_name, supplier_id, supplier_name, product_id, product_name, quantity, total_price, status, order_date, delivery_eta, delivery_location, payment_method`

// OrderRepository reads Order entities. Writes (creation and status
// transitions) are owned by the market engine because they carry paired
// stock effects.
type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(db *sql.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) GetByID(ctx context.Context, id string) (*models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var o models.Order
	var status, payment string
	err := r.db.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = ?`, id).
		Scan(&o.ID, &o.VendorID, &o.VendorName, &o.SupplierID, &o.SupplierName, &o.ProductID, &o.ProductName,
			&o.Quantity, &o.TotalPrice, &status, &o.OrderDate, &o.DeliveryEta, &o.DeliveryLocation, &payment)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	o.Status = models.OrderStatus(status)
	o.PaymentMethod = models.PaymentMethod(payment)
	return &o, nil
}

// ListByVendor returns all of a vendor's orders, most recent first.
func (r *OrderRepository) ListByVendor(ctx context.Context, vendorID string) ([]models.Order, error) {
	return r.list(ctx, `SELECT `+orderColumns+` FROM orders WHERE vendor_id = ? ORDER BY order_date DESC, id DESC`, vendorID)
}

// ListBySupplier returns all orders placed against a supplier's products,
// most recent first.
func (r *OrderRepository) ListBySupplier(ctx context.Context, supplierID string) ([]models.Order, error) {
	return r.list(ctx, `SELECT `+orderColumns+` FROM orders WHERE supplier_id = ? ORDER BY order_date DESC, id DESC`, supplierID)
}

func (r *OrderRepository) list(ctx context.Context, query string, args ...any) ([]models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []models.Order
	for rows.Next() {
		var o models.Order
		var status, payment string
		if err := rows.Scan(&o.ID, &o.VendorID, &o.VendorName, &o.SupplierID, &o.SupplierName, &o.ProductID, &o.ProductName,
			&o.Quantity, &o.TotalPrice, &status, &o.OrderDate, &o.DeliveryEta, &o.DeliveryLocation, &payment); err != nil {
			return nil, err
		}
		o.Status = models.OrderStatus(status)
		o.PaymentMethod = models.PaymentMethod(payment)
		out = append(out, o)
	}
	return out, rows.Err()
}
