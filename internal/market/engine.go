package market

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"produceMarketplace/models"
	"produceMarketplace/repository"
)

// DeliveryLeadTime is the fixed window between placing an order and its ETA.
const DeliveryLeadTime = 72 * time.Hour

// allowedTransitions is the order state machine. Terminal states (Delivered,
// Cancelled) have no outgoing edges.
var allowedTransitions = map[models.OrderStatus]map[models.OrderStatus]bool{
	models.OrderStatusPending: {
		models.OrderStatusPacked:    true,
		models.OrderStatusCancelled: true,
	},
	models.OrderStatusPacked: {
		models.OrderStatusShipped:   true,
		models.OrderStatusCancelled: true,
	},
	models.OrderStatusShipped: {
		models.OrderStatusDelivered: true,
		models.OrderStatusCancelled: true,
	},
}

// Engine drives order creation and status transitions together with their
// paired stock effects. It runs every mutation inside a SQLite transaction so
// stock is decremented exactly once per approval and restored exactly once
// per cancellation of an approved order, under concurrent requests included.
type Engine struct {
	db     *sql.DB
	orders *repository.OrderRepository
}

func NewEngine(db *sql.DB, orders *repository.OrderRepository) *Engine {
	return &Engine{db: db, orders: orders}
}

// CreateOrders turns cart lines into Pending orders, one per product.
//
// The availability check is all-or-nothing over the batch: if any line names
// a missing product or asks for more than its current stock, no order is
// created and InsufficientStockError lists the offenders. Stock itself is not
// touched here; it is committed later when the supplier approves.
func (e *Engine) CreateOrders(ctx context.Context, vendorID string, lines []models.CartItem, deliveryLocation string, payment models.PaymentMethod, now time.Time) ([]models.Order, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var vendorName string
	err = tx.QueryRowContext(ctx, `SELECT name FROM users WHERE id = ?`, vendorID).Scan(&vendorName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("vendor %s not found", vendorID)
		}
		return nil, err
	}

	type lineProduct struct {
		line    models.CartItem
		product models.Product
	}
	var (
		resolved []lineProduct
		short    []string
	)
	for _, line := range lines {
		var p models.Product
		err := tx.QueryRowContext(ctx,
			`SELECT id, name, stock_kg, supplier_id, supplier_name FROM products WHERE id = ?`, line.ProductID).
			Scan(&p.ID, &p.Name, &p.StockKg, &p.SupplierID, &p.SupplierName)
		if errors.Is(err, sql.ErrNoRows) {
			short = append(short, line.ProductID)
			continue
		}
		if err != nil {
			return nil, err
		}
		if p.StockKg < float64(line.Quantity) {
			short = append(short, p.ID)
			continue
		}
		resolved = append(resolved, lineProduct{line: line, product: p})
	}
	if len(short) > 0 {
		return nil, &InsufficientStockError{ProductIDs: short}
	}

	orderDate := now.UnixMilli()
	eta := now.Add(DeliveryLeadTime).UnixMilli()
	out := make([]models.Order, 0, len(resolved))
	for _, lp := range resolved {
		o := models.Order{
			ID:               uuid.NewString(),
			VendorID:         vendorID,
			VendorName:       vendorName,
			SupplierID:       lp.product.SupplierID,
			SupplierName:     lp.product.SupplierName,
			ProductID:        lp.product.ID,
			ProductName:      lp.product.Name,
			Quantity:         lp.line.Quantity,
			TotalPrice:       float64(lp.line.Quantity) * lp.line.UnitPrice,
			Status:           models.OrderStatusPending,
			OrderDate:        orderDate,
			DeliveryEta:      eta,
			DeliveryLocation: deliveryLocation,
			PaymentMethod:    payment,
		}
		if _, err := tx.ExecContext(ctx, `
INSERT INTO orders (id, vendor_id, vendor_name, supplier_id, supplier_name, product_id, product_name, quantity, total_price, status, order_date, delivery_eta, delivery_location, payment_method)
VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
			o.ID, o.VendorID, o.VendorName, o.SupplierID, o.SupplierName, o.ProductID, o.ProductName,
			o.Quantity, o.TotalPrice, string(o.Status), o.OrderDate, o.DeliveryEta, o.DeliveryLocation, string(o.PaymentMethod)); err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStatus moves an order through the state machine and applies the
// paired stock effect:
//
//	Pending -> Packed      decrement stock, fails if short at approval time
//	Pending -> Cancelled   no stock change (never decremented)
//	Packed  -> Shipped     no stock change
//	Packed  -> Cancelled   restore stock
//	Shipped -> Cancelled   restore stock
//	Shipped -> Delivered   stamp delivery_eta with now
//
// Anything else, including transitions out of Delivered or Cancelled, fails
// with InvalidTransitionError and leaves the order untouched.
func (e *Engine) UpdateStatus(ctx context.Context, orderID string, target models.OrderStatus, now time.Time) (*models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	var (
		current   string
		productID string
		quantity  int64
	)
	err = tx.QueryRowContext(ctx, `SELECT status, product_id, quantity FROM orders WHERE id = ?`, orderID).
		Scan(&current, &productID, &quantity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	from := models.OrderStatus(current)
	if !allowedTransitions[from][target] {
		return nil, &InvalidTransitionError{From: from, To: target}
	}

	switch {
	case from == models.OrderStatusPending && target == models.OrderStatusPacked:
		// Check-and-decrement in one statement so the approval either commits
		// the full quantity or changes nothing. Stock may have been consumed
		// by another approval since the order was placed.
		res, err := tx.ExecContext(ctx,
			`UPDATE products SET stock_kg = stock_kg - ? WHERE id = ? AND stock_kg >= ?`,
			quantity, productID, quantity)
		if err != nil {
			return nil, err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return nil, &InsufficientStockError{ProductIDs: []string{productID}}
		}
	case target == models.OrderStatusCancelled && (from == models.OrderStatusPacked || from == models.OrderStatusShipped):
		// Stock was committed at approval; give it back exactly once.
		if _, err := tx.ExecContext(ctx,
			`UPDATE products SET stock_kg = stock_kg + ? WHERE id = ?`, quantity, productID); err != nil {
			return nil, err
		}
	}

	if target == models.OrderStatusDelivered {
		_, err = tx.ExecContext(ctx, `UPDATE orders SET status = ?, delivery_eta = ? WHERE id = ?`,
			string(target), now.UnixMilli(), orderID)
	} else {
		_, err = tx.ExecContext(ctx, `UPDATE orders SET status = ? WHERE id = ?`, string(target), orderID)
	}
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return e.orders.GetByID(ctx, orderID)
}

// SettleDeliveries flips Shipped orders whose ETA has passed to Delivered.
// The ETA is left as originally promised; only the explicit Shipped ->
// Delivered transition stamps it. Idempotent: settled orders no longer match
// the predicate. Returns how many orders were settled.
func (e *Engine) SettleDeliveries(ctx context.Context, now time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := e.db.ExecContext(ctx,
		`UPDATE orders SET status = ? WHERE status = ? AND delivery_eta <= ?`,
		string(models.OrderStatusDelivered), string(models.OrderStatusShipped), now.UnixMilli())
	if err != nil {
		return 0, err
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// ListForVendor settles due deliveries, then returns the vendor's orders,
// most recent first.
func (e *Engine) ListForVendor(ctx context.Context, vendorID string, now time.Time) ([]models.Order, error) {
	if _, err := e.SettleDeliveries(ctx, now); err != nil {
		return nil, err
	}
	return e.orders.ListByVendor(ctx, vendorID)
}

// ListForSupplier settles due deliveries, then returns the supplier's
// incoming orders, most recent first.
func (e *Engine) ListForSupplier(ctx context.Context, supplierID string, now time.Time) ([]models.Order, error) {
	if _, err := e.SettleDeliveries(ctx, now); err != nil {
		return nil, err
	}
	return e.orders.ListBySupplier(ctx, supplierID)
}
