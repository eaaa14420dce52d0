package models

// OrderStatus represents the current progress of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "Pending"
	OrderStatusPacked    OrderStatus = "Packed"
	OrderStatusShipped   OrderStatus = "Shipped"
	OrderStatusDelivered OrderStatus = "Delivered"
	OrderStatusCancelled OrderStatus = "Cancelled"
)

// Terminal reports whether no further transitions are allowed from s.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// PaymentMethod is how the vendor pays for an order.
type PaymentMethod string

const (
	PaymentCOD    PaymentMethod = "COD"
	PaymentOnline PaymentMethod = "Online"
)

// Order represents one product line bought by a vendor from a supplier.
// TotalPrice is frozen at creation (quantity x the cart's unit price, which
// may already carry an offer discount). DeliveryEta is set at creation and
// overwritten only when the supplier marks the order Delivered.
type Order struct {
	ID               string        `db:"id" json:"id"`
	VendorID         string        `db:"vendor_id" json:"vendor_id"`
	VendorName       string        `db:"vendor_name" json:"vendor_name"`
	SupplierID       string        `db:"supplier_id" json:"supplier_id"`
	SupplierName     string        `db:"supplier_name" json:"supplier_name"`
	ProductID        string        `db:"product_id" json:"product_id"`
	ProductName      string        `db:"product_name" json:"product_name"`
	Quantity         int64         `db:"quantity" json:"quantity"`
	TotalPrice       float64       `db:"total_price" json:"total_price"`
	Status           OrderStatus   `db:"status" json:"status"`
	OrderDate        int64         `db:"order_date" json:"order_date"`       // unix milliseconds
	DeliveryEta      int64         `db:"delivery_eta" json:"delivery_eta"`   // unix milliseconds
	DeliveryLocation string        `db:"delivery_location" json:"delivery_location"`
	PaymentMethod    PaymentMethod `db:"payment_method" json:"payment_method"`
}
