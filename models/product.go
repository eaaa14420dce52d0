package models

// Product represents a produce listing owned by a supplier.
// StockKg is the only mutable field once listed; it never goes negative at
// rest. It is mutated only by order approvals and cancellations.
type Product struct {
	ID               string  `db:"id" json:"id"`
	Name             string  `db:"name" json:"name"`
	Category         string  `db:"category" json:"category"`
	PricePerKg       float64 `db:"price_per_kg" json:"price_per_kg"`
	StockKg          float64 `db:"stock_kg" json:"stock_kg"`
	Emoji            string  `db:"emoji" json:"emoji"`
	SupplierID       string  `db:"supplier_id" json:"supplier_id"`
	SupplierName     string  `db:"supplier_name" json:"supplier_name"`
	DeliveryRadiusKm float64 `db:"delivery_radius_km" json:"delivery_radius_km"`
	CreatedAt        int64   `db:"created_at" json:"created_at"` // unix milliseconds
}
