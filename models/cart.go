package models

// CartItem is one line in a vendor's cart, keyed by product id.
// UnitPrice is the price captured at add-to-cart time; it may be an offer
// price below the product's listed price and is authoritative at checkout.
type CartItem struct {
	UserID    string  `db:"user_id" json:"-"`
	ProductID string  `db:"product_id" json:"product_id"`
	Name      string  `db:"name" json:"name"`
	Emoji     string  `db:"emoji" json:"emoji"`
	UnitPrice float64 `db:"unit_price" json:"unit_price"`
	Quantity  int64   `db:"quantity" json:"quantity"`
}

// Subtotal is the line total at the captured unit price.
func (c CartItem) Subtotal() float64 { return c.UnitPrice * float64(c.Quantity) }

// NewCartItem builds the cart line for a product at the given unit price,
// which may be an offer price below the listed one.
func NewCartItem(userID string, p Product, unitPrice float64, quantity int64) CartItem {
	return CartItem{
		UserID:    userID,
		ProductID: p.ID,
		Name:      p.Name,
		Emoji:     p.Emoji,
		UnitPrice: unitPrice,
		Quantity:  quantity,
	}
}
