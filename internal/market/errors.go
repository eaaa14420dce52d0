package market

import (
	"errors"
	"fmt"
	"strings"

	"produceMarketplace/models"
)

// ErrOrderNotFound is returned when a status change targets an unknown order.
var ErrOrderNotFound = errors.New("order not found")

// ErrEmptyCart is returned when checkout is attempted with no lines.
var ErrEmptyCart = errors.New("cart is empty")

// InsufficientStockError reports the products that blocked a checkout batch
// or an approval. The whole operation is rolled back; no partial mutation is
// ever visible.
type InsufficientStockError struct {
	ProductIDs []string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for: %s", strings.Join(e.ProductIDs, ", "))
}

// InvalidTransitionError reports a status change the state machine does not
// permit, including anything out of a terminal state.
type InvalidTransitionError struct {
	From models.OrderStatus
	To   models.OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid order transition %s -> %s", e.From, e.To)
}
