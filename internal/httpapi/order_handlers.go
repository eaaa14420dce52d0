package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"produceMarketplace/internal/auth"
	"produceMarketplace/internal/logger"
	"produceMarketplace/internal/market"
	"produceMarketplace/models"
)

type checkoutRequest struct {
	DeliveryLocation string `json:"delivery_location" binding:"required"`
	PaymentMethod    string `json:"payment_method" binding:"required,oneof=COD Online"`
}

// handleCheckout turns the vendor's cart into Pending orders. The batch is
// all-or-nothing: on an insufficient-stock failure the offending lines are
// dropped from the cart, no order is created, and the vendor may retry.
func (s *Server) handleCheckout(c *gin.Context) {
	p := auth.RequireVendor(c)
	if p == nil {
		return
	}
	var req checkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()
	items, err := s.cart.List(ctx, p.UserID)
	if err != nil {
		s.internalError(c, "list cart", err)
		return
	}

	created, err := s.engine.CreateOrders(ctx, p.UserID, items, req.DeliveryLocation, models.PaymentMethod(req.PaymentMethod), s.clk.Now())
	if err != nil {
		var short *market.InsufficientStockError
		switch {
		case errors.Is(err, market.ErrEmptyCart):
			c.JSON(http.StatusBadRequest, gin.H{"error": s.t(c, "checkout_empty_cart", nil)})
		case errors.As(err, &short):
			for _, id := range short.ProductIDs {
				if rmErr := s.cart.Remove(ctx, p.UserID, id); rmErr != nil {
					s.log.Warn("drop unavailable cart line", logger.Error(rmErr), logger.String("product_id", id))
				}
			}
			c.JSON(http.StatusConflict, gin.H{
				"error":       s.t(c, "checkout_failed", nil),
				"product_ids": short.ProductIDs,
			})
		default:
			s.internalError(c, "create orders", err)
		}
		return
	}

	if err := s.cart.Clear(ctx, p.UserID); err != nil {
		s.log.Warn("clear cart after checkout", logger.Error(err), logger.String("user_id", p.UserID))
	}
	s.metrics.OrdersCreated.Add(float64(len(created)))
	s.log.Info("orders placed",
		logger.String("vendor_id", p.UserID),
		logger.Int("count", len(created)))
	c.JSON(http.StatusCreated, gin.H{
		"orders":  created,
		"message": s.t(c, "checkout_success", map[string]any{"count": len(created)}),
	})
}

// handleListOrders lists the caller's orders: a vendor sees what they bought,
// a supplier sees what was bought from them. Due deliveries are settled
// before the read.
func (s *Server) handleListOrders(c *gin.Context) {
	p := auth.RequirePrincipal(c)
	if p == nil {
		return
	}
	ctx := c.Request.Context()
	now := s.clk.Now()

	var (
		list []models.Order
		err  error
	)
	if p.Role == models.RoleVendor {
		list, err = s.engine.ListForVendor(ctx, p.UserID, now)
	} else {
		list, err = s.engine.ListForSupplier(ctx, p.UserID, now)
	}
	if err != nil {
		s.internalError(c, "list orders", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": list})
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=Pending Packed Shipped Delivered Cancelled"`
}

// handleUpdateOrderStatus applies a supplier-driven transition. Only the
// supplier who owns the order may act on it.
func (s *Server) handleUpdateOrderStatus(c *gin.Context) {
	p := auth.RequireSupplier(c)
	if p == nil {
		return
	}
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()
	orderID := c.Param("id")

	ord, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		s.internalError(c, "get order", err)
		return
	}
	if ord == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": s.t(c, "orders_not_found", nil)})
		return
	}
	if ord.SupplierID != p.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": s.t(c, "orders_not_owner", nil)})
		return
	}

	target := models.OrderStatus(req.Status)
	updated, err := s.engine.UpdateStatus(ctx, orderID, target, s.clk.Now())
	if err != nil {
		var short *market.InsufficientStockError
		var invalid *market.InvalidTransitionError
		switch {
		case errors.Is(err, market.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": s.t(c, "orders_not_found", nil)})
		case errors.As(err, &short):
			c.JSON(http.StatusConflict, gin.H{
				"error": s.t(c, "orders_approval_failed", map[string]any{"productName": ord.ProductName}),
			})
		case errors.As(err, &invalid):
			c.JSON(http.StatusConflict, gin.H{
				"error": s.t(c, "orders_invalid_transition", map[string]any{"from": invalid.From, "to": invalid.To}),
			})
		default:
			s.internalError(c, "update status", err)
		}
		return
	}

	s.metrics.OrderTransitions.WithLabelValues(string(target)).Inc()
	s.log.Info("order status updated",
		logger.String("order_id", orderID),
		logger.String("status", string(target)))
	c.JSON(http.StatusOK, gin.H{
		"order":   updated,
		"message": s.t(c, "orders_updated", map[string]any{"orderId": shortID(orderID), "status": target}),
	})
}

// shortID truncates an order id for display, like the original UI did.
func shortID(id string) string {
	if len(id) > 7 {
		return id[:7]
	}
	return id
}
