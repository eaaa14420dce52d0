package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"produceMarketplace/internal/auth"
	"produceMarketplace/internal/offers"
	"produceMarketplace/models"
	"produceMarketplace/repository"
)

func (s *Server) handleGetCart(c *gin.Context) {
	p := auth.RequireVendor(c)
	if p == nil {
		return
	}
	items, err := s.cart.List(c.Request.Context(), p.UserID)
	if err != nil {
		s.internalError(c, "list cart", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": repository.Total(items)})
}

type addToCartRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int64  `json:"quantity" binding:"required,min=1"`
	// OfferType pins the discount from the offer section the vendor clicked.
	// Empty means the plain listing, where only the stock discount applies.
	OfferType string `json:"offer_type" binding:"omitempty,oneof=seasonal weekend stock"`
}

func (s *Server) handleAddToCart(c *gin.Context) {
	p := auth.RequireVendor(c)
	if p == nil {
		return
	}
	var req addToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()
	prod, err := s.products.GetByID(ctx, req.ProductID)
	if err != nil {
		s.internalError(c, "get product", err)
		return
	}
	if prod == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": s.t(c, "products_not_found", nil)})
		return
	}

	unitPrice := prod.PricePerKg
	if req.OfferType != "" {
		if o, ok := offers.Quote(*prod, offers.Type(req.OfferType), s.clk.Now()); ok {
			unitPrice = o.UnitPrice
		}
	} else if o, ok := offers.Default(*prod); ok {
		unitPrice = o.UnitPrice
	}

	item := models.NewCartItem(p.UserID, *prod, unitPrice, req.Quantity)
	if err := s.cart.Add(ctx, &item); err != nil {
		s.internalError(c, "add to cart", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": s.t(c, "cart_added", map[string]any{"productName": prod.Name}),
	})
}

type updateCartRequest struct {
	Quantity int64 `json:"quantity"`
}

func (s *Server) handleUpdateCartQuantity(c *gin.Context) {
	p := auth.RequireVendor(c)
	if p == nil {
		return
	}
	var req updateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.cart.UpdateQuantity(c.Request.Context(), p.UserID, c.Param("productID"), req.Quantity); err != nil {
		s.internalError(c, "update cart", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": s.t(c, "cart_updated", nil)})
}

func (s *Server) handleRemoveFromCart(c *gin.Context) {
	p := auth.RequireVendor(c)
	if p == nil {
		return
	}
	if err := s.cart.Remove(c.Request.Context(), p.UserID, c.Param("productID")); err != nil {
		s.internalError(c, "remove from cart", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": s.t(c, "cart_updated", nil)})
}

func (s *Server) handleClearCart(c *gin.Context) {
	p := auth.RequireVendor(c)
	if p == nil {
		return
	}
	if err := s.cart.Clear(c.Request.Context(), p.UserID); err != nil {
		s.internalError(c, "clear cart", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": s.t(c, "cart_cleared", nil)})
}
