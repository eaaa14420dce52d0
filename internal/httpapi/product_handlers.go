package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"produceMarketplace/internal/auth"
	"produceMarketplace/internal/logger"
	"produceMarketplace/internal/offers"
	"produceMarketplace/models"
)

// productView decorates a product with the offer shown on the plain listing,
// where only the surplus-stock discount applies.
type productView struct {
	models.Product
	Offer *offers.Offer `json:"offer,omitempty"`
}

func (s *Server) handleListProducts(c *gin.Context) {
	if auth.RequirePrincipal(c) == nil {
		return
	}
	list, err := s.products.List(c.Request.Context())
	if err != nil {
		s.internalError(c, "list products", err)
		return
	}
	out := make([]productView, 0, len(list))
	for _, p := range list {
		v := productView{Product: p}
		if o, ok := offers.Default(p); ok {
			o2 := o
			v.Offer = &o2
		}
		out = append(out, v)
	}
	c.JSON(http.StatusOK, gin.H{"products": out})
}

func (s *Server) handleGetProduct(c *gin.Context) {
	if auth.RequirePrincipal(c) == nil {
		return
	}
	p, err := s.products.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.internalError(c, "get product", err)
		return
	}
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": s.t(c, "products_not_found", nil)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"product": p})
}

type createProductRequest struct {
	Name             string  `json:"name" binding:"required"`
	Category         string  `json:"category" binding:"required"`
	PricePerKg       float64 `json:"price_per_kg" binding:"min=0"`
	StockKg          float64 `json:"stock_kg" binding:"min=0"`
	Emoji            string  `json:"emoji"`
	DeliveryRadiusKm float64 `json:"delivery_radius_km" binding:"min=0"`
}

func (s *Server) handleCreateProduct(c *gin.Context) {
	p := auth.RequireSupplier(c)
	if p == nil {
		return
	}
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()
	supplier, err := s.users.GetByID(ctx, p.UserID)
	if err != nil {
		s.internalError(c, "get supplier", err)
		return
	}
	if supplier == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown supplier"})
		return
	}
	prod := &models.Product{
		ID:               uuid.NewString(),
		Name:             req.Name,
		Category:         req.Category,
		PricePerKg:       req.PricePerKg,
		StockKg:          req.StockKg,
		Emoji:            req.Emoji,
		SupplierID:       supplier.ID,
		SupplierName:     supplier.Name,
		DeliveryRadiusKm: req.DeliveryRadiusKm,
		CreatedAt:        s.clk.Now().UnixMilli(),
	}
	if _, err := s.products.Create(ctx, prod); err != nil {
		s.internalError(c, "create product", err)
		return
	}
	s.log.Info("product listed",
		logger.String("product_id", prod.ID),
		logger.String("supplier_id", supplier.ID))
	c.JSON(http.StatusCreated, gin.H{
		"product": prod,
		"message": s.t(c, "products_created", map[string]any{"productName": prod.Name}),
	})
}

type updateProductRequest struct {
	PricePerKg float64 `json:"price_per_kg" binding:"min=0"`
	StockKg    float64 `json:"stock_kg" binding:"min=0"`
}

func (s *Server) handleUpdateProduct(c *gin.Context) {
	p := auth.RequireSupplier(c)
	if p == nil {
		return
	}
	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()
	prod, err := s.products.GetByID(ctx, c.Param("id"))
	if err != nil {
		s.internalError(c, "get product", err)
		return
	}
	if prod == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": s.t(c, "products_not_found", nil)})
		return
	}
	if prod.SupplierID != p.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "not your listing"})
		return
	}
	if err := s.products.UpdateListing(ctx, prod.ID, req.PricePerKg, req.StockKg); err != nil {
		s.internalError(c, "update product", err)
		return
	}
	prod.PricePerKg = req.PricePerKg
	prod.StockKg = req.StockKg
	c.JSON(http.StatusOK, gin.H{"product": prod})
}

// handleInventory returns the supplier's own listings.
func (s *Server) handleInventory(c *gin.Context) {
	p := auth.RequireSupplier(c)
	if p == nil {
		return
	}
	list, err := s.products.ListBySupplier(c.Request.Context(), p.UserID)
	if err != nil {
		s.internalError(c, "list inventory", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": list})
}

// handleOffers returns the grouped promotional offers at the current
// simulated time.
func (s *Server) handleOffers(c *gin.Context) {
	if auth.RequirePrincipal(c) == nil {
		return
	}
	list, err := s.products.List(c.Request.Context())
	if err != nil {
		s.internalError(c, "list products", err)
		return
	}
	now := s.clk.Now()
	groups := offers.Evaluate(list, now)
	c.JSON(http.StatusOK, gin.H{
		"offers":       groups,
		"season_label": s.t(c, "offers_season_"+string(groups.Season), nil),
	})
}
