// Package httpapi exposes the marketplace over HTTP. Handlers stay thin:
// role checks, translation of engine errors to status codes, JSON in and
// out. All state lives behind the repositories and the market engine.
package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"produceMarketplace/internal/auth"
	"produceMarketplace/internal/clock"
	"produceMarketplace/internal/config"
	"produceMarketplace/internal/i18n"
	"produceMarketplace/internal/logger"
	"produceMarketplace/internal/market"
	"produceMarketplace/internal/metrics"
	"produceMarketplace/repository"
)

// Server bundles the dependencies behind the HTTP handlers.
type Server struct {
	cfg      *config.Config
	log      logger.Logger
	users    *repository.UserRepository
	products *repository.ProductRepository
	orders   *repository.OrderRepository
	cart     *repository.CartRepository
	engine   *market.Engine
	clk      *clock.Simulated
	bundle   *i18n.Bundle
	metrics  *metrics.ServerMetrics
}

func NewServer(
	cfg *config.Config,
	log logger.Logger,
	users *repository.UserRepository,
	products *repository.ProductRepository,
	orders *repository.OrderRepository,
	cart *repository.CartRepository,
	engine *market.Engine,
	clk *clock.Simulated,
	bundle *i18n.Bundle,
	m *metrics.ServerMetrics,
) *Server {
	return &Server{
		cfg:      cfg,
		log:      log,
		users:    users,
		products: products,
		orders:   orders,
		cart:     cart,
		engine:   engine,
		clk:      clk,
		bundle:   bundle,
		metrics:  m,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if s.metrics != nil {
		r.Use(s.metrics.GinMiddleware())
	}

	r.GET("/healthz", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/api")
	{
		api.POST("/auth/login", s.handleLogin)
		api.POST("/auth/signup", s.handleSignup)

		authed := api.Group("", auth.Middleware(s.cfg.Auth.JWTSecret))
		{
			authed.GET("/products", s.handleListProducts)
			authed.GET("/products/:id", s.handleGetProduct)
			authed.POST("/products", s.handleCreateProduct)
			authed.PATCH("/products/:id", s.handleUpdateProduct)
			authed.GET("/inventory", s.handleInventory)

			authed.GET("/offers", s.handleOffers)

			authed.GET("/cart", s.handleGetCart)
			authed.POST("/cart", s.handleAddToCart)
			authed.PATCH("/cart/:productID", s.handleUpdateCartQuantity)
			authed.DELETE("/cart/:productID", s.handleRemoveFromCart)
			authed.DELETE("/cart", s.handleClearCart)

			authed.POST("/checkout", s.handleCheckout)

			authed.GET("/orders", s.handleListOrders)
			authed.POST("/orders/:id/status", s.handleUpdateOrderStatus)

			authed.GET("/time", s.handleGetTime)
			authed.POST("/time/advance", s.handleAdvanceTime)
			authed.POST("/time/reset", s.handleResetTime)
		}
	}
	return r
}

// Run starts the HTTP server and returns a shutdown function.
func (s *Server) Run() (func(context.Context) error, error) {
	srv := &http.Server{Addr: s.cfg.HTTP.Address, Handler: s.Router()}
	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()
	return func(ctx context.Context) error {
		return srv.Shutdown(ctx)
	}, nil
}

// localeOf picks the response locale from the lang query parameter or the
// Accept-Language header, defaulting to English.
func (s *Server) localeOf(c *gin.Context) string {
	if lang := c.Query("lang"); lang != "" && s.bundle.Has(lang) {
		return lang
	}
	al := c.GetHeader("Accept-Language")
	if len(al) >= 2 {
		if code := strings.ToLower(al[:2]); s.bundle.Has(code) {
			return code
		}
	}
	return i18n.DefaultLocale
}

func (s *Server) t(c *gin.Context, key string, vars map[string]any) string {
	return s.bundle.T(s.localeOf(c), key, vars)
}

func (s *Server) internalError(c *gin.Context, msg string, err error) {
	s.log.Error(msg, logger.Error(err), logger.String("path", c.FullPath()))
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
