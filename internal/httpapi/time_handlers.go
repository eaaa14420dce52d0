package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"produceMarketplace/internal/auth"
	"produceMarketplace/internal/logger"
)

func (s *Server) handleGetTime(c *gin.Context) {
	if auth.RequirePrincipal(c) == nil {
		return
	}
	c.JSON(http.StatusOK, gin.H{"now": s.clk.Now().UnixMilli()})
}

type advanceTimeRequest struct {
	Days int `json:"days" binding:"required,min=1,max=365"`
}

// handleAdvanceTime moves the simulated clock forward and settles any
// shipped orders whose ETA the jump crossed, so deliveries show up
// immediately rather than on the next listing.
func (s *Server) handleAdvanceTime(c *gin.Context) {
	if auth.RequirePrincipal(c) == nil {
		return
	}
	var req advanceTimeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	now := s.clk.AdvanceDays(req.Days)
	settled, err := s.engine.SettleDeliveries(c.Request.Context(), now)
	if err != nil {
		s.internalError(c, "settle deliveries", err)
		return
	}
	if settled > 0 {
		s.metrics.SettledDeliveries.Add(float64(settled))
		s.log.Info("deliveries settled", logger.Int64("count", settled))
	}
	c.JSON(http.StatusOK, gin.H{
		"now":     now.UnixMilli(),
		"settled": settled,
		"message": s.t(c, "time_advanced", map[string]any{"days": req.Days}),
	})
}

func (s *Server) handleResetTime(c *gin.Context) {
	if auth.RequirePrincipal(c) == nil {
		return
	}
	now := s.clk.Reset()
	c.JSON(http.StatusOK, gin.H{
		"now":     now.UnixMilli(),
		"message": s.t(c, "time_reset", nil),
	})
}
