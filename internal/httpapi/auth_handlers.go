package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"produceMarketplace/internal/auth"
	"produceMarketplace/internal/logger"
	"produceMarketplace/models"
)

// tokenTTL bounds session tokens. Tokens are stamped with wall time, not the
// simulated clock, so time travel does not expire sessions.
const tokenTTL = 24 * time.Hour

type loginRequest struct {
	Email string `json:"email" binding:"required"`
}

// handleLogin signs a user in by email lookup alone. No password is checked;
// authentication here is a mock, like the system it models.
func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	u, err := s.users.GetByEmail(c.Request.Context(), strings.TrimSpace(req.Email))
	if err != nil {
		s.internalError(c, "get user", err)
		return
	}
	if u == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": s.t(c, "auth_invalid_credentials", nil)})
		return
	}
	token, err := auth.Issue(s.cfg.Auth.JWTSecret, u, tokenTTL, time.Now())
	if err != nil {
		s.internalError(c, "issue token", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": u})
}

type signupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Phone    string `json:"phone"`
	Role     string `json:"role" binding:"required,oneof=vendor supplier"`
	Location string `json:"location"`
}

func (s *Server) handleSignup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ctx := c.Request.Context()
	existing, err := s.users.GetByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		s.internalError(c, "get user", err)
		return
	}
	if existing != nil {
		c.JSON(http.StatusConflict, gin.H{"error": s.t(c, "auth_email_taken", nil)})
		return
	}
	u := &models.User{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Email:     strings.TrimSpace(req.Email),
		Phone:     req.Phone,
		Role:      models.UserRole(req.Role),
		Location:  req.Location,
		Verified:  false, // verification would be a separate step
		CreatedAt: s.clk.Now().UnixMilli(),
	}
	if _, err := s.users.Create(ctx, u); err != nil {
		s.internalError(c, "create user", err)
		return
	}
	token, err := auth.Issue(s.cfg.Auth.JWTSecret, u, tokenTTL, time.Now())
	if err != nil {
		s.internalError(c, "issue token", err)
		return
	}
	s.log.Info("user signed up", logger.String("user_id", u.ID), logger.String("role", string(u.Role)))
	c.JSON(http.StatusCreated, gin.H{"token": token, "user": u})
}
