package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"produceMarketplace/models"
)

// Middleware returns a gin handler that extracts and validates a Bearer JWT
// from the Authorization header and injects the Principal into the request
// context.
func Middleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := ParseBearer(c.GetHeader("Authorization"), secret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "auth error: " + err.Error()})
			return
		}
		c.Request = c.Request.WithContext(WithPrincipal(c.Request.Context(), p))
		c.Next()
	}
}

// RequirePrincipal ensures a principal is present on the request. On failure
// it aborts with 401 and returns nil.
func RequirePrincipal(c *gin.Context) *Principal {
	p, ok := FromContext(c.Request.Context())
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
		return nil
	}
	return p
}

// RequireRole ensures the caller has the given role. On failure it aborts
// with 401/403 and returns nil.
func RequireRole(c *gin.Context, role models.UserRole) *Principal {
	p := RequirePrincipal(c)
	if p == nil {
		return nil
	}
	if p.Role != role {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "only " + string(role) + " can perform this action"})
		return nil
	}
	return p
}

// RequireVendor ensures the caller buys produce (cart, checkout).
func RequireVendor(c *gin.Context) *Principal {
	return RequireRole(c, models.RoleVendor)
}

// RequireSupplier ensures the caller sells produce (inventory, order actions).
func RequireSupplier(c *gin.Context) *Principal {
	return RequireRole(c, models.RoleSupplier)
}
