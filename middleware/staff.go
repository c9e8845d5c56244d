package middleware

import (
	"net/http"
	"strings"

	"tably/utils"

	"github.com/gin-gonic/gin"
)

// StaffAuthMiddleware guards staff-only routes. It expects a Bearer token
// minted by the staff signin endpoint and rejects tokens issued for a
// different tenant than the one resolved by TenantMiddleware.
func StaffAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing staff authorization"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		email, tenantID, role, err := utils.ParseStaffToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid staff token"})
			return
		}

		tenant := TenantFrom(c)
		if tenantID != tenant.ID {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "token does not match tenant"})
			return
		}

		c.Set("staffEmail", email)
		c.Set("staffRole", role)
		c.Next()
	}
}
