package middleware

import (
	"net/http"

	tenantRepo "tably/database/repository/tenant"
	"tably/models"
	"tably/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const tenantContextKey = "tenant"

// TenantMiddleware resolves the x-tenant-slug header to a tenant record and
// stores it on the request context. Every customer and staff route runs
// behind it.
func TenantMiddleware(tenants tenantRepo.TenantRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.GetHeader("x-tenant-slug")
		if slug == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "missing x-tenant-slug header"})
			return
		}

		tenant, err := tenants.GetBySlug(slug)
		if err != nil {
			utils.GetLogger().Error("tenant lookup failed", zap.String("slug", slug), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusBadGateway, gin.H{"error": "tenant lookup failed"})
			return
		}
		if tenant == nil {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "unknown tenant"})
			return
		}
		if !tenant.Active {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "tenant is not active"})
			return
		}

		c.Set(tenantContextKey, tenant)
		c.Next()
	}
}

// TenantFrom returns the tenant resolved by TenantMiddleware. Handlers only
// run behind the middleware, so a missing tenant is a programming error.
func TenantFrom(c *gin.Context) *models.Tenant {
	v, exists := c.Get(tenantContextKey)
	if !exists {
		return &models.Tenant{}
	}
	tenant, ok := v.(*models.Tenant)
	if !ok {
		return &models.Tenant{}
	}
	return tenant
}
