package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/kuaforun/booking-backend/internal/tenant"
)

const ContextTenantID = "tenantID"

// TenantMiddleware resolves the tenant for every request; there is no
// unauthenticated-tenant case, only the configured fallback.
func TenantMiddleware(defaultTenant string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(ContextTenantID, tenant.Resolve(c.GetHeader(tenant.Header), defaultTenant))
		c.Next()
	}
}

func TenantID(c *gin.Context) string {
	return c.MustGet(ContextTenantID).(string)
}
