package middleware

import (
	"strings"

	"go-hris-backoffice/internal/shared/apperror"
	"go-hris-backoffice/internal/shared/contextutil"
	"go-hris-backoffice/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const TenantHeader = "X-Tenant-ID"

// RequireTenant resolves the tenant from the X-Tenant-ID header and rejects
// the request when it is missing or blank.
func RequireTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID := strings.TrimSpace(c.GetHeader(TenantHeader))
		if tenantID == "" {
			httpErr := apperror.ToHTTP(apperror.ErrTenantRequired)
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
			c.Abort()
			return
		}

		c.Set("tenant_id", tenantID)
		ctx := contextutil.WithTenantID(c.Request.Context(), tenantID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
