package middleware

import (
	"net/http"
	"strconv"

	"wellbook/internal/domain"
	"wellbook/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireRole ensures that the authenticated user has one of the given roles.
func RequireRole(roles ...domain.UserRole) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[string(r)] = true
	}

	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		if !allowed[role.(string)] {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// SuperAdminOnly middleware requires the super_admin role.
func SuperAdminOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleSuperAdmin)
}

// CompanyScope rejects requests whose companyId URL param does not match the
// caller's own company. Super admins bypass the check.
func CompanyScope() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("role") == string(domain.RoleSuperAdmin) {
			c.Next()
			return
		}

		param := c.Param("companyId")
		if param == "" {
			c.Next()
			return
		}

		requested, err := strconv.ParseInt(param, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid company ID")
			c.Abort()
			return
		}

		callerCompany := CallerCompanyID(c)
		if callerCompany == nil || *callerCompany != requested {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: company scope violation")
			c.Abort()
			return
		}

		c.Next()
	}
}
