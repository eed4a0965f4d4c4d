package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"glassworks/internal/domain"
	"glassworks/internal/pkg/response"
)

// RequireRole ensures the authenticated user has one of the listed roles.
func RequireRole(roles ...domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		role := domain.UserRole(v.(string))
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}

		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
		c.Abort()
	}
}

// SuperadminOnly gates cross-tenant management endpoints.
func SuperadminOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleSuperadmin)
}

// AdminOnly allows company admins and superadmins.
func AdminOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleSuperadmin, domain.RoleAdmin)
}

// Writer blocks guests from mutating endpoints; guests keep read access.
func Writer() gin.HandlerFunc {
	return RequireRole(domain.RoleSuperadmin, domain.RoleAdmin, domain.RoleUser)
}
