package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jeel735/rewear/internal/domain/entity"
	"github.com/jeel735/rewear/pkg/response"
)

// RequireRole rejects requests whose session role is not in the allowed set.
// Must run after Auth.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString(CtxUserRoleKey)
		for _, r := range roles {
			if role == r {
				c.Next()
				return
			}
		}
		response.Abort(c, http.StatusForbidden, "insufficient permissions")
	}
}

// RequireAdmin is shorthand for RequireRole(entity.RoleAdmin).
func RequireAdmin() gin.HandlerFunc {
	return RequireRole(entity.RoleAdmin)
}
