package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jeel735/rewear/internal/domain/entity"
	"github.com/jeel735/rewear/internal/domain/repository"
	"github.com/jeel735/rewear/pkg/response"
)

// OwnerLoader resolves the owning user of a resource by its ID. It returns
// repository.ErrNotFound when the resource does not exist.
type OwnerLoader func(ctx context.Context, id string) (ownerID string, err error)

// RequireOwnership loads the resource named by the given path parameter and
// rejects the request unless the caller owns it. Admins pass regardless of
// ownership. A missing resource is a 404, a foreign one a 403, so the two
// cases stay distinguishable to the client. Must run after Auth.
func RequireOwnership(param string, load OwnerLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param(param)
		if id == "" {
			response.Abort(c, http.StatusBadRequest, "missing "+param)
			return
		}

		ownerID, err := load(c.Request.Context(), id)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				response.Abort(c, http.StatusNotFound, "resource not found")
				return
			}
			response.Abort(c, http.StatusInternalServerError, "failed to load resource")
			return
		}

		userID := c.GetString(CtxUserIDKey)
		role := c.GetString(CtxUserRoleKey)
		if ownerID != userID && role != entity.RoleAdmin {
			response.Abort(c, http.StatusForbidden, "not the owner")
			return
		}
		c.Next()
	}
}
