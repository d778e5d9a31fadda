package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/jeel735/rewear/pkg/helpers"
	"github.com/jeel735/rewear/pkg/response"
)

// Context keys set by Auth for downstream handlers.
const (
	CtxUserIDKey    = "userID"
	CtxUserRoleKey  = "userRole"
	CtxUserNameKey  = "userName"
	CtxUserEmailKey = "userEmail"
)

// Auth validates the access token and ensures an active session exists in
// Redis. The token's session ID must match the stored session, so a logout
// or re-login invalidates older tokens. On success userID, userRole,
// userName, and userEmail are set in the Gin context.
func Auth(rdb *redis.Client, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie("access_token")
		if err != nil || token == "" {
			response.Abort(c, http.StatusUnauthorized, "missing access token")
			return
		}
		claims, err := jwt.ParseAccessToken(token)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, "invalid access token")
			return
		}

		key := "user:session:" + claims.UserID
		data, err := rdb.HGetAll(c.Request.Context(), key).Result()
		if err != nil || len(data) == 0 {
			response.Abort(c, http.StatusUnauthorized, "session not found")
			return
		}
		if data["sid"] != claims.SessionID {
			response.Abort(c, http.StatusUnauthorized, "session superseded")
			return
		}

		c.Set(CtxUserIDKey, data["user_id"])
		c.Set(CtxUserRoleKey, data["role"])
		c.Set(CtxUserNameKey, data["username"])
		c.Set(CtxUserEmailKey, data["email"])
		c.Next()
	}
}
