package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jeel735/rewear/internal/container"
	handlers "github.com/jeel735/rewear/internal/interface/http"
	"github.com/jeel735/rewear/internal/interface/middleware"
	"github.com/jeel735/rewear/pkg/helpers"
)

// AdminModule wires the moderation routes. Everything here requires an admin
// session.

type AdminModule struct {
	Handler *handlers.AdminHandler
	JWT     *helpers.JWTManager
}

func NewAdminModule(h *handlers.AdminHandler, jwt *helpers.JWTManager) *AdminModule {
	return &AdminModule{Handler: h, JWT: jwt}
}

func (m *AdminModule) Register(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.Auth(container.GetRedis(), m.JWT))
	admin.Use(middleware.RequireAdmin())
	admin.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID(), nil))
	{
		admin.GET("/dashboard", m.Handler.Dashboard)
		admin.GET("/swaps", m.Handler.ListSwaps)
		admin.POST("/swaps/:id/approve", m.Handler.Approve)
		admin.POST("/swaps/:id/reject", m.Handler.Reject)
	}
}
