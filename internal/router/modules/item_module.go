package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jeel735/rewear/internal/container"
	handlers "github.com/jeel735/rewear/internal/interface/http"
	"github.com/jeel735/rewear/internal/interface/middleware"
	"github.com/jeel735/rewear/pkg/helpers"
)

// ItemModule wires the per-user inventory routes. The path user must be the
// caller (admins pass).

type ItemModule struct {
	Handler      *handlers.ItemHandler
	JWT          *helpers.JWTManager
	AccountOwner middleware.OwnerLoader
}

func NewItemModule(h *handlers.ItemHandler, jwt *helpers.JWTManager, accountOwner middleware.OwnerLoader) *ItemModule {
	return &ItemModule{Handler: h, JWT: jwt, AccountOwner: accountOwner}
}

func (m *ItemModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), nil))
	auth.Use(middleware.RequireOwnership("id", m.AccountOwner))
	{
		auth.GET("/users/:id/items", m.Handler.List)
		auth.POST("/users/:id/items", m.Handler.Create)
		auth.PUT("/users/:id/items/:itemId", m.Handler.Update)
	}
}
