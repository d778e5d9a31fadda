package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jeel735/rewear/internal/container"
	handlers "github.com/jeel735/rewear/internal/interface/http"
	"github.com/jeel735/rewear/internal/interface/middleware"
	"github.com/jeel735/rewear/pkg/helpers"
)

// SwapModule wires swap proposal and history routes. All require a session,
// and the path user must be the caller (admins pass).

type SwapModule struct {
	Handler      *handlers.SwapHandler
	JWT          *helpers.JWTManager
	AccountOwner middleware.OwnerLoader
}

func NewSwapModule(h *handlers.SwapHandler, jwt *helpers.JWTManager, accountOwner middleware.OwnerLoader) *SwapModule {
	return &SwapModule{Handler: h, JWT: jwt, AccountOwner: accountOwner}
}

func (m *SwapModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.GET("/users/:id/swaps", middleware.RequireOwnership("id", m.AccountOwner), m.Handler.List)
		auth.POST("/users/:id/swaps", middleware.RequireOwnership("id", m.AccountOwner), m.Handler.Create)
	}
}
