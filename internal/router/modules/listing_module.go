package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jeel735/rewear/internal/container"
	handlers "github.com/jeel735/rewear/internal/interface/http"
	"github.com/jeel735/rewear/internal/interface/middleware"
	"github.com/jeel735/rewear/pkg/helpers"
)

// ListingModule wires the public directory and the authenticated listing CRUD.
// Browsing and detail pages need no session; mutations require the session
// and, for update/delete, ownership of the listing.

type ListingModule struct {
	Handler      *handlers.ListingHandler
	Reviews      *handlers.ReviewHandler
	JWT          *helpers.JWTManager
	ListingOwner middleware.OwnerLoader
	ReviewOwner  middleware.OwnerLoader
}

func NewListingModule(h *handlers.ListingHandler, reviews *handlers.ReviewHandler, jwt *helpers.JWTManager, listingOwner, reviewOwner middleware.OwnerLoader) *ListingModule {
	return &ListingModule{Handler: h, Reviews: reviews, JWT: jwt, ListingOwner: listingOwner, ReviewOwner: reviewOwner}
}

func (m *ListingModule) Register(rg *gin.RouterGroup) {
	browseLimiter := middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	rg.GET("/listings", browseLimiter, m.Handler.Search)
	rg.GET("/listings/:id", browseLimiter, m.Handler.Get)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(container.GetRedis(), m.JWT))
	auth.Use(middleware.RateLimit(container.GetRedis(), 60, time.Minute, middleware.KeyByUserID(), nil))
	{
		auth.POST("/listings", m.Handler.Create)
		auth.PUT("/listings/:id", middleware.RequireOwnership("id", m.ListingOwner), m.Handler.Update)
		auth.DELETE("/listings/:id", middleware.RequireOwnership("id", m.ListingOwner), m.Handler.Delete)

		auth.POST("/listings/:id/reviews", m.Reviews.Create)
		auth.DELETE("/listings/:id/reviews/:reviewId", middleware.RequireOwnership("reviewId", m.ReviewOwner), m.Reviews.Delete)
	}
}
