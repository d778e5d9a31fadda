package router

import (
	"context"

	"github.com/jeel735/rewear/internal/application"
	"github.com/jeel735/rewear/internal/container"
	pginfra "github.com/jeel735/rewear/internal/infrastructure/postgres"
	handlers "github.com/jeel735/rewear/internal/interface/http"
	"github.com/jeel735/rewear/internal/interface/middleware"
	"github.com/jeel735/rewear/internal/router/modules"
	"github.com/jeel735/rewear/pkg/helpers"
)

// InitModules builds repositories, services, and handlers from the container
// singletons and registers every feature module. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	pool := container.GetPGPool()

	users := pginfra.NewUserRepository(pool)
	listings := pginfra.NewListingRepository(pool)
	reviews := pginfra.NewReviewRepository(pool)
	swaps := pginfra.NewSwapRepository(pool)
	items := pginfra.NewItemRepository(pool)

	userSvc := application.NewUserService(
		users,
		container.GetJWT(),
		container.GetRedis(),
		logger,
		container.GetES(),
		cfg.ESUsersIndex,
		container.GetRabbitPub(),
	)
	listingSvc := application.NewListingService(
		listings,
		reviews,
		users,
		swaps,
		container.GetGCS(),
		cfg.GCSBucket,
		container.GetGeocoder(),
		logger,
	)
	reviewSvc := application.NewReviewService(reviews, listings)
	swapSvc := application.NewSwapService(swaps, users, listings, container.GetRabbitPub(), logger)
	itemSvc := application.NewItemService(items)

	cookies := helpers.NewCookie(cfg.CookieDomain, cfg.CookieSecure)

	userHandler := handlers.NewUserHandler(userSvc, listingSvc, itemSvc, swapSvc, logger, cookies)
	listingHandler := handlers.NewListingHandler(listingSvc, logger)
	reviewHandler := handlers.NewReviewHandler(reviewSvc, logger)
	swapHandler := handlers.NewSwapHandler(swapSvc, logger)
	itemHandler := handlers.NewItemHandler(itemSvc, logger)
	adminHandler := handlers.NewAdminHandler(swapSvc, logger)

	listingOwner := middleware.OwnerLoader(func(ctx context.Context, id string) (string, error) {
		l, err := listings.GetByID(ctx, id)
		if err != nil {
			return "", err
		}
		return l.OwnerID, nil
	})
	reviewOwner := middleware.OwnerLoader(func(ctx context.Context, id string) (string, error) {
		rv, err := reviews.GetByID(ctx, id)
		if err != nil {
			return "", err
		}
		return rv.AuthorID, nil
	})
	accountOwner := middleware.OwnerLoader(func(ctx context.Context, id string) (string, error) {
		u, err := users.GetByID(ctx, id)
		if err != nil {
			return "", err
		}
		return u.ID, nil
	})

	jwt := container.GetJWT()
	r.Add(modules.NewUserModule(userHandler, jwt))
	r.Add(modules.NewListingModule(listingHandler, reviewHandler, jwt, listingOwner, reviewOwner))
	r.Add(modules.NewSwapModule(swapHandler, jwt, accountOwner))
	r.Add(modules.NewItemModule(itemHandler, jwt, accountOwner))
	r.Add(modules.NewAdminModule(adminHandler, jwt))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
