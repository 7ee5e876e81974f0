package app

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/HamzaQasim7/inshacollections/internal/cart"
	"github.com/HamzaQasim7/inshacollections/internal/catalog"
	"github.com/HamzaQasim7/inshacollections/internal/checkout"
	"github.com/HamzaQasim7/inshacollections/internal/messaging/kafka/producer"
	"github.com/HamzaQasim7/inshacollections/internal/shared/persist"
	"github.com/HamzaQasim7/inshacollections/internal/wishlist"
)

func registerModules(
	router *gin.Engine,
	store persist.Store,
	publisher producer.EventPublisher,
	logger *zap.Logger,
	loadMoreDelay time.Duration,
	checkoutDelay time.Duration,
) {
	// --- Services ---
	// one instance of each store, passed explicitly to its consumers
	catalogService := catalog.NewService(catalog.Deps{
		LoadMoreDelay: loadMoreDelay,
		Logger:        logger,
	})
	cartService := cart.NewService(cart.Deps{
		CatalogSvc: catalogService,
		Store:      store,
		Logger:     logger,
	})
	wishlistService := wishlist.NewService(wishlist.Deps{
		CatalogSvc: catalogService,
		Store:      store,
		Logger:     logger,
	})
	checkoutService := checkout.NewService(checkout.Deps{
		CartSvc:         cartService,
		Publisher:       publisher,
		Logger:          logger,
		ProcessingDelay: &checkoutDelay,
	})

	// --- Handlers ---
	catalogHandler := catalog.NewHandler(catalogService)
	cartHandler := cart.NewHandler(cartService)
	wishlistHandler := wishlist.NewHandler(wishlistService)
	checkoutHandler := checkout.NewHandler(checkoutService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		catalog.RegisterRoutes(api, catalogHandler)
		cart.RegisterRoutes(api, cartHandler)
		wishlist.RegisterRoutes(api, wishlistHandler)
		checkout.RegisterRoutes(api, checkoutHandler)
	}
}
