// Package app wires configuration, storage and controllers into a router.
// Both the long-running server and the serverless entry point use it.
package app

import (
	"coffee-shop/config"
	"coffee-shop/controllers"
	"coffee-shop/events"
	"coffee-shop/middleware"
	"coffee-shop/repositories"
	"coffee-shop/routes"
	"coffee-shop/services"
	"coffee-shop/storage"
	"log"

	"github.com/gin-gonic/gin"
)

type App struct {
	Router    *gin.Engine
	Store     storage.Store
	Checkout  *services.CheckoutService
	Publisher events.Publisher
}

// New expects config.ConnectDB and config.ConnectRedis to have run. Without
// Redis the session store lives in process memory.
func New(cfg *config.Config, router *gin.Engine) *App {
	var store storage.Store
	if config.RedisClient != nil {
		store = storage.NewRedisStore(config.RedisClient, cfg.StoreTTL)
	} else {
		store = storage.NewMemoryStore()
	}

	checkoutOpts := []services.CheckoutOption{services.WithProcessingDelay(cfg.CheckoutDelay)}

	mailer, err := services.NewEmailService(services.SMTPConfig{
		Host: cfg.SMTPHost,
		Port: cfg.SMTPPort,
		User: cfg.SMTPUser,
		Pass: cfg.SMTPPass,
		From: cfg.SMTPFrom,
	})
	if err != nil {
		log.Printf("Order confirmation emails disabled: %v", err)
	} else {
		checkoutOpts = append(checkoutOpts, services.WithNotifier(mailer))
	}

	var publisher events.Publisher = events.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		publisher = events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.OrderEventsTopic)
		log.Printf("Publishing order events to %s", cfg.OrderEventsTopic)
	}
	checkoutOpts = append(checkoutOpts, services.WithPublisher(publisher))

	checkout := services.NewCheckoutService(checkoutOpts...)

	deps := routes.Dependencies{
		JWTSecret:    cfg.JWTSecret,
		SecureCookie: cfg.AppEnv == "production",
		Cart:         controllers.NewCartController(store, services.NewCartService()),
		Transaction:  controllers.NewTransactionController(store, checkout),
		History:      controllers.NewHistoryController(store, services.NewHistoryService()),
	}

	if config.DB != nil {
		userRepo := repositories.NewUserRepository(config.DB)
		deps.Auth = controllers.NewAuthController(services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry))
		var productOpts []services.ProductOption
		if config.RedisClient != nil {
			productOpts = append(productOpts, services.WithProductCache(services.NewProductCache(config.RedisClient, cfg.ProductCacheTTL)))
		}
		deps.Product = controllers.NewProductController(services.NewProductService(repositories.NewProductRepository(config.DB), productOpts...))
		deps.RemoteCart = controllers.NewRemoteCartController(services.NewRemoteCartService(repositories.NewRemoteCartRepository(config.DB)))
	}

	router.Use(middleware.CORSMiddleware(cfg.OriginURL))
	routes.SetupRoutes(router, deps)

	return &App{
		Router:    router,
		Store:     store,
		Checkout:  checkout,
		Publisher: publisher,
	}
}

// Close waits for in-flight order notifications and flushes the publisher.
func (a *App) Close() {
	a.Checkout.Wait()
	if err := a.Publisher.Close(); err != nil {
		log.Printf("Failed to close order publisher: %v", err)
	}
}
