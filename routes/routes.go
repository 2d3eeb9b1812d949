package routes

import (
	"coffee-shop/controllers"
	"coffee-shop/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Dependencies holds the controllers to mount. Database-backed controllers
// may be nil, their routes are then left out.
type Dependencies struct {
	JWTSecret    string
	SecureCookie bool

	Cart        *controllers.CartController
	Transaction *controllers.TransactionController
	History     *controllers.HistoryController

	Auth       *controllers.AuthController
	Product    *controllers.ProductController
	RemoteCart *controllers.RemoteCartController
}

func SetupRoutes(router *gin.Engine, deps Dependencies) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	storefront := router.Group("/storefront")
	storefront.Use(middleware.OptionalAuth(deps.JWTSecret), middleware.SessionMiddleware(deps.SecureCookie))
	{
		storefront.GET("/cart", deps.Cart.GetCart)
		storefront.POST("/cart", deps.Cart.AddToCart)
		storefront.DELETE("/cart", deps.Cart.ClearCart)
		storefront.DELETE("/cart/:id", deps.Cart.RemoveFromCart)

		storefront.GET("/checkout/summary", deps.Cart.CheckoutPreview)
		storefront.POST("/checkout", deps.Transaction.Checkout)

		storefront.GET("/history", deps.History.GetHistory)
		storefront.GET("/history/months", deps.History.GetHistoryMonths)
		storefront.GET("/history/:id", deps.History.GetHistoryDetail)
	}

	if deps.Product != nil {
		router.GET("/categories", deps.Product.GetAllCategories)
		router.GET("/products", deps.Product.GetAllProducts)
		router.GET("/products/filter", deps.Product.FilterProducts)
		router.GET("/products/favorite", deps.Product.GetFavoriteProducts)
		router.GET("/products/:id", deps.Product.GetProductByID)
	}

	if deps.Auth != nil {
		router.POST("/auth/register", deps.Auth.Register)
		router.POST("/auth/login", deps.Auth.Login)
	}

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware(deps.JWTSecret))
	{
		if deps.Auth != nil {
			auth.GET("/profile", deps.Auth.GetProfile)
			auth.PATCH("/profile", deps.Auth.UpdateProfile)
			auth.PATCH("/profile/password", deps.Auth.ChangePassword)
		}
		if deps.RemoteCart != nil {
			auth.GET("/cart", deps.RemoteCart.GetCart)
			auth.POST("/cart", deps.RemoteCart.AddToCart)
			auth.DELETE("/deletecart/:id", deps.RemoteCart.DeleteCart)
		}
	}
}
