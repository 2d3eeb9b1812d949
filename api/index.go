package api

import (
	"coffee-shop/app"
	"coffee-shop/config"
	_ "coffee-shop/docs"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
)

var (
	application *app.App
	once        sync.Once
)

func initApp() {
	once.Do(func() {
		gin.SetMode(gin.ReleaseMode)

		cfg := config.LoadConfig()
		config.ConnectDB()
		config.ConnectRedis()

		router := gin.New()
		router.Use(gin.Recovery())
		application = app.New(cfg, router)
	})
}

// Handler is the serverless entry point.
func Handler(w http.ResponseWriter, r *http.Request) {
	initApp()
	application.Router.ServeHTTP(w, r)
}
