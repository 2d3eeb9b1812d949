package controllers

import (
	"coffee-shop/middleware"
	"coffee-shop/models"
	"coffee-shop/services"
	"coffee-shop/storage"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// sessionFor resolves the stores of the caller; SessionMiddleware must run first.
func sessionFor(c *gin.Context, store storage.Store) services.Session {
	return services.NewSession(store, c.GetString(middleware.SessionKey))
}

func pageParams(c *gin.Context, defaultLimit int) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	return page, limit
}

func internalError(c *gin.Context, message string, err error) {
	log.Printf("%s %s: %s: %v", c.Request.Method, c.Request.URL.Path, message, err)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Success: false,
		Message: message,
	})
}

func badRequest(c *gin.Context, message string, err error) {
	resp := models.ErrorResponse{Success: false, Message: message}
	if err != nil {
		resp.Error = err.Error()
	}
	c.JSON(http.StatusBadRequest, resp)
}
