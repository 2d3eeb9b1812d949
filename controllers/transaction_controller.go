package controllers

import (
	"coffee-shop/models"
	"coffee-shop/services"
	"coffee-shop/storage"
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type TransactionController struct {
	store    storage.Store
	checkout *services.CheckoutService
}

func NewTransactionController(store storage.Store, checkout *services.CheckoutService) *TransactionController {
	return &TransactionController{store: store, checkout: checkout}
}

// @Summary Checkout
// @Description Validates the form, creates the order from the session cart and removes the ordered lines
// @Tags Storefront
// @Accept json
// @Accept multipart/form-data
// @Produce json
// @Param order body models.CheckoutRequest true "Checkout form"
// @Success 201 {object} models.Response
// @Failure 422 {object} models.ErrorResponse
// @Router /storefront/checkout [post]
func (ctrl *TransactionController) Checkout(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "Invalid request", err)
		return
	}

	order, err := ctrl.checkout.Checkout(c.Request.Context(), sessionFor(c, ctrl.store), req)
	if errors.Is(err, services.ErrCartNotCleared) && order != nil {
		c.JSON(http.StatusCreated, models.Response{
			Success:  true,
			Message:  "Order created, but the cart could not be cleared",
			Data:     order,
			Warnings: []string{models.WarningCartNotCleared},
		})
		return
	}
	if err != nil {
		if ve, ok := services.AsValidationError(err); ok {
			c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{
				Success: false,
				Message: "Please complete the checkout form",
				Errors:  ve.Fields,
			})
			return
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			c.JSON(http.StatusRequestTimeout, models.ErrorResponse{
				Success: false,
				Message: "Checkout cancelled",
			})
			return
		}
		internalError(c, "Failed to create order", err)
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Order created successfully",
		Data:    order,
	})
}
