package controllers

import (
	"coffee-shop/models"
	"coffee-shop/services"
	"coffee-shop/storage"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	store storage.Store
	carts *services.CartService
}

func NewCartController(store storage.Store, carts *services.CartService) *CartController {
	return &CartController{store: store, carts: carts}
}

// @Summary Get session cart
// @Description Line items of the current guest or user session
// @Tags Storefront
// @Produce json
// @Success 200 {object} models.Response
// @Router /storefront/cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	summary, err := ctrl.carts.Summary(c.Request.Context(), sessionFor(c, ctrl.store))
	if err != nil {
		internalError(c, "Failed to load cart", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart retrieved successfully",
		Data:    summary,
	})
}

// @Summary Add to session cart
// @Description Appends a line item; identical products are not merged
// @Tags Storefront
// @Accept json
// @Produce json
// @Param item body models.AddCartItemRequest true "Line item"
// @Success 201 {object} models.Response
// @Router /storefront/cart [post]
func (ctrl *CartController) AddToCart(c *gin.Context) {
	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request", err)
		return
	}

	item, err := ctrl.carts.Add(c.Request.Context(), sessionFor(c, ctrl.store), req)
	if err != nil {
		internalError(c, "Failed to add item to cart", err)
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Item added to cart",
		Data:    item,
	})
}

// @Summary Remove from session cart
// @Tags Storefront
// @Produce json
// @Param id path int true "Line item ID"
// @Success 200 {object} models.Response
// @Router /storefront/cart/{id} [delete]
func (ctrl *CartController) RemoveFromCart(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		badRequest(c, "Invalid cart item ID", nil)
		return
	}

	if err := ctrl.carts.Remove(c.Request.Context(), sessionFor(c, ctrl.store), id); err != nil {
		internalError(c, "Failed to remove cart item", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Item removed from cart",
		Data:    gin.H{"id": id},
	})
}

// @Summary Clear session cart
// @Tags Storefront
// @Produce json
// @Success 200 {object} models.Response
// @Router /storefront/cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	if err := ctrl.carts.Clear(c.Request.Context(), sessionFor(c, ctrl.store)); err != nil {
		internalError(c, "Failed to clear cart", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{Success: true, Message: "Cart cleared"})
}

// @Summary Checkout preview
// @Description Order total, delivery fee, tax and grand total of the session cart
// @Tags Storefront
// @Produce json
// @Param delivery query string false "dine-in, door-delivery or pick-up"
// @Success 200 {object} models.Response
// @Router /storefront/checkout/summary [get]
func (ctrl *CartController) CheckoutPreview(c *gin.Context) {
	preview, err := ctrl.carts.Preview(c.Request.Context(), sessionFor(c, ctrl.store), c.Query("delivery"))
	if err != nil {
		internalError(c, "Failed to load cart", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Checkout summary",
		Data:    preview,
	})
}
