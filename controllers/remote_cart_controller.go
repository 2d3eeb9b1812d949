package controllers

import (
	"coffee-shop/models"
	"coffee-shop/repositories"
	"coffee-shop/services"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type RemoteCartController struct {
	carts *services.RemoteCartService
}

func NewRemoteCartController(carts *services.RemoteCartService) *RemoteCartController {
	return &RemoteCartController{carts: carts}
}

// @Summary Get account cart
// @Description Cart rows stored for the signed-in user
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *RemoteCartController) GetCart(c *gin.Context) {
	items, subtotal, err := ctrl.carts.List(c.Request.Context(), c.GetInt("user_id"))
	if err != nil {
		internalError(c, "Failed to load cart", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart retrieved successfully",
		Data: gin.H{
			"items":    items,
			"subtotal": subtotal,
		},
	})
}

// @Summary Add to account cart
// @Tags Cart
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param item body models.RemoteCartRequest true "Cart item"
// @Success 201 {object} models.Response
// @Router /cart [post]
func (ctrl *RemoteCartController) AddToCart(c *gin.Context) {
	var req models.RemoteCartRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, "Invalid request", err)
		return
	}

	id, err := ctrl.carts.Add(c.Request.Context(), c.GetInt("user_id"), req)
	if err != nil {
		internalError(c, "Failed to add item to cart", err)
		return
	}

	c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Item added to cart",
		Data:    gin.H{"id": id},
	})
}

// @Summary Delete from account cart
// @Tags Cart
// @Security BearerAuth
// @Produce json
// @Param id path int true "Cart item ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /deletecart/{id} [delete]
func (ctrl *RemoteCartController) DeleteCart(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		badRequest(c, "Invalid cart item ID", nil)
		return
	}

	err = ctrl.carts.Delete(c.Request.Context(), c.GetInt("user_id"), id)
	if errors.Is(err, repositories.ErrCartItemNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "Cart item not found"})
		return
	}
	if err != nil {
		internalError(c, "Failed to delete cart item", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Cart item deleted",
		Data:    gin.H{"id": id},
	})
}
