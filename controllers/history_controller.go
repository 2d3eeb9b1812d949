package controllers

import (
	"coffee-shop/models"
	"coffee-shop/services"
	"coffee-shop/storage"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type HistoryController struct {
	store   storage.Store
	history *services.HistoryService
}

func NewHistoryController(store storage.Store, history *services.HistoryService) *HistoryController {
	return &HistoryController{store: store, history: history}
}

// @Summary Get order history
// @Description Orders of the session filtered by status tab and month, newest first
// @Tags Storefront
// @Produce json
// @Param status query string false "On Progress, Sending Goods or Finish Order"
// @Param month query string false "all or YYYY-MM"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} models.PaginationResponse
// @Router /storefront/history [get]
func (ctrl *HistoryController) GetHistory(c *gin.Context) {
	page, limit := pageParams(c, 4)

	result, err := ctrl.history.List(c.Request.Context(), sessionFor(c, ctrl.store), services.HistoryQuery{
		Tab:   c.Query("status"),
		Month: c.DefaultQuery("month", services.MonthAll),
		Page:  page,
		Limit: limit,
	})
	if err != nil {
		if errors.Is(err, services.ErrInvalidTab) || errors.Is(err, services.ErrInvalidMonth) {
			badRequest(c, "Invalid history filter", err)
			return
		}
		internalError(c, "Failed to load order history", err)
		return
	}

	c.JSON(http.StatusOK, models.PaginationResponse{
		Success: true,
		Message: "Order history retrieved",
		Data:    result.Orders,
		Meta:    result.Meta,
	})
}

// @Summary Order history months
// @Tags Storefront
// @Produce json
// @Success 200 {object} models.Response
// @Router /storefront/history/months [get]
func (ctrl *HistoryController) GetHistoryMonths(c *gin.Context) {
	months, err := ctrl.history.Months(c.Request.Context(), sessionFor(c, ctrl.store))
	if err != nil {
		internalError(c, "Failed to load order history", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Order months retrieved",
		Data:    months,
	})
}

// @Summary Order detail
// @Tags Storefront
// @Produce json
// @Param id path string true "Order code or numeric ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /storefront/history/{id} [get]
func (ctrl *HistoryController) GetHistoryDetail(c *gin.Context) {
	order, err := ctrl.history.Get(c.Request.Context(), sessionFor(c, ctrl.store), c.Param("id"))
	if errors.Is(err, services.ErrOrderNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "Order not found"})
		return
	}
	if err != nil {
		internalError(c, "Failed to load order", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Order retrieved successfully",
		Data:    order,
	})
}
