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

type ProductController struct {
	products *services.ProductService
}

func NewProductController(products *services.ProductService) *ProductController {
	return &ProductController{products: products}
}

// @Summary Get categories
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response
// @Router /categories [get]
func (ctrl *ProductController) GetAllCategories(c *gin.Context) {
	categories, err := ctrl.products.GetAllCategories(c.Request.Context())
	if err != nil {
		internalError(c, "Failed to get categories", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Categories retrieved successfully",
		Data:    categories,
	})
}

// @Summary Get products
// @Tags Products
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} models.PaginationResponse
// @Router /products [get]
func (ctrl *ProductController) GetAllProducts(c *gin.Context) {
	page, limit := pageParams(c, 10)

	products, meta, err := ctrl.products.GetAllProducts(c.Request.Context(), page, limit)
	if err != nil {
		internalError(c, "Failed to get products", err)
		return
	}

	c.JSON(http.StatusOK, models.PaginationResponse{
		Success: true,
		Message: "Products retrieved successfully",
		Data:    products,
		Meta:    meta,
	})
}

// @Summary Filter products
// @Description Filter products by search, category, type, price range and sort order
// @Tags Products
// @Produce json
// @Param search query string false "Search by product name"
// @Param category query string false "Category name, or favorite"
// @Param sort query string false "Product type" Enums(flash_sale, buy1get1)
// @Param sort_name query string false "Sort by name" Enums(asc, desc)
// @Param sort_price query string false "Sort by price" Enums(asc, desc)
// @Param min_price query int false "Minimum price"
// @Param max_price query int false "Maximum price"
// @Success 200 {object} models.ListResponse
// @Failure 400 {object} models.ErrorResponse
// @Router /products/filter [get]
func (ctrl *ProductController) FilterProducts(c *gin.Context) {
	var filter models.ProductFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		badRequest(c, "Invalid filter", err)
		return
	}

	products, err := ctrl.products.FilterProducts(c.Request.Context(), filter)
	if errors.Is(err, services.ErrInvalidProductFilter) {
		badRequest(c, "Invalid filter", err)
		return
	}
	if err != nil {
		internalError(c, "Failed to filter products", err)
		return
	}

	c.JSON(http.StatusOK, models.ListResponse{
		Success: true,
		Message: "Products filtered",
		Data:    products,
		Total:   len(products),
	})
}

// @Summary Get favorite products
// @Description Up to four favorite products, newest first
// @Tags Products
// @Produce json
// @Success 200 {object} models.Response
// @Router /products/favorite [get]
func (ctrl *ProductController) GetFavoriteProducts(c *gin.Context) {
	products, err := ctrl.products.GetFavoriteProducts(c.Request.Context())
	if err != nil {
		internalError(c, "Failed to get favorite products", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Favorite products retrieved",
		Data:    products,
	})
}

// @Summary Get product by ID
// @Tags Products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /products/{id} [get]
func (ctrl *ProductController) GetProductByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		badRequest(c, "Invalid product ID", nil)
		return
	}

	product, err := ctrl.products.GetProductByID(c.Request.Context(), id)
	if errors.Is(err, repositories.ErrNotFound) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{Success: false, Message: "Product not found"})
		return
	}
	if err != nil {
		internalError(c, "Failed to get product", err)
		return
	}

	c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Product retrieved successfully",
		Data:    product,
	})
}
