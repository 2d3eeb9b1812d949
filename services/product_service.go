package services

import (
	"coffee-shop/models"
	"coffee-shop/utils"
	"context"
	"errors"
	"fmt"
	"log"
)

const favoriteProductsLimit = 4

var ErrInvalidProductFilter = errors.New("invalid product filter")

type ProductStore interface {
	GetAllCategories(ctx context.Context) ([]models.Category, error)
	GetAllProducts(ctx context.Context, page, limit int) ([]models.Product, int, error)
	GetProductByID(ctx context.Context, id int) (*models.Product, error)
	FilterProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	GetFavoriteProducts(ctx context.Context, limit int) ([]models.Product, error)
}

type ProductService struct {
	productRepo ProductStore
	cache       *ProductCache
}

type ProductOption func(*ProductService)

// WithProductCache serves product list pages from Redis when possible.
// Cache failures are logged and fall through to the store.
func WithProductCache(cache *ProductCache) ProductOption {
	return func(s *ProductService) { s.cache = cache }
}

func NewProductService(productRepo ProductStore, opts ...ProductOption) *ProductService {
	s := &ProductService{productRepo: productRepo}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *ProductService) GetAllCategories(ctx context.Context) ([]models.Category, error) {
	return s.productRepo.GetAllCategories(ctx)
}

func (s *ProductService) GetAllProducts(ctx context.Context, page, limit int) ([]models.Product, models.PaginationMeta, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	if s.cache != nil {
		cached, ok, err := s.cache.get(ctx, page, limit)
		if err != nil {
			log.Printf("product cache read failed: %v", err)
		}
		if ok {
			return cached.Products, cached.Meta, nil
		}
	}

	products, total, err := s.productRepo.GetAllProducts(ctx, page, limit)
	if err != nil {
		return nil, models.PaginationMeta{}, err
	}

	meta := models.PaginationMeta{
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: utils.TotalPages(total, limit),
	}

	if s.cache != nil {
		if err := s.cache.set(ctx, page, limit, productPage{Products: products, Meta: meta}); err != nil {
			log.Printf("product cache write failed: %v", err)
		}
	}

	return products, meta, nil
}

func (s *ProductService) GetProductByID(ctx context.Context, id int) (*models.Product, error) {
	return s.productRepo.GetProductByID(ctx, id)
}

func (s *ProductService) FilterProducts(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	if err := validateProductFilter(filter); err != nil {
		return nil, err
	}
	return s.productRepo.FilterProducts(ctx, filter)
}

func (s *ProductService) GetFavoriteProducts(ctx context.Context) ([]models.Product, error) {
	return s.productRepo.GetFavoriteProducts(ctx, favoriteProductsLimit)
}

func validateProductFilter(f models.ProductFilter) error {
	for name, dir := range map[string]string{"sort_name": f.SortName, "sort_price": f.SortPrice} {
		if dir != "" && dir != "asc" && dir != "desc" {
			return fmt.Errorf("%w: %s must be asc or desc", ErrInvalidProductFilter, name)
		}
	}
	if f.Type != "" && f.Type != models.ProductTypeFlashSale && f.Type != models.ProductTypeBuy1Get1 {
		return fmt.Errorf("%w: sort must be %s or %s", ErrInvalidProductFilter, models.ProductTypeFlashSale, models.ProductTypeBuy1Get1)
	}
	if f.MinPrice < 0 || f.MaxPrice < 0 {
		return fmt.Errorf("%w: prices cannot be negative", ErrInvalidProductFilter)
	}
	if f.MaxPrice > 0 && f.MinPrice > f.MaxPrice {
		return fmt.Errorf("%w: min_price is above max_price", ErrInvalidProductFilter)
	}
	return nil
}
