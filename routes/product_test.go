package routes

import (
	"coffee-shop/controllers"
	"coffee-shop/models"
	"coffee-shop/repositories"
	"coffee-shop/services"
	"coffee-shop/storage"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type menu struct {
	products  []models.Product
	gotFilter models.ProductFilter
}

func (m *menu) GetAllCategories(context.Context) ([]models.Category, error) {
	return []models.Category{{ID: 1, Name: "Coffee", IsActive: true}}, nil
}

func (m *menu) GetAllProducts(_ context.Context, page, limit int) ([]models.Product, int, error) {
	return m.products, len(m.products), nil
}

func (m *menu) GetProductByID(_ context.Context, id int) (*models.Product, error) {
	for _, p := range m.products {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *menu) FilterProducts(_ context.Context, filter models.ProductFilter) ([]models.Product, error) {
	m.gotFilter = filter
	return m.products[:1], nil
}

func (m *menu) GetFavoriteProducts(_ context.Context, limit int) ([]models.Product, error) {
	var out []models.Product
	for _, p := range m.products {
		if p.IsFavorite && len(out) < limit {
			out = append(out, p)
		}
	}
	return out, nil
}

func newCatalogServer(t *testing.T) (*testServer, *menu) {
	t.Helper()
	store := storage.NewMemoryStore()
	checkout := services.NewCheckoutService(services.WithProcessingDelay(0))
	t.Cleanup(checkout.Wait)

	m := &menu{products: []models.Product{
		{ID: 1, Name: "Caramel Latte", Price: 25000, IsFavorite: true},
		{ID: 2, Name: "Americano", Price: 15000},
		{ID: 3, Name: "Hazelnut Latte", Price: 28000, IsFavorite: true, IsBuy1Get1: true},
	}}

	router := gin.New()
	SetupRoutes(router, Dependencies{
		JWTSecret:   testSecret,
		Cart:        controllers.NewCartController(store, services.NewCartService()),
		Transaction: controllers.NewTransactionController(store, checkout),
		History:     controllers.NewHistoryController(store, services.NewHistoryService()),
		Product:     controllers.NewProductController(services.NewProductService(m)),
	})
	return &testServer{router: router, store: store}, m
}

func TestProductFilter(t *testing.T) {
	s, m := newCatalogServer(t)

	w, _ := s.do(t, http.MethodGet, "/products/filter?search=latte&category=favorite&sort=buy1get1&sort_price=desc&min_price=10000&max_price=30000", "", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body models.ListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 1, body.Total)
	assert.Equal(t, models.ProductFilter{
		Search:    "latte",
		Category:  "favorite",
		Type:      models.ProductTypeBuy1Get1,
		SortPrice: "desc",
		MinPrice:  10000,
		MaxPrice:  30000,
	}, m.gotFilter)
}

func TestProductFilterRejectsBadInput(t *testing.T) {
	s, _ := newCatalogServer(t)

	for _, q := range []string{
		"sort_name=sideways",
		"sort=bogo",
		"min_price=abc",
		"min_price=50000&max_price=10000",
	} {
		w, env := s.do(t, http.MethodGet, "/products/filter?"+q, "", "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
		assert.False(t, env.Success, q)
	}
}

func TestFavoriteProducts(t *testing.T) {
	s, _ := newCatalogServer(t)

	w, env := s.do(t, http.MethodGet, "/products/favorite", "", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var products []models.Product
	require.NoError(t, json.Unmarshal(env.Data, &products))
	require.Len(t, products, 2)
	assert.True(t, products[0].IsFavorite)

	w, _ = s.do(t, http.MethodGet, "/products/3", "", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
