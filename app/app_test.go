package app

import (
	"bytes"
	"coffee-shop/config"
	"coffee-shop/models"
	"coffee-shop/storage"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WithoutDatabaseOrRedis(t *testing.T) {
	gin.SetMode(gin.TestMode)
	config.DB, config.RedisClient = nil, nil

	a := New(&config.Config{JWTSecret: "app-secret"}, gin.New())
	t.Cleanup(a.Close)

	_, inMemory := a.Store.(*storage.MemoryStore)
	assert.True(t, inMemory)

	tests := []struct {
		method string
		path   string
		body   any
		code   int
	}{
		{http.MethodGet, "/health", nil, http.StatusOK},
		{http.MethodGet, "/products", nil, http.StatusNotFound},
		{http.MethodGet, "/products/filter", nil, http.StatusNotFound},
		{http.MethodPost, "/auth/login", models.LoginRequest{Email: "a@b.co", Password: "x"}, http.StatusNotFound},
		{http.MethodGet, "/profile", nil, http.StatusNotFound},
		{http.MethodPost, "/storefront/cart", models.AddCartItemRequest{ProductID: 1, Name: "Caffe Latte", Price: 25000, Quantity: 1}, http.StatusCreated},
		{http.MethodGet, "/storefront/history", nil, http.StatusOK},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		if tt.body != nil {
			require.NoError(t, json.NewEncoder(&buf).Encode(tt.body))
		}
		req := httptest.NewRequest(tt.method, tt.path, &buf)
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		a.Router.ServeHTTP(w, req)
		assert.Equal(t, tt.code, w.Code, "%s %s", tt.method, tt.path)
	}
}
