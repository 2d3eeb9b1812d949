package services

import (
	"coffee-shop/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const DefaultProductCacheTTL = 5 * time.Minute

// ProductCache keeps rendered product list pages in Redis, one key per
// page/limit pair.
type ProductCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewProductCache(client *redis.Client, ttl time.Duration) *ProductCache {
	if ttl <= 0 {
		ttl = DefaultProductCacheTTL
	}
	return &ProductCache{client: client, ttl: ttl}
}

type productPage struct {
	Products []models.Product      `json:"data"`
	Meta     models.PaginationMeta `json:"meta"`
}

func productListKey(page, limit int) string {
	return fmt.Sprintf("products_list_p%d_l%d", page, limit)
}

func (c *ProductCache) get(ctx context.Context, page, limit int) (productPage, bool, error) {
	raw, err := c.client.Get(ctx, productListKey(page, limit)).Result()
	if errors.Is(err, redis.Nil) {
		return productPage{}, false, nil
	}
	if err != nil {
		return productPage{}, false, err
	}

	var p productPage
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return productPage{}, false, err
	}
	return p, true, nil
}

func (c *ProductCache) set(ctx context.Context, page, limit int, p productPage) error {
	data, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, productListKey(page, limit), data, c.ttl).Err()
}
