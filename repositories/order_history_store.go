package repositories

import (
	"coffee-shop/models"
	"coffee-shop/storage"
	"context"
	"encoding/json"
	"fmt"
	"log"
)

const OrderHistoryKey = "orderHistory"

// OrderHistoryStore is append-only and keeps orders newest first.
type OrderHistoryStore struct {
	store storage.Store
}

func NewOrderHistoryStore(store storage.Store) *OrderHistoryStore {
	return &OrderHistoryStore{store: store}
}

func (s *OrderHistoryStore) Append(ctx context.Context, order models.Order) error {
	orders, err := s.ReadAll(ctx)
	if err != nil {
		return err
	}

	orders = append([]models.Order{order}, orders...)

	data, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("marshal order history failed: %w", err)
	}
	if err := s.store.Set(ctx, OrderHistoryKey, string(data)); err != nil {
		return fmt.Errorf("failed to save order history: %w", err)
	}
	return nil
}

func (s *OrderHistoryStore) ReadAll(ctx context.Context) ([]models.Order, error) {
	raw, ok, err := s.store.Get(ctx, OrderHistoryKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read order history: %w", err)
	}
	if !ok {
		return []models.Order{}, nil
	}

	var orders []models.Order
	if err := json.Unmarshal([]byte(raw), &orders); err != nil {
		log.Printf("order history parse error: %v", err)
		return []models.Order{}, nil
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}
