package repositories

import (
	"coffee-shop/models"
	"coffee-shop/storage"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"
)

const CartKey = "cart"

// LocalCartStore keeps a session's pending line items as one JSON array.
// Every mutation rewrites the whole array; there is no merge of identical
// products and no validation of the supplied values.
type LocalCartStore struct {
	store storage.Store
	now   func() time.Time
}

func NewLocalCartStore(store storage.Store) *LocalCartStore {
	return &LocalCartStore{store: store, now: time.Now}
}

// Add stores item with a fresh timestamp id and returns the stored copy.
func (s *LocalCartStore) Add(ctx context.Context, item models.CartItem) (models.CartItem, error) {
	items, err := s.ReadAll(ctx)
	if err != nil {
		return models.CartItem{}, err
	}

	item.ID = s.nextID(items)
	items = append(items, item)

	if err := s.write(ctx, items); err != nil {
		return models.CartItem{}, err
	}
	return item, nil
}

// Remove drops the lines with the given ids. Unknown ids are ignored.
func (s *LocalCartStore) Remove(ctx context.Context, ids ...int64) error {
	items, err := s.ReadAll(ctx)
	if err != nil {
		return err
	}

	drop := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	kept := make([]models.CartItem, 0, len(items))
	for _, it := range items {
		if _, ok := drop[it.ID]; !ok {
			kept = append(kept, it)
		}
	}

	return s.write(ctx, kept)
}

// ReadAll reports a missing or corrupt blob as an empty cart. Only backend
// failures are returned.
func (s *LocalCartStore) ReadAll(ctx context.Context) ([]models.CartItem, error) {
	raw, ok, err := s.store.Get(ctx, CartKey)
	if err != nil {
		return nil, fmt.Errorf("failed to read cart: %w", err)
	}
	if !ok {
		return []models.CartItem{}, nil
	}

	var items []models.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		log.Printf("cart parse error: %v", err)
		return []models.CartItem{}, nil
	}
	if items == nil {
		items = []models.CartItem{}
	}
	return items, nil
}

func (s *LocalCartStore) Clear(ctx context.Context) error {
	if err := s.store.Remove(ctx, CartKey); err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

func (s *LocalCartStore) write(ctx context.Context, items []models.CartItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal cart failed: %w", err)
	}
	if err := s.store.Set(ctx, CartKey, string(data)); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

// nextID is the current unix millisecond, bumped past any id already in
// the cart so two adds within the same millisecond stay distinct.
func (s *LocalCartStore) nextID(items []models.CartItem) int64 {
	id := s.now().UnixMilli()
	for _, it := range items {
		if it.ID >= id {
			id = it.ID + 1
		}
	}
	return id
}
