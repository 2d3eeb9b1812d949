package repositories

import (
	"coffee-shop/models"
	"coffee-shop/storage"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct {
	getErr error
	setErr error
}

func (f failingStore) Get(context.Context, string) (string, bool, error) { return "", false, f.getErr }
func (f failingStore) Set(context.Context, string, string) error         { return f.setErr }
func (f failingStore) Remove(context.Context, string) error              { return f.setErr }

func newTestCartStore(t *testing.T) (*LocalCartStore, *storage.MemoryStore) {
	t.Helper()
	mem := storage.NewMemoryStore()
	s := NewLocalCartStore(mem)
	fixed := time.UnixMilli(1_700_000_000_000)
	s.now = func() time.Time { return fixed }
	return s, mem
}

func latte(qty int) models.CartItem {
	return models.CartItem{
		ProductID:   7,
		Name:        "Caramel Latte",
		Price:       25000,
		Quantity:    qty,
		Size:        models.SizeRegular,
		Temperature: models.TemperatureIce,
		Delivery:    "Dine In",
	}
}

func TestLocalCartStore_AddNeverMerges(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestCartStore(t)

	for i := 0; i < 5; i++ {
		_, err := s.Add(ctx, latte(1))
		require.NoError(t, err)
	}

	items, err := s.ReadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 5)

	seen := map[int64]bool{}
	for _, it := range items {
		assert.False(t, seen[it.ID], "duplicate id %d", it.ID)
		seen[it.ID] = true
	}
}

func TestLocalCartStore_AddAssignsTimestampID(t *testing.T) {
	s, _ := newTestCartStore(t)

	stored, err := s.Add(context.Background(), latte(2))
	require.NoError(t, err)
	assert.Equal(t, int64(1_700_000_000_000), stored.ID)
	assert.Equal(t, 2, stored.Quantity)
}

func TestLocalCartStore_AddAcceptsMalformedValues(t *testing.T) {
	s, _ := newTestCartStore(t)

	bad := latte(-3)
	bad.Price = -10
	_, err := s.Add(context.Background(), bad)
	require.NoError(t, err)

	items, err := s.ReadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, -3, items[0].Quantity)
}

func TestLocalCartStore_Remove(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestCartStore(t)

	first, err := s.Add(ctx, latte(1))
	require.NoError(t, err)
	second, err := s.Add(ctx, latte(2))
	require.NoError(t, err)

	require.NoError(t, s.Remove(ctx, first.ID))
	require.NoError(t, s.Remove(ctx, 424242))

	items, err := s.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, second.ID, items[0].ID)
}

func TestLocalCartStore_RemoveSeveral(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestCartStore(t)

	var ids []int64
	for i := 1; i <= 3; i++ {
		it, err := s.Add(ctx, latte(i))
		require.NoError(t, err)
		ids = append(ids, it.ID)
	}

	require.NoError(t, s.Remove(ctx, ids[0], ids[2]))

	items, err := s.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, ids[1], items[0].ID)
}

func TestLocalCartStore_ReadAllCorruptIsEmpty(t *testing.T) {
	ctx := context.Background()
	s, mem := newTestCartStore(t)
	require.NoError(t, mem.Set(ctx, CartKey, "{not json"))

	items, err := s.ReadAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestLocalCartStore_Clear(t *testing.T) {
	ctx := context.Background()
	s, mem := newTestCartStore(t)
	_, err := s.Add(ctx, latte(1))
	require.NoError(t, err)

	require.NoError(t, s.Clear(ctx))

	_, ok, err := mem.Get(ctx, CartKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLocalCartStore_BackendErrors(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")

	_, err := NewLocalCartStore(failingStore{getErr: boom}).ReadAll(ctx)
	assert.ErrorIs(t, err, boom)

	_, err = NewLocalCartStore(failingStore{setErr: boom}).Add(ctx, latte(1))
	assert.ErrorIs(t, err, boom)
}
