package repositories

import (
	"coffee-shop/models"
	"coffee-shop/storage"
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderHistoryStore_NewestFirst(t *testing.T) {
	ctx := context.Background()
	s := NewOrderHistoryStore(storage.NewMemoryStore())

	for i := 1; i <= 3; i++ {
		require.NoError(t, s.Append(ctx, models.Order{ID: int64(i), OrderID: fmt.Sprintf("#%d", i)}))
	}

	orders, err := s.ReadAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, []int64{3, 2, 1}, []int64{orders[0].ID, orders[1].ID, orders[2].ID})
}

func TestOrderHistoryStore_EmptyAndCorrupt(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemoryStore()
	s := NewOrderHistoryStore(mem)

	orders, err := s.ReadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)

	require.NoError(t, mem.Set(ctx, OrderHistoryKey, "null"))
	orders, err = s.ReadAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, orders)

	require.NoError(t, mem.Set(ctx, OrderHistoryKey, "[{"))
	orders, err = s.ReadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}
