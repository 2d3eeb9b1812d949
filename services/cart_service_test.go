package services

import (
	"coffee-shop/models"
	"coffee-shop/storage"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartService_AddSummaryRemove(t *testing.T) {
	ctx := context.Background()
	sess := NewSession(storage.NewMemoryStore(), "guest:c")
	svc := NewCartService()

	first, err := svc.Add(ctx, sess, models.AddCartItemRequest{ProductID: 1, Name: "Latte", Price: 25000, Quantity: 2})
	require.NoError(t, err)
	_, err = svc.Add(ctx, sess, models.AddCartItemRequest{ProductID: 1, Name: "Latte", Price: 25000, Quantity: 2})
	require.NoError(t, err)

	summary, err := svc.Summary(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Count)
	assert.Equal(t, int64(100000), summary.Subtotal)

	require.NoError(t, svc.Remove(ctx, sess, first.ID))
	summary, err = svc.Summary(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Count)

	require.NoError(t, svc.Clear(ctx, sess))
	summary, err = svc.Summary(ctx, sess)
	require.NoError(t, err)
	assert.Zero(t, summary.Count)
	assert.NotNil(t, summary.Items)
}

func TestCartService_Preview(t *testing.T) {
	ctx := context.Background()
	sess := NewSession(storage.NewMemoryStore(), "guest:c")
	seedCart(t, sess, sampleCart())

	preview, err := NewCartService().Preview(ctx, sess, "door-delivery")
	require.NoError(t, err)
	assert.Equal(t, int64(81500), preview.Total)
	assert.Equal(t, models.DeliveryDoorDelivery, preview.Delivery)

	preview, err = NewCartService().Preview(ctx, sess, "")
	require.NoError(t, err)
	assert.Equal(t, models.DeliveryDineIn, preview.Delivery)
	assert.Equal(t, int64(71500), preview.Total)
}
