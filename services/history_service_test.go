package services

import (
	"coffee-shop/models"
	"coffee-shop/storage"
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func historyOrder(id int64, status string, createdAt time.Time) models.Order {
	return models.Order{
		ID:        id,
		OrderID:   fmt.Sprintf("#%05d-AAAAA", id),
		Status:    status,
		CreatedAt: createdAt,
		Items:     []models.CartItem{{Name: "Latte", Image: "latte.png", Price: 1, Quantity: 1}},
	}
}

func TestFilterHistory_FinishTab(t *testing.T) {
	now := time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)
	orders := []models.Order{
		historyOrder(2, models.StatusOnProgress, now),
		historyOrder(1, models.StatusFinish, now),
	}

	page, err := FilterHistory(orders, HistoryQuery{Tab: TabFinishOrder, Month: MonthAll})
	require.NoError(t, err)
	require.Len(t, page.Orders, 1)
	assert.Equal(t, int64(1), page.Orders[0].ID)
	assert.Equal(t, models.StatusFinish, page.Orders[0].Status)
}

func TestFilterHistory_DefaultsToOnProgress(t *testing.T) {
	now := time.Now()
	orders := []models.Order{
		historyOrder(3, models.StatusSendingGoods, now),
		historyOrder(2, models.StatusOnProgress, now),
	}

	page, err := FilterHistory(orders, HistoryQuery{})
	require.NoError(t, err)
	require.Len(t, page.Orders, 1)
	assert.Equal(t, int64(2), page.Orders[0].ID)
}

func TestFilterHistory_MonthAndStatusCombined(t *testing.T) {
	may := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	april := time.Date(2026, 4, 30, 23, 0, 0, 0, time.UTC)
	orders := []models.Order{
		historyOrder(4, models.StatusOnProgress, may),
		historyOrder(3, models.StatusFinish, may),
		historyOrder(2, models.StatusOnProgress, april),
		historyOrder(1, models.StatusOnProgress, april.AddDate(-1, 0, 0)),
	}

	page, err := FilterHistory(orders, HistoryQuery{Tab: TabOnProgress, Month: "2026-04"})
	require.NoError(t, err)
	require.Len(t, page.Orders, 1)
	assert.Equal(t, int64(2), page.Orders[0].ID)

	page, err = FilterHistory(orders, HistoryQuery{Tab: TabOnProgress, Month: "all"})
	require.NoError(t, err)
	assert.Equal(t, 3, page.Meta.TotalItems)
}

func TestFilterHistory_InvalidFilters(t *testing.T) {
	_, err := FilterHistory(nil, HistoryQuery{Tab: "Cancelled"})
	assert.ErrorIs(t, err, ErrInvalidTab)

	_, err = FilterHistory(nil, HistoryQuery{Month: "May"})
	assert.ErrorIs(t, err, ErrInvalidMonth)
}

func TestFilterHistory_Pagination(t *testing.T) {
	now := time.Now()
	var orders []models.Order
	for i := 10; i >= 1; i-- {
		orders = append(orders, historyOrder(int64(i), models.StatusOnProgress, now))
	}

	page, err := FilterHistory(orders, HistoryQuery{Page: 3})
	require.NoError(t, err)
	assert.Equal(t, models.PaginationMeta{Page: 3, Limit: 4, TotalItems: 10, TotalPages: 3}, page.Meta)
	require.Len(t, page.Orders, 2)
	assert.Equal(t, int64(2), page.Orders[0].ID)
	assert.Equal(t, int64(1), page.Orders[1].ID)

	page, err = FilterHistory(orders, HistoryQuery{Page: 9, Limit: 5})
	require.NoError(t, err)
	assert.Empty(t, page.Orders)
	assert.Equal(t, 2, page.Meta.TotalPages)

	page, err = FilterHistory(orders, HistoryQuery{Limit: 1000})
	require.NoError(t, err)
	assert.Equal(t, 100, page.Meta.Limit)
}

func TestFilterHistory_PageBeyondRange(t *testing.T) {
	now := time.Now()
	orders := []models.Order{
		historyOrder(2, models.StatusOnProgress, now),
		historyOrder(1, models.StatusOnProgress, now),
	}

	for _, p := range []int{math.MaxInt, math.MaxInt / 4, math.MaxInt/100 + 2} {
		var page *HistoryPage
		var err error
		require.NotPanics(t, func() {
			page, err = FilterHistory(orders, HistoryQuery{Page: p, Limit: 100})
		})
		require.NoError(t, err)
		assert.Empty(t, page.Orders)
		assert.Equal(t, 2, page.Meta.TotalItems)
		assert.Equal(t, 1, page.Meta.TotalPages)
	}
}

func TestFilterHistory_SummaryImagesCapped(t *testing.T) {
	o := historyOrder(1, models.StatusOnProgress, time.Now())
	o.Items = nil
	for i := 0; i < 6; i++ {
		o.Items = append(o.Items, models.CartItem{Image: fmt.Sprintf("%d.png", i), Quantity: 1})
	}

	page, err := FilterHistory([]models.Order{o}, HistoryQuery{})
	require.NoError(t, err)
	assert.Len(t, page.Orders[0].Images, 4)
	assert.Equal(t, 6, page.Orders[0].TotalItems)
}

func TestGroupMonths(t *testing.T) {
	orders := []models.Order{
		historyOrder(4, models.StatusOnProgress, time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)),
		historyOrder(3, models.StatusFinish, time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)),
		historyOrder(2, models.StatusOnProgress, time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)),
		historyOrder(1, models.StatusOnProgress, time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC)),
	}

	assert.Equal(t, []models.MonthOption{
		{Key: "2026-05", Label: "May 2026", Count: 2},
		{Key: "2026-01", Label: "January 2026", Count: 1},
		{Key: "2025-12", Label: "December 2025", Count: 1},
	}, GroupMonths(orders))
}

func TestHistoryService_GetAndList(t *testing.T) {
	ctx := context.Background()
	sess := NewSession(storage.NewMemoryStore(), "guest:h")
	o := historyOrder(5, models.StatusOnProgress, time.Now())
	require.NoError(t, sess.History.Append(ctx, o))

	svc := NewHistoryService()

	got, err := svc.Get(ctx, sess, o.OrderID)
	require.NoError(t, err)
	assert.Equal(t, o.ID, got.ID)

	got, err = svc.Get(ctx, sess, "5")
	require.NoError(t, err)
	assert.Equal(t, o.OrderID, got.OrderID)

	_, err = svc.Get(ctx, sess, "#NOPE")
	assert.ErrorIs(t, err, ErrOrderNotFound)

	page, err := svc.List(ctx, sess, HistoryQuery{})
	require.NoError(t, err)
	assert.Len(t, page.Orders, 1)

	months, err := svc.Months(ctx, sess)
	require.NoError(t, err)
	assert.Len(t, months, 1)
}
