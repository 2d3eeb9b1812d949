package services

import (
	"coffee-shop/models"
	"coffee-shop/utils"
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

const (
	TabOnProgress   = "On Progress"
	TabSendingGoods = "Sending Goods"
	TabFinishOrder  = "Finish Order"

	MonthAll = "all"

	monthKeyLayout   = "2006-01"
	monthLabelLayout = "January 2006"

	defaultHistoryLimit = 4
	maxHistoryLimit     = 100
	maxSummaryImages    = 4
)

var (
	ErrInvalidTab    = errors.New("invalid status tab")
	ErrInvalidMonth  = errors.New("invalid month filter")
	ErrOrderNotFound = errors.New("order not found")
)

var tabStatus = map[string]string{
	TabOnProgress:   models.StatusOnProgress,
	TabSendingGoods: models.StatusSendingGoods,
	TabFinishOrder:  models.StatusFinish,
}

type HistoryQuery struct {
	Tab   string
	Month string
	Page  int
	Limit int
}

type HistoryPage struct {
	Orders []models.OrderSummary
	Meta   models.PaginationMeta
}

type HistoryService struct{}

func NewHistoryService() *HistoryService {
	return &HistoryService{}
}

func (s *HistoryService) List(ctx context.Context, sess Session, q HistoryQuery) (*HistoryPage, error) {
	orders, err := sess.History.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	return FilterHistory(orders, q)
}

func (s *HistoryService) Get(ctx context.Context, sess Session, orderID string) (*models.Order, error) {
	orders, err := sess.History.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].OrderID == orderID || fmt.Sprint(orders[i].ID) == orderID {
			return &orders[i], nil
		}
	}
	return nil, ErrOrderNotFound
}

func (s *HistoryService) Months(ctx context.Context, sess Session) ([]models.MonthOption, error) {
	orders, err := sess.History.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	return GroupMonths(orders), nil
}

// FilterHistory keeps the orders matching both the status tab and the month,
// then slices out the requested page. Input order is preserved.
func FilterHistory(orders []models.Order, q HistoryQuery) (*HistoryPage, error) {
	tab := strings.TrimSpace(q.Tab)
	if tab == "" {
		tab = TabOnProgress
	}
	status, ok := tabStatus[tab]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTab, q.Tab)
	}

	month := strings.TrimSpace(q.Month)
	var monthStart time.Time
	if month != "" && month != MonthAll {
		t, err := time.Parse(monthKeyLayout, month)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidMonth, q.Month)
		}
		monthStart = t
	}

	matched := []models.Order{}
	for _, o := range orders {
		if o.Status != status {
			continue
		}
		if !monthStart.IsZero() && monthKey(o.CreatedAt) != monthStart.Format(monthKeyLayout) {
			continue
		}
		matched = append(matched, o)
	}

	page, limit := q.Page, q.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	total := len(matched)
	totalPages := utils.TotalPages(total, limit)

	start := utils.PageOffset(page, limit, total)
	end := start + limit
	if end > total {
		end = total
	}

	summaries := make([]models.OrderSummary, 0, end-start)
	for _, o := range matched[start:end] {
		summaries = append(summaries, summarize(o))
	}

	return &HistoryPage{
		Orders: summaries,
		Meta: models.PaginationMeta{
			Page:       page,
			Limit:      limit,
			TotalItems: total,
			TotalPages: totalPages,
		},
	}, nil
}

// GroupMonths lists the distinct months orders were placed in, newest first.
func GroupMonths(orders []models.Order) []models.MonthOption {
	counts := map[string]int{}
	for _, o := range orders {
		counts[monthKey(o.CreatedAt)]++
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	out := make([]models.MonthOption, 0, len(keys))
	for _, k := range keys {
		t, _ := time.Parse(monthKeyLayout, k)
		out = append(out, models.MonthOption{
			Key:   k,
			Label: t.Format(monthLabelLayout),
			Count: counts[k],
		})
	}
	return out
}

func monthKey(t time.Time) string {
	return t.UTC().Format(monthKeyLayout)
}

func summarize(o models.Order) models.OrderSummary {
	images := []string{}
	for _, it := range o.Items {
		if len(images) == maxSummaryImages {
			break
		}
		if it.Image != "" {
			images = append(images, it.Image)
		}
	}

	return models.OrderSummary{
		ID:          o.ID,
		OrderID:     o.OrderID,
		Date:        o.Date,
		Status:      o.Status,
		StatusColor: o.StatusColor,
		Total:       o.Total,
		TotalItems:  len(o.Items),
		Images:      images,
		CreatedAt:   o.CreatedAt,
	}
}
