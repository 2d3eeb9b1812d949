package services

import (
	"coffee-shop/events"
	"coffee-shop/models"
	"coffee-shop/utils"
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

const orderDateLayout = "02 January 2006"

type CheckoutService struct {
	validate  *validator.Validate
	delay     time.Duration
	now       func() time.Time
	notifier  OrderNotifier
	publisher events.Publisher

	mu  sync.Mutex
	rng *rand.Rand

	wg sync.WaitGroup
}

type CheckoutOption func(*CheckoutService)

// WithProcessingDelay sets the simulated payment processing time.
func WithProcessingDelay(d time.Duration) CheckoutOption {
	return func(s *CheckoutService) { s.delay = d }
}

func WithClock(now func() time.Time) CheckoutOption {
	return func(s *CheckoutService) { s.now = now }
}

func WithRandSource(src rand.Source) CheckoutOption {
	return func(s *CheckoutService) { s.rng = rand.New(src) }
}

func WithNotifier(n OrderNotifier) CheckoutOption {
	return func(s *CheckoutService) { s.notifier = n }
}

func WithPublisher(p events.Publisher) CheckoutOption {
	return func(s *CheckoutService) { s.publisher = p }
}

func NewCheckoutService(opts ...CheckoutOption) *CheckoutService {
	s := &CheckoutService{
		validate:  newCheckoutValidator(),
		delay:     2 * time.Second,
		now:       time.Now,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		publisher: events.NopPublisher{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ErrCartNotCleared accompanies a stored order whose lines could not be
// removed from the cart afterwards.
var ErrCartNotCleared = errors.New("order saved but cart was not cleared")

// Checkout validates the form against the session cart, stores the order at
// the front of the session history and removes the ordered lines from the
// cart. A validation failure returns *ValidationError and leaves storage
// untouched. When only the cart cleanup fails, the stored order is returned
// together with ErrCartNotCleared.
func (s *CheckoutService) Checkout(ctx context.Context, sess Session, req models.CheckoutRequest) (*models.Order, error) {
	req = normalizeCheckout(req)

	items, err := sess.Cart.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	if fields := checkoutFieldErrors(s.validate, req, len(items)); len(fields) > 0 {
		return nil, &ValidationError{Fields: fields}
	}

	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	// the cart may have changed in another tab while the payment was processing
	items, err = sess.Cart.ReadAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, &ValidationError{Fields: map[string]string{"cart": "Cart is empty"}}
	}

	order := s.buildOrder(req, items)

	if err := sess.History.Append(ctx, order); err != nil {
		return nil, fmt.Errorf("failed to save order: %w", err)
	}

	s.afterCheckout(sess.Name, order)

	if err := sess.Cart.Remove(ctx, lineIDs(items)...); err != nil {
		log.Printf("checkout %s: %v", order.OrderID, err)
		return &order, fmt.Errorf("%w: %v", ErrCartNotCleared, err)
	}

	return &order, nil
}

// Wait blocks until pending notifications have finished.
func (s *CheckoutService) Wait() {
	s.wg.Wait()
}

func (s *CheckoutService) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func (s *CheckoutService) buildOrder(req models.CheckoutRequest, items []models.CartItem) models.Order {
	now := s.now()
	totals := CalculateTotals(items, req.Delivery)

	return models.Order{
		ID:          now.UnixMilli(),
		OrderID:     s.orderID(),
		Date:        now.Format(orderDateLayout),
		Items:       copyItems(items),
		Total:       totals.Total,
		OrderTotal:  totals.OrderTotal,
		DeliveryFee: totals.DeliveryFee,
		Tax:         totals.Tax,
		Status:      models.StatusOnProgress,
		StatusColor: models.StatusColor(models.StatusOnProgress),
		CustomerInfo: models.CustomerInfo{
			Email:    req.Email,
			FullName: req.FullName,
			Address:  req.Address,
			Delivery: req.Delivery,
		},
		PaymentMethod: req.PaymentMethod,
		CreatedAt:     now.UTC(),
	}
}

func (s *CheckoutService) orderID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return utils.GenerateOrderID(s.rng)
}

func (s *CheckoutService) afterCheckout(session string, order models.Order) {
	if s.notifier == nil && s.publisher == nil {
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		if s.notifier != nil {
			if err := s.notifier.OrderPlaced(ctx, order); err != nil {
				log.Printf("order %s confirmation email error: %v", order.OrderID, err)
			}
		}
		if s.publisher != nil {
			if err := s.publisher.PublishOrderCreated(ctx, events.NewOrderCreated(session, order)); err != nil {
				log.Printf("order %s publish error: %v", order.OrderID, err)
			}
		}
	}()
}

func normalizeCheckout(req models.CheckoutRequest) models.CheckoutRequest {
	req.Email = strings.TrimSpace(req.Email)
	req.FullName = strings.TrimSpace(req.FullName)
	req.Address = strings.TrimSpace(req.Address)
	req.PaymentMethod = strings.TrimSpace(req.PaymentMethod)
	req.Delivery = strings.ToLower(strings.TrimSpace(req.Delivery))
	if req.Delivery == "" {
		req.Delivery = models.DeliveryDineIn
	}
	return req
}

func lineIDs(items []models.CartItem) []int64 {
	ids := make([]int64, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}

// copyItems detaches the order's line items from the cart slice.
func copyItems(items []models.CartItem) []models.CartItem {
	out := make([]models.CartItem, len(items))
	copy(out, items)
	for i := range out {
		if out[i].OriginalPrice != nil {
			p := *out[i].OriginalPrice
			out[i].OriginalPrice = &p
		}
	}
	return out
}
