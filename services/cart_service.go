package services

import (
	"coffee-shop/models"
	"context"
)

type CartSummary struct {
	Items    []models.CartItem `json:"items"`
	Count    int               `json:"count"`
	Subtotal int64             `json:"subtotal"`
}

type CheckoutPreview struct {
	Items    []models.CartItem `json:"items"`
	Delivery string            `json:"delivery"`
	models.Totals
}

type CartService struct{}

func NewCartService() *CartService {
	return &CartService{}
}

func (s *CartService) Add(ctx context.Context, sess Session, req models.AddCartItemRequest) (models.CartItem, error) {
	return sess.Cart.Add(ctx, req.ToCartItem())
}

func (s *CartService) Remove(ctx context.Context, sess Session, id int64) error {
	return sess.Cart.Remove(ctx, id)
}

func (s *CartService) Clear(ctx context.Context, sess Session) error {
	return sess.Cart.Clear(ctx)
}

func (s *CartService) Summary(ctx context.Context, sess Session) (*CartSummary, error) {
	items, err := sess.Cart.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	var subtotal int64
	for _, it := range items {
		subtotal += it.Subtotal()
	}

	return &CartSummary{Items: items, Count: len(items), Subtotal: subtotal}, nil
}

// Preview prices the current cart the way Checkout will.
func (s *CartService) Preview(ctx context.Context, sess Session, delivery string) (*CheckoutPreview, error) {
	items, err := sess.Cart.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	delivery = normalizeCheckout(models.CheckoutRequest{Delivery: delivery}).Delivery

	return &CheckoutPreview{
		Items:    items,
		Delivery: delivery,
		Totals:   CalculateTotals(items, delivery),
	}, nil
}
