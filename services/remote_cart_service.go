package services

import (
	"coffee-shop/models"
	"context"
)

type RemoteCartStore interface {
	ListByUser(ctx context.Context, userID int) ([]models.RemoteCartItem, error)
	AddItem(ctx context.Context, userID int, req models.RemoteCartRequest) (int, error)
	DeleteItem(ctx context.Context, userID, id int) error
}

// RemoteCartService serves the signed-in user's server cart. It does not
// touch the session cart.
type RemoteCartService struct {
	repo RemoteCartStore
}

func NewRemoteCartService(repo RemoteCartStore) *RemoteCartService {
	return &RemoteCartService{repo: repo}
}

func (s *RemoteCartService) List(ctx context.Context, userID int) ([]models.RemoteCartItem, int64, error) {
	items, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, 0, err
	}

	var subtotal int64
	for _, it := range items {
		subtotal += it.Subtotal
	}
	return items, subtotal, nil
}

func (s *RemoteCartService) Add(ctx context.Context, userID int, req models.RemoteCartRequest) (int, error) {
	return s.repo.AddItem(ctx, userID, req)
}

func (s *RemoteCartService) Delete(ctx context.Context, userID, id int) error {
	return s.repo.DeleteItem(ctx, userID, id)
}
