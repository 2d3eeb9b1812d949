package repositories

import (
	"coffee-shop/models"
	"context"
	"fmt"
	"time"
)

// RemoteCartRepository is the authenticated user's cart in Postgres. It is
// never merged with the session cart.
type RemoteCartRepository struct {
	db DBTX
}

func NewRemoteCartRepository(db DBTX) *RemoteCartRepository {
	return &RemoteCartRepository{db: db}
}

func (r *RemoteCartRepository) ListByUser(ctx context.Context, userID int) ([]models.RemoteCartItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT
			ci.id, ci.user_id, ci.product_id, p.name, p.image_url, p.price,
			ci.quantity, ci.size, ci.temperature, ci.delivery, ci.created_at
		FROM cart_items ci
		JOIN products p ON ci.product_id = p.id
		WHERE ci.user_id = $1
		ORDER BY ci.created_at ASC, ci.id ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query cart items: %w", err)
	}
	defer rows.Close()

	items := []models.RemoteCartItem{}
	for rows.Next() {
		var it models.RemoteCartItem
		if err := rows.Scan(&it.ID, &it.UserID, &it.ProductID, &it.Name, &it.Image, &it.Price,
			&it.Quantity, &it.Size, &it.Temperature, &it.Delivery, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		it.Subtotal = it.Price * int64(it.Quantity)
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *RemoteCartRepository) AddItem(ctx context.Context, userID int, req models.RemoteCartRequest) (int, error) {
	size := req.Size
	if size == "" {
		size = models.SizeRegular
	}
	temperature := req.Temperature
	if temperature == "" {
		temperature = models.TemperatureIce
	}
	delivery := req.Delivery
	if delivery == "" {
		delivery = "Dine In"
	}

	now := time.Now()
	var id int
	err := r.db.QueryRow(ctx, `
		INSERT INTO cart_items (user_id, product_id, quantity, size, temperature, delivery, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`, userID, req.ProductID, req.Quantity, size, temperature, delivery, now, now).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert cart item: %w", err)
	}
	return id, nil
}

func (r *RemoteCartRepository) DeleteItem(ctx context.Context, userID, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM cart_items WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrCartItemNotFound
	}
	return nil
}
