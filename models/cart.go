package models

import "time"

const (
	SizeRegular = "Regular"
	SizeMedium  = "Medium"
	SizeLarge   = "Large"

	TemperatureIce = "Ice"
	TemperatureHot = "Hot"
)

// CartItem is one line item of a session cart. Price is a unit price in IDR.
type CartItem struct {
	ID            int64  `json:"id"`
	ProductID     int    `json:"productId"`
	Name          string `json:"name"`
	Image         string `json:"image"`
	Price         int64  `json:"price"`
	OriginalPrice *int64 `json:"originalPrice,omitempty"`
	IsFlashSale   bool   `json:"isFlashSale"`
	Quantity      int    `json:"quantity"`
	Size          string `json:"size"`
	Temperature   string `json:"temperature"`
	Delivery      string `json:"delivery"`
}

// Subtotal is the line amount, price times quantity.
func (i CartItem) Subtotal() int64 {
	return i.Price * int64(i.Quantity)
}

// RemoteCartItem is a row of the authenticated user's cart in Postgres.
type RemoteCartItem struct {
	ID          int       `json:"id"`
	UserID      int       `json:"user_id"`
	ProductID   int       `json:"product_id"`
	Name        string    `json:"name"`
	Image       string    `json:"image"`
	Price       int64     `json:"price"`
	Quantity    int       `json:"quantity"`
	Size        string    `json:"size"`
	Temperature string    `json:"temperature"`
	Delivery    string    `json:"delivery"`
	Subtotal    int64     `json:"subtotal"`
	CreatedAt   time.Time `json:"created_at"`
}
