package models

import "time"

const (
	StatusOnProgress   = "On Progress"
	StatusSendingGoods = "Sending Goods"
	StatusFinish       = "Finish"
)

const (
	DeliveryDineIn       = "dine-in"
	DeliveryDoorDelivery = "door-delivery"
	DeliveryPickUp       = "pick-up"
)

// PaymentMethods is the fixed list offered on the checkout page.
var PaymentMethods = []string{"Bank BRI", "Dana", "BCA", "Gopay", "Ovo", "PayPal"}

// StatusColor returns the display hint used by the history page.
func StatusColor(status string) string {
	switch status {
	case StatusSendingGoods:
		return "#2563EB"
	case StatusFinish:
		return "#16A34A"
	default:
		return "#F97316"
	}
}

type CustomerInfo struct {
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	Address  string `json:"address"`
	Delivery string `json:"delivery"`
}

// Order is a completed checkout. Every field is fixed at creation.
type Order struct {
	ID            int64        `json:"id"`
	OrderID       string       `json:"orderId"`
	Date          string       `json:"date"`
	Items         []CartItem   `json:"items"`
	Total         int64        `json:"total"`
	OrderTotal    int64        `json:"orderTotal"`
	DeliveryFee   int64        `json:"deliveryFee"`
	Tax           int64        `json:"tax"`
	Status        string       `json:"status"`
	StatusColor   string       `json:"statusColor"`
	CustomerInfo  CustomerInfo `json:"customerInfo"`
	PaymentMethod string       `json:"paymentMethod"`
	CreatedAt     time.Time    `json:"createdAt"`
}

// Totals is the price breakdown of a cart for a given delivery mode.
type Totals struct {
	OrderTotal  int64 `json:"orderTotal"`
	DeliveryFee int64 `json:"deliveryFee"`
	Tax         int64 `json:"tax"`
	Total       int64 `json:"total"`
}

// OrderSummary is the row shown on the history page.
type OrderSummary struct {
	ID          int64     `json:"id"`
	OrderID     string    `json:"orderId"`
	Date        string    `json:"date"`
	Status      string    `json:"status"`
	StatusColor string    `json:"statusColor"`
	Total       int64     `json:"total"`
	TotalItems  int       `json:"totalItems"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"createdAt"`
}

// MonthOption is one entry of the history month dropdown.
type MonthOption struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Count int    `json:"count"`
}
