package services

import (
	"coffee-shop/models"

	"github.com/shopspring/decimal"
)

const DoorDeliveryFee int64 = 10000

var taxRate = decimal.RequireFromString("0.10")

// CalculateTotals prices a cart. Tax is 10% of the order total rounded to
// the nearest rupiah, half away from zero.
func CalculateTotals(items []models.CartItem, delivery string) models.Totals {
	var orderTotal int64
	for _, it := range items {
		orderTotal += it.Subtotal()
	}

	var deliveryFee int64
	if delivery == models.DeliveryDoorDelivery {
		deliveryFee = DoorDeliveryFee
	}

	tax := decimal.NewFromInt(orderTotal).Mul(taxRate).Round(0).IntPart()

	return models.Totals{
		OrderTotal:  orderTotal,
		DeliveryFee: deliveryFee,
		Tax:         tax,
		Total:       orderTotal + deliveryFee + tax,
	}
}
