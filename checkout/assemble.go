package checkout

import (
	"fmt"
	"math/rand"
	"time"

	"puntogo/models"
	"puntogo/pricing"
)

// NewOrderID produces the local placeholder id: a receipt-series prefix plus
// a zero-padded random suffix. It is cosmetic, not unique; Ventify assigns
// the authoritative id later.
func NewOrderID() string {
	return fmt.Sprintf("B001-%06d", rand.Intn(100000))
}

// AssembleOrder freezes the validated cart, customer and quote into an Order
// snapshot with a placeholder id and PENDING status.
func AssembleOrder(customer models.Customer, paymentMethod, paymentReference string, lines []models.CartLine, quote pricing.Quote) models.Order {
	return models.Order{
		ID:               NewOrderID(),
		CreatedAt:        time.Now(),
		Customer:         customer,
		Lines:            lines,
		Subtotal:         quote.Subtotal,
		ShippingCost:     quote.ShippingCost,
		Total:            quote.Total,
		PaymentMethod:    paymentMethod,
		PaymentReference: paymentReference,
		Status:           models.OrderStatusPending,
	}
}
