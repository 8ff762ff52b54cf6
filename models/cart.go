package models

import "time"

// CartLine is one product plus its requested quantity in the active session.
// Quantity is always >= 1; a line that would drop to zero is removed instead.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Payment methods accepted at checkout.
const (
	PaymentDigital        = "DIGITAL"
	PaymentCashOnDelivery = "CASH_ON_DELIVERY"
)

// Order statuses.
const (
	OrderStatusPending = "PENDING"
)

type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone"`
	Address string `json:"address,omitempty"`
}

// Order is the immutable snapshot produced at checkout. ID starts as a
// client-generated placeholder and is overwritten once the remote system
// assigns an authoritative one.
type Order struct {
	ID               string     `json:"id"`
	CreatedAt        time.Time  `json:"createdAt"`
	Customer         Customer   `json:"customer"`
	Lines            []CartLine `json:"lines"`
	Subtotal         float64    `json:"subtotal"`
	ShippingCost     float64    `json:"shippingCost"`
	Total            float64    `json:"total"`
	PaymentMethod    string     `json:"paymentMethod"`
	PaymentReference string     `json:"paymentReference,omitempty"`
	Status           string     `json:"status"`
}
