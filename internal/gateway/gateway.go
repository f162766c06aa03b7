package gateway

import (
	"context"
	"errors"
)

// ErrPaymentNotFound is returned when the gateway rejects a payment id.
var ErrPaymentNotFound = errors.New("payment not found or invalid payment id")

// OrderRequest is what the backend asks the gateway to mint.
type OrderRequest struct {
	Amount   int64 // paise
	Currency string
	Receipt  string
	Notes    map[string]string
}

// Order is the gateway's answer. Raw is returned to the client unchanged.
type Order struct {
	ID       string
	Amount   int64
	Currency string
	Status   string
	Receipt  string
	Raw      map[string]any
}

// Payment is the authoritative view of a payment as fetched from the gateway.
type Payment struct {
	ID      string
	OrderID string
	Amount  int64
	Status  string
	Method  string
	Email   string
	Contact string
	Raw     map[string]any
}

// Client is the subset of the payment gateway used by the donation flow.
type Client interface {
	CreateOrder(ctx context.Context, req OrderRequest) (Order, error)
	FetchPayment(ctx context.Context, paymentID string) (Payment, error)
}
