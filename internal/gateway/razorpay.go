package gateway

import (
	"context"
	"errors"
	"fmt"
	"strings"

	razorpay "github.com/razorpay/razorpay-go"
	rzperrors "github.com/razorpay/razorpay-go/errors"
)

// Razorpay wraps the SDK client. Build it once at startup and pass it down.
type Razorpay struct {
	client *razorpay.Client
}

func NewRazorpay(keyID, keySecret string) *Razorpay {
	return &Razorpay{client: razorpay.NewClient(keyID, keySecret)}
}

func (r *Razorpay) CreateOrder(ctx context.Context, req OrderRequest) (Order, error) {
	if err := ctx.Err(); err != nil {
		return Order{}, err
	}
	if r == nil || r.client == nil {
		return Order{}, errors.New("razorpay client not configured")
	}

	notes := map[string]interface{}{}
	for k, v := range req.Notes {
		notes[k] = v
	}
	data := map[string]interface{}{
		"amount":   req.Amount,
		"currency": req.Currency,
		"receipt":  req.Receipt,
		"notes":    notes,
	}

	body, err := r.client.Order.Create(data, nil)
	if err != nil {
		return Order{}, err
	}
	return ParseOrder(body), nil
}

func (r *Razorpay) FetchPayment(ctx context.Context, paymentID string) (Payment, error) {
	if err := ctx.Err(); err != nil {
		return Payment{}, err
	}
	if r == nil || r.client == nil {
		return Payment{}, errors.New("razorpay client not configured")
	}

	body, err := r.client.Payment.Fetch(paymentID, nil, nil)
	if err != nil {
		if isBadRequest(err) {
			return Payment{}, fmt.Errorf("%w: %v", ErrPaymentNotFound, err)
		}
		return Payment{}, err
	}
	return ParsePayment(body), nil
}

// The SDK reports 4xx responses with BAD_REQUEST_ERROR as *errors.BadRequestError.
func isBadRequest(err error) bool {
	var bad *rzperrors.BadRequestError
	return errors.As(err, &bad)
}

// ParseOrder maps an order entity from the API into Order.
func ParseOrder(body map[string]interface{}) Order {
	return Order{
		ID:       str(body["id"]),
		Amount:   num(body["amount"]),
		Currency: str(body["currency"]),
		Status:   str(body["status"]),
		Receipt:  str(body["receipt"]),
		Raw:      body,
	}
}

// ParsePayment maps a payment entity from the API into Payment.
func ParsePayment(body map[string]interface{}) Payment {
	return Payment{
		ID:      str(body["id"]),
		OrderID: str(body["order_id"]),
		Amount:  num(body["amount"]),
		Status:  str(body["status"]),
		Method:  str(body["method"]),
		Email:   str(body["email"]),
		Contact: str(body["contact"]),
		Raw:     body,
	}
}

func str(v any) string {
	if s, ok := v.(string); ok {
		return strings.TrimSpace(s)
	}
	return ""
}

func num(v any) int64 {
	switch n := v.(type) {
	case float64:
		return int64(n)
	case int64:
		return n
	case int:
		return int64(n)
	}
	return 0
}
