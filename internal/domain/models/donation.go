package models

import (
	"time"

	"donation-backend/internal/domain"
)

// Donation is a gateway-backed donation, one per Razorpay order.
type Donation struct {
	ID        int64         `json:"id"`
	OrderID   string        `json:"razorpayOrderId"`
	PaymentID string        `json:"razorpayPaymentId,omitempty"`
	Amount    int64         `json:"amount"` // paise
	Currency  string        `json:"currency"`
	Status    domain.Status `json:"status"`
	Method    string        `json:"method,omitempty"`
	DonorName string        `json:"donorName,omitempty"`
	Email     string        `json:"email,omitempty"`
	Contact   string        `json:"contact,omitempty"`
	Signature string        `json:"razorpaySignature,omitempty"`
	Receipt   string        `json:"receipt,omitempty"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// AmountMajor returns the amount in rupees.
func (d Donation) AmountMajor() float64 {
	return domain.FromSubunits(d.Amount)
}

// Settlement holds the fields written when a payment is verified or a webhook lands.
type Settlement struct {
	OrderID   string
	PaymentID string
	Status    domain.Status
	Method    string
	Email     string
	Contact   string
	Signature string
	DonorName string
}
