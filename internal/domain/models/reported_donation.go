package models

import (
	"time"

	"donation-backend/internal/domain"
)

// ReportedDonation is an honor-system claim of an out-of-band transfer.
type ReportedDonation struct {
	ID                     int64                `json:"id"`
	DonorName              string               `json:"donorName"`
	Amount                 float64              `json:"amount"` // rupees
	PaymentMethodIndicated domain.PaymentMethod `json:"paymentMethodIndicated"`
	Status                 domain.ReportStatus  `json:"status"`
	ReportedAt             time.Time            `json:"reportedAt"`
	CreatedAt              time.Time            `json:"createdAt"`
	UpdatedAt              time.Time            `json:"updatedAt"`
}
