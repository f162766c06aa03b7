package services

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"donation-backend/internal/domain"
	"donation-backend/internal/domain/models"
)

func TestReceiptForCapturedDonation(t *testing.T) {
	svc := ReceiptService{
		OrgName: "Quizitt Education Fund",
		Loader: func(_ context.Context, orderID string) (models.Donation, error) {
			return models.Donation{
				OrderID:   orderID,
				PaymentID: "pay_1",
				Amount:    60000,
				Currency:  "INR",
				Status:    domain.StatusCaptured,
				DonorName: "Asha",
				UpdatedAt: time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
			}, nil
		},
	}

	pdf, filename, err := svc.Generate(context.Background(), "order_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output is not a PDF")
	}
	if filename != "RCPT-order_1.pdf" {
		t.Fatalf("filename got %q", filename)
	}
}

func TestReceiptRequiresCapture(t *testing.T) {
	svc := ReceiptService{
		Loader: func(_ context.Context, orderID string) (models.Donation, error) {
			return models.Donation{OrderID: orderID, Status: domain.StatusCreated}, nil
		},
	}
	if _, _, err := svc.Generate(context.Background(), "order_1"); !domain.IsConflict(err) {
		t.Fatalf("expected conflict for uncaptured donation, got %v", err)
	}
	if _, _, err := svc.Generate(context.Background(), " "); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for empty order id, got %v", err)
	}
}

func TestReceiptOmitsDonorContact(t *testing.T) {
	d := models.Donation{
		OrderID:   "order_1",
		PaymentID: "pay_1",
		Amount:    60000,
		Status:    domain.StatusCaptured,
		DonorName: "Asha",
		Email:     "asha@example.com",
		Contact:   "+919876543210",
	}
	lines := receiptLines("RCPT-order_1", d)
	if len(lines) == 0 {
		t.Fatalf("receipt has no lines")
	}
	for _, line := range lines {
		if strings.Contains(line, d.Email) || strings.Contains(line, d.Contact) {
			t.Fatalf("receipt line exposes donor contact: %q", line)
		}
	}
	if !strings.Contains(strings.Join(lines, "\n"), "Asha") {
		t.Fatalf("donor name missing from receipt")
	}
}
