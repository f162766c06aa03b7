package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"donation-backend/internal/domain"
	"donation-backend/internal/domain/models"
	"donation-backend/internal/repositories"
	"donation-backend/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// ReceiptService renders a PDF receipt for a captured donation.
type ReceiptService struct {
	Repo      repositories.DonationRepository
	OrgName   string
	RequestID string
	Loader    func(ctx context.Context, orderID string) (models.Donation, error)
}

func (s ReceiptService) Generate(ctx context.Context, orderID string) ([]byte, string, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return nil, "", domain.ValidationError{Field: "orderId", Msg: "is required"}
	}
	d, err := s.load(ctx, orderID)
	if err != nil {
		return nil, "", err
	}
	if d.Status != domain.StatusCaptured {
		return nil, "", domain.ConflictError{Resource: "receipt", Msg: "donation has not been captured"}
	}

	pdf, filename, err := buildReceiptPDF(s.orgName(), d)
	if err != nil {
		return nil, "", domain.InternalError{Msg: "Failed to render receipt", Err: err}
	}
	utils.LogEvent(s.RequestID, "receipt", "generate", utils.KV("order_id", orderID))
	return pdf, filename, nil
}

func (s ReceiptService) load(ctx context.Context, orderID string) (models.Donation, error) {
	if s.Loader != nil {
		return s.Loader(ctx, orderID)
	}
	return s.Repo.FindByOrderID(ctx, orderID)
}

func (s ReceiptService) orgName() string {
	if strings.TrimSpace(s.OrgName) == "" {
		return "Quizitt Education Fund"
	}
	return s.OrgName
}

func buildReceiptPDF(org string, d models.Donation) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Donation Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "DONATION RECEIPT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, org)
	pdf.Ln(10)

	receiptNo := "RCPT-" + utils.SafeFilenamePart(d.OrderID)
	for _, line := range receiptLines(receiptNo, d) {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Thank you for your contribution. This receipt was generated for a payment confirmed by Razorpay.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), receiptNo + ".pdf", nil
}

// receiptLines lists the printed fields. Donor contact details are never
// printed.
func receiptLines(receiptNo string, d models.Donation) []string {
	return []string{
		fmt.Sprintf("Receipt No : %s", receiptNo),
		fmt.Sprintf("Date       : %s", utils.FormatDate(d.UpdatedAt)),
		fmt.Sprintf("Donor      : %s", safe(d.DonorName, "Anonymous")),
		fmt.Sprintf("Amount     : %s (%s)", utils.FormatRupees(d.AmountMajor()), safe(d.Currency, "INR")),
		fmt.Sprintf("Method     : %s", safe(d.Method, "-")),
		fmt.Sprintf("Order ID   : %s", d.OrderID),
		fmt.Sprintf("Payment ID : %s", safe(d.PaymentID, "-")),
	}
}

func safe(v, fallback string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return fallback
	}
	return v
}
