package services

import (
	"context"
	"fmt"

	"donation-backend/internal/domain"
	"donation-backend/internal/domain/models"
	"donation-backend/internal/gateway"
	"donation-backend/internal/repositories"
	"donation-backend/internal/utils"
)

const (
	DefaultCurrency = "INR"
	orderPurpose    = "Donation for Quizitt.com Education"
	orderSource     = "web_donation_page"
)

// OrderService mints gateway orders and records them as created donations.
type OrderService struct {
	Gateway   gateway.Client
	Repo      repositories.DonationRepository
	RequestID string
}

type CreateOrderInput struct {
	Amount    *float64 // rupees
	DonorName string
}

// CreateOrder returns the gateway order payload unchanged plus the stored record.
func (s OrderService) CreateOrder(ctx context.Context, in CreateOrderInput) (map[string]any, models.Donation, error) {
	amount, err := domain.ValidateOrderAmount(in.Amount)
	if err != nil {
		return nil, models.Donation{}, err
	}
	if s.Gateway == nil {
		return nil, models.Donation{}, domain.InternalError{Msg: "Failed to create Razorpay order", Err: fmt.Errorf("payment gateway not configured")}
	}

	donorName := utils.Truncate(utils.NormalizeSpace(in.DonorName), 120)
	notes := map[string]string{
		"purpose": orderPurpose,
		"source":  orderSource,
	}
	if donorName != "" {
		notes["donor_name"] = donorName
	}

	req := gateway.OrderRequest{
		Amount:   domain.ToSubunits(amount),
		Currency: DefaultCurrency,
		Receipt:  utils.ReceiptID(),
		Notes:    notes,
	}

	order, err := s.Gateway.CreateOrder(ctx, req)
	if err != nil {
		utils.LogEvent(s.RequestID, "payment", "create_order", "gateway error: "+err.Error())
		return nil, models.Donation{}, domain.UpstreamError{Op: "create_order", Msg: "Failed to create Razorpay order", Err: err}
	}

	rec := models.Donation{
		OrderID:   order.ID,
		Amount:    order.Amount,
		Currency:  order.Currency,
		Status:    domain.Status(order.Status),
		DonorName: donorName,
		Receipt:   req.Receipt,
	}
	if rec.Amount == 0 {
		rec.Amount = req.Amount
	}
	if rec.Receipt == "" {
		rec.Receipt = order.Receipt
	}

	saved, err := s.Repo.Create(ctx, rec)
	if err != nil {
		utils.LogEvent(s.RequestID, "payment", "create_order", "persist failed order_id="+order.ID+": "+err.Error())
		return nil, models.Donation{}, domain.InternalError{Msg: "Failed to create Razorpay order", Err: err}
	}

	utils.LogEvent(s.RequestID, "payment", "create_order", utils.KV("order_id", saved.OrderID, "amount", saved.Amount))

	raw := order.Raw
	if raw == nil {
		raw = map[string]any{
			"id":       order.ID,
			"amount":   order.Amount,
			"currency": order.Currency,
			"status":   order.Status,
			"receipt":  order.Receipt,
		}
	}
	return raw, saved, nil
}

// CheckCheckout applies the checkout-initiation minimum. It does not create anything.
func CheckCheckout(amount *float64) error {
	_, err := domain.ValidateCheckoutAmount(amount)
	return err
}
