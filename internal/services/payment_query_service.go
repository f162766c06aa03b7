package services

import (
	"context"
	"errors"
	"strings"

	"donation-backend/internal/domain"
	"donation-backend/internal/domain/models"
	"donation-backend/internal/gateway"
	"donation-backend/internal/repositories"
	"donation-backend/internal/utils"
)

// PaymentQueryService answers read-only lookups on donations.
type PaymentQueryService struct {
	Gateway   gateway.Client
	Repo      repositories.DonationRepository
	RequestID string
}

// Details prefers the local record and falls back to the gateway's payment entity.
func (s PaymentQueryService) Details(ctx context.Context, paymentID string) (any, error) {
	paymentID = strings.TrimSpace(paymentID)
	if paymentID == "" {
		return nil, domain.ValidationError{Msg: "Payment ID is required."}
	}

	rec, err := s.Repo.FindByPaymentID(ctx, paymentID)
	if err == nil {
		return rec, nil
	}
	if !domain.IsNotFound(err) {
		return nil, domain.InternalError{Msg: "Failed to fetch payment details", Err: err}
	}

	if s.Gateway == nil {
		return nil, domain.UpstreamError{Op: "fetch_payment", Msg: "Failed to fetch payment details", Err: errors.New("payment gateway not configured")}
	}
	p, err := s.Gateway.FetchPayment(ctx, paymentID)
	if err != nil {
		if errors.Is(err, gateway.ErrPaymentNotFound) {
			return nil, domain.NotFoundError{Resource: "payment", Err: err}
		}
		utils.LogEvent(s.RequestID, "payment", "details", utils.KV("payment_id", paymentID, "err", err))
		return nil, domain.UpstreamError{Op: "fetch_payment", Msg: "Failed to fetch payment details", Err: err}
	}
	if p.Raw != nil {
		return p.Raw, nil
	}
	return p, nil
}

func (s PaymentQueryService) List(ctx context.Context) ([]models.Donation, error) {
	list, err := s.Repo.ListAll(ctx)
	if err != nil {
		return nil, domain.InternalError{Msg: "Failed to list payments", Err: err}
	}
	return list, nil
}
