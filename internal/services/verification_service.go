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

const msgVerifiedNotFinalized = "Payment verified, but failed to process details or update database."

// VerificationService settles a donation after checkout returns a signed callback.
type VerificationService struct {
	Gateway   gateway.Client
	Verifier  SignatureVerifier
	Repo      repositories.DonationRepository
	Notifier  Notifier
	RequestID string
}

type VerifyInput struct {
	OrderID   string
	PaymentID string
	Signature string
	DonorName string
}

// Verify checks the signature before anything else, then asks the gateway for the
// real payment status and writes it onto the matching donation.
func (s VerificationService) Verify(ctx context.Context, in VerifyInput) (models.Donation, error) {
	in.OrderID = strings.TrimSpace(in.OrderID)
	in.PaymentID = strings.TrimSpace(in.PaymentID)
	in.Signature = strings.TrimSpace(in.Signature)
	if in.OrderID == "" || in.PaymentID == "" || in.Signature == "" {
		return models.Donation{}, domain.ValidationError{Msg: "Missing payment verification parameters."}
	}

	if !s.Verifier.Verify(in.OrderID, in.PaymentID, in.Signature) {
		utils.LogSecurity(s.RequestID, "payment", "verify_rejected", utils.KV("order_id", in.OrderID, "payment_id", in.PaymentID))
		return models.Donation{}, domain.SignatureError{Msg: "Payment verification failed: Signature mismatch"}
	}

	if s.Gateway == nil {
		return models.Donation{}, domain.UpstreamError{Op: "fetch_payment", Msg: msgVerifiedNotFinalized, Err: errors.New("payment gateway not configured")}
	}
	payment, err := s.Gateway.FetchPayment(ctx, in.PaymentID)
	if err != nil {
		utils.LogEvent(s.RequestID, "payment", "verify_fetch_failed", utils.KV("order_id", in.OrderID, "payment_id", in.PaymentID, "err", err))
		return models.Donation{}, domain.UpstreamError{Op: "fetch_payment", Msg: msgVerifiedNotFinalized, Err: err}
	}
	if payment.Status == "" {
		return models.Donation{}, domain.UpstreamError{Op: "fetch_payment", Msg: msgVerifiedNotFinalized, Err: errors.New("gateway returned no payment status")}
	}

	if _, err := s.Repo.FindByOrderID(ctx, in.OrderID); err != nil {
		return models.Donation{}, s.lookupError(in.OrderID, err)
	}

	settlement := models.Settlement{
		OrderID:   in.OrderID,
		PaymentID: in.PaymentID,
		Status:    domain.Status(payment.Status),
		Method:    payment.Method,
		Email:     payment.Email,
		Contact:   payment.Contact,
		Signature: in.Signature,
		DonorName: utils.Truncate(utils.NormalizeSpace(in.DonorName), 120),
	}
	changed, err := s.Repo.ApplySettlement(ctx, settlement)
	if err != nil {
		utils.LogEvent(s.RequestID, "payment", "verify_update_failed", utils.KV("order_id", in.OrderID, "err", err))
		return models.Donation{}, domain.InternalError{Msg: msgVerifiedNotFinalized, Err: err}
	}

	updated, err := s.Repo.FindByOrderID(ctx, in.OrderID)
	if err != nil {
		return models.Donation{}, s.lookupError(in.OrderID, err)
	}

	if updated.Status != settlement.Status {
		utils.LogEvent(s.RequestID, "payment", "verify", utils.KV("order_id", in.OrderID, "kept_status", updated.Status, "gateway_status", settlement.Status))
	} else {
		utils.LogEvent(s.RequestID, "payment", "verify", utils.KV("order_id", in.OrderID, "payment_id", in.PaymentID, "status", updated.Status))
	}

	if changed && updated.Status == domain.StatusCaptured {
		s.thank(ctx, updated)
	}
	return updated, nil
}

func (s VerificationService) lookupError(orderID string, err error) error {
	if domain.IsNotFound(err) {
		utils.LogEvent(s.RequestID, "payment", "verify_unreconciled", utils.KV("order_id", orderID))
		return domain.UnreconciledError{
			OrderID: orderID,
			Msg:     "Payment verified, but corresponding record not found in database for update.",
		}
	}
	return domain.InternalError{Msg: msgVerifiedNotFinalized, Err: err}
}

func (s VerificationService) thank(ctx context.Context, d models.Donation) {
	if s.Notifier == nil || d.Email == "" {
		return
	}
	if err := s.Notifier.ThankDonor(ctx, d); err != nil {
		utils.LogEvent(s.RequestID, "mail", "thank_donor", utils.KV("order_id", d.OrderID, "err", err))
	}
}
