package services

import (
	"context"
	"encoding/json"

	"donation-backend/internal/domain"
	"donation-backend/internal/domain/models"
	"donation-backend/internal/gateway"
	"donation-backend/internal/repositories"
	"donation-backend/internal/utils"
)

type webhookEnvelope struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity map[string]any `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// WebhookService applies Razorpay payment events through the same settlement path
// as the checkout callback.
type WebhookService struct {
	Verifier  SignatureVerifier
	Repo      repositories.DonationRepository
	Events    repositories.GatewayEventRepository
	Notifier  Notifier
	RequestID string
}

// Handle verifies, logs and applies one delivery. Events for orders this
// service never created are stored as ignored and acknowledged.
func (s WebhookService) Handle(ctx context.Context, body []byte, signature string) (models.GatewayEvent, error) {
	if !s.Verifier.VerifyWebhook(body, signature) {
		utils.LogSecurity(s.RequestID, "webhook", "verify_rejected", utils.KV("bytes", len(body)))
		return models.GatewayEvent{}, domain.SignatureError{Msg: "Webhook verification failed: Signature mismatch"}
	}

	var env webhookEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return models.GatewayEvent{}, domain.ValidationError{Field: "payload", Msg: "is not valid JSON"}
	}
	payment := gateway.ParsePayment(env.Payload.Payment.Entity)

	ev, err := s.Events.Create(ctx, models.GatewayEvent{
		EventType: env.Event,
		OrderID:   payment.OrderID,
		PaymentID: payment.ID,
		Payload:   json.RawMessage(body),
		Signature: signature,
	})
	if err != nil {
		return models.GatewayEvent{}, domain.InternalError{Msg: "Failed to store webhook event", Err: err}
	}

	status, errMsg := s.apply(ctx, env.Event, payment)
	ev.Status = status
	ev.Error = errMsg
	if err := s.Events.MarkProcessed(ctx, ev.ID, status, errMsg); err != nil {
		utils.LogEvent(s.RequestID, "webhook", "mark_processed", utils.KV("event_id", ev.ID, "err", err))
	}
	utils.LogEvent(s.RequestID, "webhook", env.Event, utils.KV("event_id", ev.ID, "order_id", payment.OrderID, "result", status))

	if status == models.GatewayEventFailed {
		return ev, domain.InternalError{Msg: "Failed to apply webhook event", Err: errString(errMsg)}
	}
	return ev, nil
}

func (s WebhookService) apply(ctx context.Context, event string, p gateway.Payment) (string, string) {
	var status domain.Status
	switch event {
	case "payment.authorized":
		status = domain.StatusAuthorized
	case "payment.captured", "order.paid":
		status = domain.StatusCaptured
	case "payment.failed":
		status = domain.StatusFailed
	default:
		return models.GatewayEventIgnored, "unhandled event"
	}
	if p.OrderID == "" {
		return models.GatewayEventIgnored, "payment has no order_id"
	}

	if _, err := s.Repo.FindByOrderID(ctx, p.OrderID); err != nil {
		if domain.IsNotFound(err) {
			return models.GatewayEventIgnored, "no matching donation"
		}
		return models.GatewayEventFailed, err.Error()
	}

	changed, err := s.Repo.ApplySettlement(ctx, models.Settlement{
		OrderID:   p.OrderID,
		PaymentID: p.ID,
		Status:    status,
		Method:    p.Method,
		Email:     p.Email,
		Contact:   p.Contact,
	})
	if err != nil {
		return models.GatewayEventFailed, err.Error()
	}

	if changed && status == domain.StatusCaptured && s.Notifier != nil {
		if updated, err := s.Repo.FindByOrderID(ctx, p.OrderID); err == nil && updated.Email != "" {
			if err := s.Notifier.ThankDonor(ctx, updated); err != nil {
				utils.LogEvent(s.RequestID, "mail", "thank_donor", utils.KV("order_id", p.OrderID, "err", err))
			}
		}
	}
	return models.GatewayEventProcessed, ""
}

type errString string

func (e errString) Error() string { return string(e) }
