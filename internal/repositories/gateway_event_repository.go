package repositories

import (
	"context"
	"database/sql"

	intconfig "donation-backend/internal/config"
	intdb "donation-backend/internal/db"
	"donation-backend/internal/domain"
	"donation-backend/internal/domain/models"
	"donation-backend/internal/utils"

	"github.com/google/uuid"
)

// GatewayEventRepository stores raw webhook deliveries.
type GatewayEventRepository struct {
	DB *sql.DB
}

func (r GatewayEventRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r GatewayEventRepository) Create(ctx context.Context, ev models.GatewayEvent) (models.GatewayEvent, error) {
	db := r.db()
	if db == nil {
		return models.GatewayEvent{}, domain.InternalError{Msg: "database not connected"}
	}
	if ev.ID == "" {
		ev.ID = uuid.NewString()
	}
	if ev.Provider == "" {
		ev.Provider = "razorpay"
	}
	if ev.Status == "" {
		ev.Status = models.GatewayEventReceived
	}
	if ev.ReceivedAt.IsZero() {
		ev.ReceivedAt = utils.NowUTC()
	}

	var payload any
	if len(ev.Payload) > 0 {
		payload = string(ev.Payload)
	}

	_, err := db.ExecContext(ctx, `
		INSERT INTO gateway_events (id, provider, event_type, order_id, payment_id, payload, signature, status, received_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		ev.ID, ev.Provider, intdb.NullIfEmpty(ev.EventType), intdb.NullIfEmpty(ev.OrderID), intdb.NullIfEmpty(ev.PaymentID),
		payload, intdb.NullIfEmpty(ev.Signature), ev.Status, ev.ReceivedAt,
	)
	if err != nil {
		return models.GatewayEvent{}, err
	}
	return ev, nil
}

// MarkProcessed records the outcome of handling an event.
func (r GatewayEventRepository) MarkProcessed(ctx context.Context, id, status, errMsg string) error {
	db := r.db()
	if db == nil {
		return domain.InternalError{Msg: "database not connected"}
	}
	_, err := db.ExecContext(ctx, `UPDATE gateway_events SET status = ?, error = ?, processed_at = ? WHERE id = ?`,
		status, intdb.NullIfEmpty(errMsg), utils.NowUTC(), id)
	return err
}
