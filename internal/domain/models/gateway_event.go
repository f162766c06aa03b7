package models

import (
	"encoding/json"
	"time"
)

const (
	GatewayEventReceived  = "received"
	GatewayEventProcessed = "processed"
	GatewayEventIgnored   = "ignored"
	GatewayEventFailed    = "failed"
)

// GatewayEvent logs one webhook delivery for audit and replay.
type GatewayEvent struct {
	ID          string          `json:"id"`
	Provider    string          `json:"provider"`
	EventType   string          `json:"eventType"`
	OrderID     string          `json:"orderId,omitempty"`
	PaymentID   string          `json:"paymentId,omitempty"`
	Payload     json.RawMessage `json:"payload"`
	Signature   string          `json:"-"`
	Status      string          `json:"status"`
	Error       string          `json:"error,omitempty"`
	ReceivedAt  time.Time       `json:"receivedAt"`
	ProcessedAt *time.Time      `json:"processedAt,omitempty"`
}
