package handlers

import (
	"io"
	"net/http"

	"donation-backend/internal/http/middleware"
	"donation-backend/internal/services"

	"github.com/gin-gonic/gin"
)

const maxWebhookBytes = int64(1 << 16)

// POST /api/v1/payment/webhook
func (h *Handlers) RazorpayWebhook(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBytes)
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respondError(c, http.StatusRequestEntityTooLarge, "payload_too_large", "webhook body unreadable", err.Error())
		return
	}

	svc := services.WebhookService{
		Verifier:  h.Verifier,
		Repo:      h.donations(),
		Events:    h.events(),
		Notifier:  h.Notifier,
		RequestID: middleware.GetRequestID(c),
	}
	ev, err := svc.Handle(c.Request.Context(), body, c.GetHeader("X-Razorpay-Signature"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "event_id": ev.ID, "result": ev.Status})
}
