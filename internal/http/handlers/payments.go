package handlers

import (
	"net/http"

	"donation-backend/internal/http/middleware"
	"donation-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// POST /api/v1/payment/order
func (h *Handlers) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.OrderService{
		Gateway:   h.Gateway,
		Repo:      h.donations(),
		RequestID: middleware.GetRequestID(c),
	}
	order, _, err := svc.CreateOrder(c.Request.Context(), services.CreateOrderInput{
		Amount:    req.Amount.Value,
		DonorName: req.DonorName,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// POST /api/v1/payment/checkout-check
func (h *Handlers) CheckoutCheck(c *gin.Context) {
	var req checkoutCheckRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if err := services.CheckCheckout(req.Amount.Value); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// POST /api/v1/payment/verify-payment
func (h *Handlers) VerifyPayment(c *gin.Context) {
	var req verifyPaymentRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	svc := services.VerificationService{
		Gateway:   h.Gateway,
		Verifier:  h.Verifier,
		Repo:      h.donations(),
		Notifier:  h.Notifier,
		RequestID: middleware.GetRequestID(c),
	}
	payment, err := svc.Verify(c.Request.Context(), services.VerifyInput{
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
		Signature: req.Signature,
		DonorName: req.DonorName,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Payment verified successfully",
		"payment": payment,
	})
}

// GET /api/v1/payment/details/:paymentId
func (h *Handlers) PaymentDetails(c *gin.Context) {
	svc := services.PaymentQueryService{
		Gateway:   h.Gateway,
		Repo:      h.donations(),
		RequestID: middleware.GetRequestID(c),
	}
	out, err := svc.Details(c.Request.Context(), c.Param("paymentId"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/v1/payment/payments
func (h *Handlers) ListPayments(c *gin.Context) {
	svc := services.PaymentQueryService{Repo: h.donations(), RequestID: middleware.GetRequestID(c)}
	list, err := svc.List(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}
