package handlers

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"donation-backend/internal/domain"

	"github.com/go-playground/validator/v10"
)

type amountError struct{}

func (amountError) Error() string { return "amount must be a number" }

// Amount accepts a JSON number or a numeric string; null and absence leave it unset.
type Amount struct {
	Value *float64
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		a.Value = nil
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return amountError{}
		}
		s = strings.TrimSpace(s)
		if s == "" {
			a.Value = nil
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return amountError{}
		}
		a.Value = &v
		return nil
	}
	var v float64
	if err := json.Unmarshal(b, &v); err != nil {
		return amountError{}
	}
	a.Value = &v
	return nil
}

type createOrderRequest struct {
	Amount    Amount `json:"amount"`
	DonorName string `json:"donorName" binding:"max=120"`
}

type checkoutCheckRequest struct {
	Amount Amount `json:"amount"`
}

type verifyPaymentRequest struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
	DonorName string `json:"donorName" binding:"max=120"`
}

type reportDonationRequest struct {
	DonorName              string `json:"donorName"`
	Amount                 Amount `json:"amount"`
	PaymentMethodIndicated string `json:"paymentMethodIndicated" binding:"omitempty,donation_method"`
}

type reportStatusRequest struct {
	Status string `json:"status" binding:"required,report_status"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterValidations adds the enum rules used by request bodies.
func RegisterValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("donation_method", func(fl validator.FieldLevel) bool {
		_, err := domain.ParsePaymentMethod(fl.Field().String())
		return err == nil
	}); err != nil {
		return err
	}
	return v.RegisterValidation("report_status", func(fl validator.FieldLevel) bool {
		return domain.ReportStatus(fl.Field().String()).Valid()
	})
}
