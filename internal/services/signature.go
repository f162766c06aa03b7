package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// SignatureVerifier checks Razorpay signatures. Secrets come from config and are never logged.
type SignatureVerifier struct {
	KeySecret     string
	WebhookSecret string
}

// Sign returns the hex HMAC-SHA256 of payload keyed with secret.
func Sign(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// CheckoutPayload is the string Razorpay signs after checkout.
func CheckoutPayload(orderID, paymentID string) []byte {
	return []byte(orderID + "|" + paymentID)
}

// Verify reports whether signature authenticates orderID|paymentID.
func (v SignatureVerifier) Verify(orderID, paymentID, signature string) bool {
	if v.KeySecret == "" || signature == "" {
		return false
	}
	expected := Sign(v.KeySecret, CheckoutPayload(orderID, paymentID))
	return hmac.Equal([]byte(expected), []byte(signature))
}

// VerifyWebhook reports whether signature authenticates the raw webhook body.
func (v SignatureVerifier) VerifyWebhook(body []byte, signature string) bool {
	if v.WebhookSecret == "" || signature == "" {
		return false
	}
	expected := Sign(v.WebhookSecret, body)
	return hmac.Equal([]byte(expected), []byte(signature))
}
