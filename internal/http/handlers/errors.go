package handlers

import (
	"errors"
	"net/http"

	"donation-backend/internal/domain"
	"donation-backend/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Message   string `json:"message"`
	Code      string `json:"code"`
	Error     string `json:"error,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func respondError(c *gin.Context, status int, code, message, detail string) {
	if code == "" {
		code = http.StatusText(status)
	}
	c.JSON(status, ErrorResponse{
		Message:   message,
		Code:      code,
		Error:     detail,
		RequestID: middleware.GetRequestID(c),
	})
}

// RespondDomainError maps domain errors to HTTP responses. Signature mismatch and
// "verified but unreconciled" carry their own codes.
func RespondDomainError(c *gin.Context, err error) {
	_ = c.Error(err)

	var (
		sigErr      domain.SignatureError
		unrecErr    domain.UnreconciledError
		upstreamErr domain.UpstreamError
		internalErr domain.InternalError
	)
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, "validation_error", err.Error(), "")
	case errors.As(err, &sigErr):
		respondError(c, http.StatusBadRequest, "signature_mismatch", sigErr.Error(), "")
	case domain.IsUnauthorized(err):
		respondError(c, http.StatusUnauthorized, "unauthorized", err.Error(), "")
	case errors.As(err, &unrecErr):
		respondError(c, http.StatusNotFound, "verified_unreconciled", unrecErr.Error(), "")
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, "not_found", notFoundMessage(err), "")
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, "conflict", err.Error(), "")
	case errors.As(err, &upstreamErr):
		respondError(c, http.StatusInternalServerError, "gateway_error", upstreamMessage(upstreamErr), causeOf(upstreamErr.Err))
	case errors.As(err, &internalErr):
		respondError(c, http.StatusInternalServerError, "internal_error", internalErr.Error(), causeOf(internalErr.Err))
	default:
		respondError(c, http.StatusInternalServerError, "internal_error", "internal error", err.Error())
	}
}

func notFoundMessage(err error) string {
	var nf domain.NotFoundError
	if errors.As(err, &nf) && nf.Resource == "payment" {
		return "Payment not found or invalid Payment ID."
	}
	return err.Error()
}

func upstreamMessage(e domain.UpstreamError) string {
	if e.Msg != "" {
		return e.Msg
	}
	return "payment gateway error"
}

func causeOf(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
