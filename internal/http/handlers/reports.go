package handlers

import (
	"net/http"
	"strconv"

	"donation-backend/internal/domain"
	"donation-backend/internal/http/middleware"
	"donation-backend/internal/services"
	"donation-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// POST /api/v1/payment/report-donation
func (h *Handlers) ReportDonation(c *gin.Context) {
	var req reportDonationRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	svc := services.ReportService{Repo: h.reports(), RequestID: middleware.GetRequestID(c)}
	rec, err := svc.Report(c.Request.Context(), services.ReportInput{
		DonorName:              req.DonorName,
		Amount:                 req.Amount.Value,
		PaymentMethodIndicated: req.PaymentMethodIndicated,
	})
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

// GET /api/v1/payment/reported-donations
func (h *Handlers) ListReportedDonations(c *gin.Context) {
	svc := services.ReportService{Repo: h.reports(), RequestID: middleware.GetRequestID(c)}
	list, err := svc.List(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// PUT /api/v1/payment/reported-donations/:id/status (admin)
func (h *Handlers) UpdateReportedStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		RespondDomainError(c, domain.ValidationError{Field: "id", Msg: "is invalid"})
		return
	}
	var req reportStatusRequest
	if !BindJSONOrError(c, &req) {
		return
	}

	reqID := middleware.GetRequestID(c)
	svc := services.ReportService{Repo: h.reports(), RequestID: reqID}
	rec, err := svc.SetStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(reqID, "admin", "reported_status", utils.KV("admin", middleware.GetAdminSubject(c), "id", id, "status", rec.Status))
	c.JSON(http.StatusOK, rec)
}
