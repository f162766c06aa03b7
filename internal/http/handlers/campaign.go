package handlers

import (
	"net/http"
	"strings"

	"donation-backend/internal/domain"
	"donation-backend/internal/domain/models"
	"donation-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/v1/payment/campaign-progress?source=gateway|reported|all
func (h *Handlers) CampaignProgress(c *gin.Context) {
	svc := services.CampaignService{Donations: h.donations(), Reports: h.reports()}
	ctx := c.Request.Context()

	var (
		out models.CampaignProgress
		err error
	)
	switch strings.ToLower(strings.TrimSpace(c.DefaultQuery("source", "gateway"))) {
	case "gateway":
		out, err = svc.GatewayProgress(ctx)
	case "reported":
		out, err = svc.ReportedProgress(ctx)
	case "all":
		out, err = svc.CombinedProgress(ctx)
	default:
		err = domain.ValidationError{Field: "source", Msg: "must be one of gateway, reported, all"}
	}
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/v1/payment/reported-donations/campaign-progress
func (h *Handlers) ReportedCampaignProgress(c *gin.Context) {
	svc := services.CampaignService{Reports: h.reports()}
	out, err := svc.ReportedProgress(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
