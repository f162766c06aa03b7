package handlers

import (
	"net/http"

	"donation-backend/internal/http/middleware"
	"donation-backend/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/v1/payment/receipt/:orderId
func (h *Handlers) DonationReceipt(c *gin.Context) {
	svc := services.ReceiptService{
		Repo:      h.donations(),
		OrgName:   h.OrgName,
		RequestID: middleware.GetRequestID(c),
	}
	pdf, filename, err := svc.Generate(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", `inline; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
