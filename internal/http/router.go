package api

import (
	"log"
	stdhttp "net/http"

	intconfig "donation-backend/internal/config"
	h "donation-backend/internal/http/handlers"
	"donation-backend/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func NewRouter(env intconfig.Env, hs *h.Handlers) *gin.Engine {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := h.RegisterValidations(v); err != nil {
			log.Printf("warning: failed to register validations: %v", err)
		}
	}

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger("/api/health"), gin.Recovery(), middleware.CORS(env.CORSAllowedOrigins))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", hs.DBCheck)
		api.GET("/routes", h.Routes)
	}

	v1 := r.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		auth.POST("/login", hs.Login)

		payment := v1.Group("/payment")
		mountPayment(payment, hs)

		admin := payment.Group("", middleware.RequireAdmin(hs.Auth.ParseToken))
		admin.PUT("/reported-donations/:id/status", hs.UpdateReportedStatus)
	}

	h.SetRouter(r)
	return r
}

func mountPayment(g *gin.RouterGroup, hs *h.Handlers) {
	g.POST("/order", hs.CreateOrder)
	g.POST("/checkout-check", hs.CheckoutCheck)
	g.POST("/verify-payment", hs.VerifyPayment)
	g.GET("/details/:paymentId", hs.PaymentDetails)
	g.GET("/payments", hs.ListPayments)
	g.GET("/campaign-progress", hs.CampaignProgress)
	g.GET("/receipt/:orderId", hs.DonationReceipt)
	g.POST("/webhook", hs.RazorpayWebhook)

	g.POST("/report-donation", hs.ReportDonation)
	g.GET("/reported-donations", hs.ListReportedDonations)
	g.GET("/reported-donations/campaign-progress", hs.ReportedCampaignProgress)
}
