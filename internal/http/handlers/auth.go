package handlers

import (
	"net/http"

	"donation-backend/internal/http/middleware"
	"donation-backend/internal/utils"

	"github.com/gin-gonic/gin"
)

// POST /api/v1/auth/login
func (h *Handlers) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	token, err := h.Auth.Login(req.Username, req.Password)
	if err != nil {
		utils.LogSecurity(middleware.GetRequestID(c), "auth", "login_failed", utils.KV("ip", c.ClientIP()))
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "token_type": "Bearer"})
}
