package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const adminSubjectKey = "admin_subject"

// RequireAdmin accepts "Authorization: Bearer <token>" when parse approves it.
func RequireAdmin(parse func(token string) (string, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := strings.TrimSpace(c.GetHeader("Authorization"))
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message":    "missing bearer token",
				"request_id": GetRequestID(c),
			})
			return
		}
		subject, err := parse(strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"message":    err.Error(),
				"request_id": GetRequestID(c),
			})
			return
		}
		c.Set(adminSubjectKey, subject)
		c.Next()
	}
}

// GetAdminSubject returns the authenticated admin name, if any.
func GetAdminSubject(c *gin.Context) string {
	return c.GetString(adminSubjectKey)
}
