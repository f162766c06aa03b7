package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger prints one line per request. Paths in skip (e.g. health probes) are not logged.
func Logger(skip ...string) gin.HandlerFunc {
	skipped := map[string]bool{}
	for _, p := range skip {
		skipped[p] = true
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if skipped[c.Request.URL.Path] {
			return
		}

		route := c.FullPath()
		if route == "" {
			route = "-"
		}
		line := "[HTTP] request_id=%s method=%s route=%s status=%d latency_ms=%.3f ip=%s"
		args := []any{
			GetRequestID(c),
			c.Request.Method,
			route,
			c.Writer.Status(),
			float64(time.Since(start).Microseconds()) / 1000.0,
			c.ClientIP(),
		}
		if len(c.Errors) > 0 {
			line += " errors=%q"
			args = append(args, c.Errors.String())
		}
		log.Printf(line, args...)
	}
}
