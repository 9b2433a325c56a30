package middleware

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"aurelia-backend/internal/shared/telemetry"
)

// Logging emits a structured log per request.
func Logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		if strings.EqualFold(c.Request.Method, "OPTIONS") {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		wizardID, _ := c.Get("wizardId")
		stepTransition := ""
		if raw, ok := c.Get("stepTransition"); ok {
			if s, ok := raw.(string); ok {
				stepTransition = s
			}
		}

		telemetry.Info("request.complete", map[string]any{
			"request_id":      RequestIDFromContext(c),
			"method":          c.Request.Method,
			"path":            c.Request.URL.Path,
			"route":           c.FullPath(),
			"status":          c.Writer.Status(),
			"step_transition": stepTransition,
			"duration_ms":     float64(latency.Microseconds()) / 1000.0,
			"visitor_id":      VisitorIDFromContext(c),
			"wizard_id":       wizardID,
			"client_ip":       c.ClientIP(),
			"user_agent":      c.Request.UserAgent(),
		})
	}
}
