package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"policywizard/internal/telemetry"
)

// Metrics records http_requests_total and http_request_duration_seconds.
// The path label is the route template; unmatched requests use "<no-route>".
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "<no-route>"
		}

		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())

		telemetry.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
		telemetry.HTTPRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}
