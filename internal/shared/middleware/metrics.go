package middleware

import (
	"strconv"
	"time"

	"catalog-backend/internal/infrastructure/telemetry"

	"github.com/gin-gonic/gin"
)

// Metrics records request count and latency per route template
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		telemetry.HTTPRequestsTotal.With(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		telemetry.HTTPRequestDurationSeconds.With(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
