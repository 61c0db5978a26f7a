package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/marketplace-payments/internal/infrastructure/adapter/metrics"
)

// Metrics records request counts and latency per route template
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		m.RequestsTotal.WithLabelValues(route, c.Request.Method, status).Inc()
		m.RequestLatency.WithLabelValues(route, c.Request.Method, status).Observe(time.Since(start).Seconds())
	}
}
