package middleware

import (
	"strconv"
	"time"

	"github.com/SscSPs/garage_books/internal/platform/metrics"
	"github.com/gin-gonic/gin"
)

// Prometheus records request count, latency and in-flight requests.
// Paths are the route templates, so IDs do not explode label cardinality.
func Prometheus(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		if m == nil {
			c.Next()
			return
		}
		m.HTTPInFlight.Inc()
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		status := strconv.Itoa(c.Writer.Status())
		m.HTTPDuration.WithLabelValues(c.Request.Method, path, status).Observe(time.Since(start).Seconds())
		m.HTTPRequests.WithLabelValues(c.Request.Method, path, status).Inc()
		m.HTTPInFlight.Dec()
	}
}
