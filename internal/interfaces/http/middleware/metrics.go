package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"fx-bothub.backend/internal/metrics"
)

// MetricsMiddleware records request counts and latency per route.
// The route template is used instead of the raw path so high-cardinality
// IDs do not blow up the label set.
func MetricsMiddleware() gin.HandlerFunc {
	m := metrics.Registry()
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		m.HTTPRequests.WithLabelValues(
			c.Request.Method, path, strconv.Itoa(c.Writer.Status()),
		).Inc()
		m.HTTPLatency.WithLabelValues(c.Request.Method, path).
			Observe(time.Since(start).Seconds())
	}
}
