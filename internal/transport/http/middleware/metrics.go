package middleware

import (
	"strconv"
	"time"

	"github.com/ErlanBelekov/rideboard/internal/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics records latency and count per route template, so /entries/1 and
// /entries/2 share a series. Unmatched routes are grouped as "unknown".
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unknown"
		}
		labels := []string{c.Request.Method, path, strconv.Itoa(c.Writer.Status())}

		metrics.HTTPRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
		metrics.HTTPRequestsTotal.WithLabelValues(labels...).Inc()
	}
}
