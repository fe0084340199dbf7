package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/restaurants/restaurants-api/backend/go-services/pkg/metrics"
)

// Metrics records request counts and latency per matched route. Unmatched
// requests are counted under "unmatched".
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.HTTPRequests.WithLabelValues(path, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
		metrics.HTTPLatency.WithLabelValues(path, c.Request.Method).Observe(time.Since(start).Seconds())
	}
}
