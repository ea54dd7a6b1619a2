package middleware

import (
	"strconv"                        // Status code labels
	"survey_system/internal/metrics" // Prometheus collectors
	"time"                           // Request latency

	"github.com/gin-gonic/gin" // Gin web framework
)

// RequestMetrics records request latency by matched route
func RequestMetrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		route := c.FullPath() // Route pattern keeps label cardinality bounded
		if route == "" {
			route = "unmatched"
		}
		metrics.ObserveRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
