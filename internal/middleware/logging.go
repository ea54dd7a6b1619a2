package middleware

import (
	"time" // Request latency

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// RequestLogger logs every request once it has been served
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now() // Start time of the request
		c.Next()            // Serve the request
		entry := logrus.WithFields(logrus.Fields{
			"method":    c.Request.Method,   // HTTP method
			"path":      c.Request.URL.Path, // Request path
			"status":    c.Writer.Status(),  // Response status
			"latency":   time.Since(start),  // Time spent serving
			"client_ip": c.ClientIP(),       // Caller address
		})
		if len(c.Errors) > 0 {
			entry.WithField("errors", c.Errors.String()).Error("Request failed") // Log attached handler errors
			return
		}
		entry.Info("Request served")
	}
}
