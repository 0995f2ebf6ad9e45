package middleware

import (
	"time" // Latency

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// RequestLogger logs every request before dispatch and its outcome afterwards
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		owner := c.GetHeader(UserIDHeader)
		if owner == "" {
			owner = "Not provided"
		}
		entry := logrus.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"owner":  owner,
			"origin": c.GetHeader("Origin"),
		})
		entry.Info("Request received")

		c.Next()

		status := c.Writer.Status()
		done := entry.WithFields(logrus.Fields{
			"status":     status,
			"latency_ms": time.Since(start).Milliseconds(),
		})
		switch {
		case status >= 500:
			done.Error("Request completed")
		case status >= 400:
			done.Warn("Request completed")
		default:
			done.Info("Request completed")
		}
	}
}
