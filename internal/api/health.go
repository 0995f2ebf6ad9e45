package api

import (
	"net/http" // HTTP status codes
	"time"     // Timestamp

	"github.com/gin-gonic/gin" // Gin web framework
)

// HealthHandler reports liveness without requiring an identity
func HealthHandler(env string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "healthy",
			"environment": env,
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
		})
	}
}
