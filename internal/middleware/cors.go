package middleware

import (
	"slices" // Origin lookup
	"time"   // Preflight cache

	"github.com/gin-contrib/cors" // CORS middleware for Gin
	"github.com/gin-gonic/gin"    // Gin web framework
)

// CORS allows the configured frontends; in development every origin is accepted
func CORS(origins []string, allowAll bool) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOriginFunc: func(origin string) bool {
			return allowAll || slices.Contains(origins, origin)
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "X-Requested-With", UserIDHeader},
		AllowCredentials: true,
		MaxAge:           5 * time.Minute,
	})
}
