package middleware

import (
	"net/http" // HTTP status codes
	"strings"  // String manipulation

	"organizo/internal/utils" // Identity token helpers

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// UserIDHeader carries the caller identity set by the upstream identity provider
const UserIDHeader = "user-id"

// ownerKey is the gin context key of the caller identity
const ownerKey = "ownerID"

// Identity extracts the caller from the user-id header.
//
// The header is trusted as proof of an authenticated caller: the identity
// provider authenticates the user before the client calls this API, and this
// middleware performs no credential check of its own. When secret is set the
// boundary is tightened: a Bearer token signed with secret must accompany the
// header and name the same user in its subject.
func Identity(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(UserIDHeader)) // Caller identity
		if userID == "" {
			// No identity, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
			return
		}
		if secret != "" {
			authHeader := c.GetHeader("Authorization")
			tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
			if !ok || tokenStr == "" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Authentication required"})
				return
			}
			if err := utils.VerifyIdentityToken(tokenStr, userID, secret); err != nil {
				logrus.WithFields(logrus.Fields{
					"owner": userID,
					"path":  c.Request.URL.Path,
					"error": err.Error(),
				}).Warn("Identity token rejected")
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token"})
				return
			}
		}
		c.Set(ownerKey, userID) // Store caller in context
		c.Next()                // Proceed to the next handler
	}
}

// OwnerID returns the caller identity stored by Identity
func OwnerID(c *gin.Context) (string, bool) {
	owner := c.GetString(ownerKey)
	return owner, owner != ""
}
