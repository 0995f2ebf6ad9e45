package api

import (
	"net/http" // HTTP status codes

	"organizo/internal/domain"     // Importing domain models
	"organizo/internal/middleware" // Caller identity
	"organizo/internal/utils"      // List cache

	"github.com/gin-gonic/gin" // Gin web framework
)

// GetSettingsHandler returns the caller's settings, creating the default row on first read
func GetSettingsHandler(store SettingsStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := middleware.OwnerID(c)
		if !ok {
			respondError(c, domain.ErrUnauthenticated)
			return
		}
		s, err := store.GetOrCreate(c.Request.Context(), owner)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, s)
	}
}

// PutSettingsHandler upserts the supplied settings fields
func PutSettingsHandler(store SettingsStore, cache *utils.ListCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := middleware.OwnerID(c)
		if !ok {
			respondError(c, domain.ErrUnauthenticated)
			return
		}
		var patch domain.SettingsPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			badBody(c, err)
			return
		}
		s, err := store.Upsert(c.Request.Context(), owner, patch)
		if err != nil {
			respondError(c, err)
			return
		}
		invalidate(c, cache, owner, utils.KindDashboard) // Goal progress depends on settings
		c.JSON(http.StatusOK, s)
	}
}
