package api

import (
	"net/http" // HTTP status codes
	"time"     // Read timestamps

	"organizo/internal/domain"     // Importing domain models
	"organizo/internal/middleware" // Caller identity
	"organizo/internal/utils"      // List cache

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// ListTasksHandler returns the caller's tasks, newest first
func ListTasksHandler(store TaskStore, cache *utils.ListCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := middleware.OwnerID(c) // Get caller from context
		if !ok {
			respondError(c, domain.ErrUnauthenticated)
			return
		}
		var tasks []domain.Task
		// Try cache first
		if hit, err := cache.Get(c.Request.Context(), utils.KindTasks, owner, &tasks); err == nil && hit {
			c.JSON(http.StatusOK, tasks) // Return cached list
			return
		}
		readAt := time.Now()                                 // Writes after this point make the result stale
		tasks, err := store.List(c.Request.Context(), owner) // Query the store
		if err != nil {
			respondError(c, err)
			return
		}
		_ = cache.Set(c.Request.Context(), utils.KindTasks, owner, tasks, readAt) // Cache miss, store the fresh list
		c.JSON(http.StatusOK, tasks)
	}
}

// CreateTaskHandler validates and stores a new task for the caller
func CreateTaskHandler(store TaskStore, cache *utils.ListCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := middleware.OwnerID(c)
		if !ok {
			respondError(c, domain.ErrUnauthenticated)
			return
		}
		var in domain.TaskInput // Bind JSON request to struct
		if err := c.ShouldBindJSON(&in); err != nil {
			badBody(c, err)
			return
		}
		task, err := domain.NewTask(in) // Validate before touching storage
		if err != nil {
			respondError(c, err)
			return
		}
		if err := store.Create(c.Request.Context(), owner, &task); err != nil {
			respondError(c, err)
			return
		}
		invalidate(c, cache, owner, utils.KindTasks, utils.KindDashboard)
		c.JSON(http.StatusCreated, task)
	}
}

// UpdateTaskHandler applies a partial update to one of the caller's tasks
func UpdateTaskHandler(store TaskStore, cache *utils.ListCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := middleware.OwnerID(c)
		if !ok {
			respondError(c, domain.ErrUnauthenticated)
			return
		}
		var patch domain.TaskPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			badBody(c, err)
			return
		}
		task, err := store.Update(c.Request.Context(), owner, c.Param("id"), patch)
		if err != nil {
			respondError(c, err)
			return
		}
		invalidate(c, cache, owner, utils.KindTasks, utils.KindDashboard)
		c.JSON(http.StatusOK, task)
	}
}

// DeleteTaskHandler removes one of the caller's tasks
func DeleteTaskHandler(store TaskStore, cache *utils.ListCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := middleware.OwnerID(c)
		if !ok {
			respondError(c, domain.ErrUnauthenticated)
			return
		}
		if err := store.Delete(c.Request.Context(), owner, c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		invalidate(c, cache, owner, utils.KindTasks, utils.KindDashboard)
		c.Status(http.StatusNoContent)
	}
}

// invalidate drops the caller's cached lists after a write. A cache failure never fails the write.
func invalidate(c *gin.Context, cache *utils.ListCache, owner string, kinds ...string) {
	if err := cache.Invalidate(c.Request.Context(), owner, kinds...); err != nil {
		logrus.WithFields(logrus.Fields{
			"owner": owner,
			"kinds": kinds,
			"error": err.Error(),
		}).Warn("Cache invalidation failed")
	}
}
