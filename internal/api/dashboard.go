package api

import (
	"net/http" // HTTP status codes
	"time"     // Current date

	"organizo/internal/aggregate"  // Dashboard figures
	"organizo/internal/domain"     // Importing domain models
	"organizo/internal/middleware" // Caller identity
	"organizo/internal/utils"      // List cache

	"github.com/gin-gonic/gin"   // Gin web framework
	"golang.org/x/sync/errgroup" // Concurrent loads
)

// DashboardHandler loads the caller's collections concurrently and returns the aggregated summary.
// The optional date query parameter replaces today (UTC).
func DashboardHandler(tasks TaskStore, txs TransactionStore, settings SettingsStore, cache *utils.ListCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := middleware.OwnerID(c)
		if !ok {
			respondError(c, domain.ErrUnauthenticated)
			return
		}
		today := domain.DateOf(time.Now().UTC())
		override := c.Query("date")
		if override != "" {
			d, err := domain.ParseDate(override)
			if err != nil {
				respondError(c, domain.Invalid("Date must be formatted as YYYY-MM-DD"))
				return
			}
			today = d
		} else {
			var cached aggregate.Summary
			// Cached summaries are only good for the day they were computed on
			if hit, err := cache.Get(c.Request.Context(), utils.KindDashboard, owner, &cached); err == nil && hit && cached.Date.Equal(today) {
				c.JSON(http.StatusOK, cached)
				return
			}
		}

		var (
			taskList []domain.Task
			txList   []domain.Transaction
			s        *domain.UserSettings
		)
		readAt := time.Now()
		g, ctx := errgroup.WithContext(c.Request.Context())
		g.Go(func() (err error) {
			taskList, err = tasks.List(ctx, owner)
			return err
		})
		g.Go(func() (err error) {
			txList, err = txs.List(ctx, owner)
			return err
		})
		g.Go(func() (err error) {
			s, err = settings.GetOrCreate(ctx, owner)
			return err
		})
		if err := g.Wait(); err != nil {
			respondError(c, err)
			return
		}

		summary := aggregate.Summarize(txList, taskList, *s, today)
		if override == "" {
			_ = cache.Set(c.Request.Context(), utils.KindDashboard, owner, summary, readAt)
		}
		c.JSON(http.StatusOK, summary)
	}
}
