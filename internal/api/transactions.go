package api

import (
	"net/http" // HTTP status codes
	"time"     // Read timestamps

	"organizo/internal/domain"     // Importing domain models
	"organizo/internal/middleware" // Caller identity
	"organizo/internal/utils"      // List cache

	"github.com/gin-gonic/gin" // Gin web framework
)

// ListTransactionsHandler returns the caller's transactions, newest first
func ListTransactionsHandler(store TransactionStore, cache *utils.ListCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := middleware.OwnerID(c)
		if !ok {
			respondError(c, domain.ErrUnauthenticated)
			return
		}
		var txs []domain.Transaction
		if hit, err := cache.Get(c.Request.Context(), utils.KindTransactions, owner, &txs); err == nil && hit {
			c.JSON(http.StatusOK, txs)
			return
		}
		readAt := time.Now()
		txs, err := store.List(c.Request.Context(), owner)
		if err != nil {
			respondError(c, err)
			return
		}
		_ = cache.Set(c.Request.Context(), utils.KindTransactions, owner, txs, readAt)
		c.JSON(http.StatusOK, txs)
	}
}

// CreateTransactionHandler validates type, fields and tag, then stores the record
func CreateTransactionHandler(store TransactionStore, cache *utils.ListCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := middleware.OwnerID(c)
		if !ok {
			respondError(c, domain.ErrUnauthenticated)
			return
		}
		var in domain.TransactionInput
		if err := c.ShouldBindJSON(&in); err != nil {
			badBody(c, err)
			return
		}
		t, err := domain.NewTransaction(in) // Nothing is written unless every check passes
		if err != nil {
			respondError(c, err)
			return
		}
		if err := store.Create(c.Request.Context(), owner, &t); err != nil {
			respondError(c, err)
			return
		}
		invalidate(c, cache, owner, utils.KindTransactions, utils.KindDashboard)
		c.JSON(http.StatusCreated, t)
	}
}

// UpdateTransactionHandler applies a partial update to one of the caller's transactions
func UpdateTransactionHandler(store TransactionStore, cache *utils.ListCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		owner, ok := middleware.OwnerID(c)
		if !ok {
			respondError(c, domain.ErrUnauthenticated)
			return
		}
		var patch domain.TransactionPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			badBody(c, err)
			return
		}
		t, err := store.Update(c.Request.Context(), owner, c.Param("id"), patch)
		if err != nil {
			respondError(c, err)
			return
		}
		invalidate(c, cache, owner, utils.KindTransactions, utils.KindDashboard)
		c.JSON(http.StatusOK, t)
	}
}

// DeleteTransactionHandler removes one of the caller's transactions
func DeleteTransactionHandler(store TransactionStore, cache *utils.ListCache) gin.HandlerFunc {
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
		invalidate(c, cache, owner, utils.KindTransactions, utils.KindDashboard)
		c.Status(http.StatusNoContent)
	}
}
