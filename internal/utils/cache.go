package utils

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"errors"        // Error inspection
	"time"          // Time durations

	"github.com/redis/go-redis/v9" // Redis client
)

// Cached list kinds
const (
	KindTasks        = "tasks"
	KindTransactions = "transactions"
	KindDashboard    = "dashboard"
)

// ListCache keeps owner scoped list responses in Redis. A nil *ListCache is a valid, disabled cache.
type ListCache struct {
	rdb *redis.Client // Redis client
	ttl time.Duration // Entry lifetime
}

// NewListCache wraps a Redis client
func NewListCache(rdb *redis.Client, ttl time.Duration) *ListCache {
	return &ListCache{rdb: rdb, ttl: ttl}
}

// Key builds the cache key of an owner's list
func Key(kind, owner string) string {
	return "organizo:" + kind + ":user:" + owner
}

// Get retrieves a cached list and unmarshals it into dest
func (c *ListCache) Get(ctx context.Context, kind, owner string, dest any) (bool, error) {
	if c == nil {
		return false, nil // Cache disabled
	}
	val, err := c.rdb.Get(ctx, Key(kind, owner)).Result() // Get value from Redis
	if errors.Is(err, redis.Nil) {
		return false, nil // Key does not exist
	} else if err != nil {
		return false, err // Other Redis error
	}
	return true, json.Unmarshal([]byte(val), dest) // Unmarshal JSON into dest
}

// stampKey holds the time of the last invalidation of an owner's list
func stampKey(kind, owner string) string {
	return Key(kind, owner) + ":invalidated"
}

// Set stores a list loaded at readAt with the configured TTL.
// A list read before the last invalidation of its key is stale and is dropped, so a slow read never overwrites a newer write.
func (c *ListCache) Set(ctx context.Context, kind, owner string, value any, readAt time.Time) error {
	if c == nil {
		return nil
	}
	b, err := json.Marshal(value) // Marshal value to JSON
	if err != nil {
		return err // Return error if marshaling fails
	}
	stamp := stampKey(kind, owner)
	err = c.rdb.Watch(ctx, func(tx *redis.Tx) error {
		last, err := tx.Get(ctx, stamp).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if last >= readAt.UnixNano() {
			return nil // Invalidated after the read started
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, Key(kind, owner), b, c.ttl) // Set value in Redis with TTL
			return nil
		})
		return err
	}, stamp)
	if errors.Is(err, redis.TxFailedErr) {
		return nil // Invalidated while we were writing
	}
	return err
}

// Invalidate drops the owner's cached lists of the given kinds and records when it happened
func (c *ListCache) Invalidate(ctx context.Context, owner string, kinds ...string) error {
	if c == nil || len(kinds) == 0 {
		return nil
	}
	now := time.Now().UnixNano()
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, k := range kinds {
			pipe.Del(ctx, Key(k, owner))                  // Delete cached list
			pipe.Set(ctx, stampKey(k, owner), now, c.ttl) // Lives as long as a cached list would
		}
		return nil
	})
	return err
}
