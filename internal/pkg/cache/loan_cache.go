// Package cache keeps a short lived Redis snapshot of the loan list so that
// repeated reads do not hammer the backing store. The cache is optional;
// a nil *LoanCache is safe to use and behaves as a permanent miss.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/emperor6007/EtherLend/internal/pkg/logger"
	"github.com/emperor6007/EtherLend/internal/pkg/models"

	"github.com/redis/go-redis/v9"
)

const loanListKey = "etherlend:loans:snapshot"

type LoanCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewLoanCache(client *redis.Client, ttl time.Duration) *LoanCache {
	return &LoanCache{client: client, ttl: ttl}
}

// GetLoans returns the cached loan list, or (nil, false) on a miss.
func (c *LoanCache) GetLoans(ctx context.Context) ([]models.LoanRecord, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, loanListKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.Warn(ctx, "loan cache read failed: %v", err)
		}
		return nil, false
	}

	var loans []models.LoanRecord
	if err := json.Unmarshal(raw, &loans); err != nil {
		logger.Warn(ctx, "loan cache held unreadable payload, dropping it: %v", err)
		_ = c.client.Del(ctx, loanListKey).Err()
		return nil, false
	}
	return loans, true
}

// SetLoans stores a fresh snapshot with the configured TTL.
func (c *LoanCache) SetLoans(ctx context.Context, loans []models.LoanRecord) {
	if c == nil || c.client == nil {
		return
	}

	raw, err := json.Marshal(loans)
	if err != nil {
		logger.Warn(ctx, "loan cache marshal failed: %v", err)
		return
	}
	if err := c.client.Set(ctx, loanListKey, raw, c.ttl).Err(); err != nil {
		logger.Warn(ctx, "loan cache write failed: %v", err)
	}
}

// Invalidate drops the snapshot after any write to the loan list.
func (c *LoanCache) Invalidate(ctx context.Context) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, loanListKey).Err(); err != nil {
		logger.Warn(ctx, "loan cache invalidation failed: %v", err)
	}
}
