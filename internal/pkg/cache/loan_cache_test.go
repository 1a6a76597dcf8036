package cache

import (
	"context"
	"testing"
	"time"

	"github.com/emperor6007/EtherLend/internal/pkg/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*LoanCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewLoanCache(client, 30*time.Second), mr
}

func TestCacheMissThenHit(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	_, ok := c.GetLoans(ctx)
	assert.False(t, ok)

	snapshot := []models.LoanRecord{
		{LoanID: "AAAA11112222", Status: models.LoanStatusPending, Amount: 2.5},
	}
	c.SetLoans(ctx, snapshot)

	cached, ok := c.GetLoans(ctx)
	require.True(t, ok)
	require.Len(t, cached, 1)
	assert.Equal(t, "AAAA11112222", cached[0].LoanID)
	assert.Equal(t, 2.5, cached[0].Amount)
}

func TestCacheExpires(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	c.SetLoans(ctx, []models.LoanRecord{{LoanID: "AAAA11112222"}})
	mr.FastForward(31 * time.Second)

	_, ok := c.GetLoans(ctx)
	assert.False(t, ok)
}

func TestInvalidateDropsSnapshot(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	c.SetLoans(ctx, []models.LoanRecord{{LoanID: "AAAA11112222"}})
	c.Invalidate(ctx)

	_, ok := c.GetLoans(ctx)
	assert.False(t, ok)
}

func TestCorruptPayloadReadsAsMissAndSelfHeals(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(loanListKey, "{broken"))

	_, ok := c.GetLoans(ctx)
	assert.False(t, ok)
	assert.False(t, mr.Exists(loanListKey))
}

func TestNilCacheIsAPermanentMiss(t *testing.T) {
	var c *LoanCache
	ctx := context.Background()

	_, ok := c.GetLoans(ctx)
	assert.False(t, ok)

	// Writes and invalidations are no-ops rather than panics.
	c.SetLoans(ctx, []models.LoanRecord{{LoanID: "AAAA11112222"}})
	c.Invalidate(ctx)
}
