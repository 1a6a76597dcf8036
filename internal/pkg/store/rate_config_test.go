package store

import (
	"context"
	"testing"

	"github.com/emperor6007/EtherLend/internal/pkg/consts"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demotedRateRepo(defaultRate float64) (*RateConfigRepository, *memBackend) {
	local := newMemBackend()
	return NewRateConfigRepository(&stubSession{available: false}, local, defaultRate), local
}

func TestLocalLoadReturnsDefaultWhenAbsent(t *testing.T) {
	repo, _ := demotedRateRepo(7.5)

	rate, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 7.5, rate)
}

func TestLocalSaveThenLoadRoundTrips(t *testing.T) {
	repo, local := demotedRateRepo(7.5)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, 8.25))
	assert.Equal(t, "8.25", local.data[consts.StorageKeyRate])

	rate, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8.25, rate)
}

func TestLocalLoadUnparseableFallsBackToDefault(t *testing.T) {
	repo, local := demotedRateRepo(7.5)

	require.NoError(t, local.Set(consts.StorageKeyRate, "not-a-number"))

	rate, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 7.5, rate)
}

func TestLocalSeenWalletCheckAndMark(t *testing.T) {
	local := newMemBackend()
	repo := NewSeenWalletRepository(&stubSession{available: false}, local)
	ctx := context.Background()

	wasNew, err := repo.CheckAndMark(ctx, "0x9858EfFD232B4033E47d90003D41EC34EcaEda94")
	require.NoError(t, err)
	assert.True(t, wasNew)

	wasNew, err = repo.CheckAndMark(ctx, "0x9858EfFD232B4033E47d90003D41EC34EcaEda94")
	require.NoError(t, err)
	assert.False(t, wasNew)

	assert.Contains(t, local.data, consts.SeenWalletKeyPrefix+"0x9858EfFD232B4033E47d90003D41EC34EcaEda94")
}
