package store

import (
	"context"
	"testing"

	"github.com/emperor6007/EtherLend/internal/pkg/consts"
	"github.com/emperor6007/EtherLend/internal/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demotedLoanRepo() (*LoanRepository, *memBackend) {
	local := newMemBackend()
	return NewLoanRepository(&stubSession{available: false}, local), local
}

func TestLocalFindAllReturnsReverseAppendOrder(t *testing.T) {
	repo, _ := demotedLoanRepo()
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, &models.LoanRecord{LoanID: "FIRST0000001", Status: models.LoanStatusPending}))
	require.NoError(t, repo.Insert(ctx, &models.LoanRecord{LoanID: "SECOND000002", Status: models.LoanStatusPending}))
	require.NoError(t, repo.Insert(ctx, &models.LoanRecord{LoanID: "THIRD0000003", Status: models.LoanStatusPending}))

	loans, err := repo.FindAll(ctx)

	require.NoError(t, err)
	require.Len(t, loans, 3)
	assert.Equal(t, "THIRD0000003", loans[0].LoanID)
	assert.Equal(t, "SECOND000002", loans[1].LoanID)
	assert.Equal(t, "FIRST0000001", loans[2].LoanID)
}

func TestLocalUpdateStatusTransitions(t *testing.T) {
	repo, _ := demotedLoanRepo()
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, &models.LoanRecord{LoanID: "AAAA11112222", Status: models.LoanStatusPending}))

	require.NoError(t, repo.UpdateStatus(ctx, "AAAA11112222", models.LoanStatusApproved))

	loans, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, loans, 1)
	assert.Equal(t, models.LoanStatusApproved, loans[0].Status)
}

func TestLocalUpdateStatusRejectsSecondTransition(t *testing.T) {
	repo, _ := demotedLoanRepo()
	ctx := context.Background()

	require.NoError(t, repo.Insert(ctx, &models.LoanRecord{LoanID: "AAAA11112222", Status: models.LoanStatusPending}))
	require.NoError(t, repo.UpdateStatus(ctx, "AAAA11112222", models.LoanStatusRejected))

	err := repo.UpdateStatus(ctx, "AAAA11112222", models.LoanStatusApproved)
	assert.ErrorIs(t, err, consts.ErrorInvalidStatusTransition)
}

func TestLocalUpdateStatusUnknownLoan(t *testing.T) {
	repo, _ := demotedLoanRepo()

	err := repo.UpdateStatus(context.Background(), "MISSING00000", models.LoanStatusApproved)
	assert.ErrorIs(t, err, consts.ErrorLoanNotFound)
}

func TestLocalCorruptPayloadReadsAsEmpty(t *testing.T) {
	repo, local := demotedLoanRepo()
	ctx := context.Background()

	require.NoError(t, local.Set(consts.StorageKeyLoans, "{not json"))

	loans, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, loans)

	// A subsequent insert starts a fresh list rather than failing.
	require.NoError(t, repo.Insert(ctx, &models.LoanRecord{LoanID: "AAAA11112222", Status: models.LoanStatusPending}))
	loans, err = repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, loans, 1)
}
