package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/mma_audit/internal/adapters/database/memory"
	"github.com/SscSPs/mma_audit/internal/apperrors"
	"github.com/SscSPs/mma_audit/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerRepository_CreateRecord(t *testing.T) {
	repo := memory.NewLedgerRepository()
	ctx := context.Background()

	rec, err := repo.CreateRecord(ctx, domain.LedgerRecord{
		Owner:          "u1",
		RecordType:     domain.LedgerRecordTransaction,
		Amount:         decimal.NewFromInt(25),
		IntegrityToken: "T1",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, rec.RecordID)
	assert.Equal(t, domain.VerificationPending, rec.VerificationStatus)
	assert.Equal(t, "u1", rec.CreatedBy)

	_, err = repo.CreateRecord(ctx, domain.LedgerRecord{Owner: "u2", IntegrityToken: "T1"})
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)

	// tokenless records do not collide
	_, err = repo.CreateRecord(ctx, domain.LedgerRecord{Owner: "u1"})
	require.NoError(t, err)
	_, err = repo.CreateRecord(ctx, domain.LedgerRecord{Owner: "u1"})
	require.NoError(t, err)
}

func TestLedgerRepository_FindByTokenIsOwnerScoped(t *testing.T) {
	repo := memory.NewLedgerRepository()
	ctx := context.Background()
	_, err := repo.CreateRecord(ctx, domain.LedgerRecord{RecordID: "rec-1", Owner: "u1", IntegrityToken: "T1"})
	require.NoError(t, err)

	rec, err := repo.FindByToken(ctx, "u1", "T1")
	require.NoError(t, err)
	assert.Equal(t, "rec-1", rec.RecordID)

	_, err = repo.FindByToken(ctx, "u2", "T1")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	_, err = repo.FindByToken(ctx, "u1", "T2")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestLedgerRepository_MarkVerified(t *testing.T) {
	repo := memory.NewLedgerRepository()
	ctx := context.Background()
	created, err := repo.CreateRecord(ctx, domain.LedgerRecord{RecordID: "rec-1", Owner: "u1", IntegrityToken: "T1"})
	require.NoError(t, err)

	first := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	update := *created
	update.VerifiedAt = &first
	require.NoError(t, repo.MarkVerified(ctx, update, "T1"))

	stored, err := repo.FindRecordByID(ctx, "rec-1")
	require.NoError(t, err)
	assert.Equal(t, domain.VerificationVerified, stored.VerificationStatus)
	require.NotNil(t, stored.VerifiedAt)
	assert.True(t, first.Equal(*stored.VerifiedAt))

	later := first.Add(time.Hour)
	update.VerifiedAt = &later
	require.NoError(t, repo.MarkVerified(ctx, update, "T1"))
	stored, err = repo.FindRecordByID(ctx, "rec-1")
	require.NoError(t, err)
	assert.True(t, first.Equal(*stored.VerifiedAt), "first verification time is kept")

	foreign := *created
	foreign.Owner = "u2"
	assert.ErrorIs(t, repo.MarkVerified(ctx, foreign, "T1"), apperrors.ErrNotFound)
	assert.ErrorIs(t, repo.MarkVerified(ctx, *created, "wrong"), apperrors.ErrNotFound)
}
