package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/mma_audit/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToModelLedgerRecord_PendingHasNullVerifiedAt(t *testing.T) {
	m := ToModelLedgerRecord(domain.LedgerRecord{
		RecordID:           "rec-1",
		Owner:              "u1",
		RecordType:         domain.LedgerRecordInvoice,
		Amount:             decimal.RequireFromString("1200.50"),
		CurrencyCode:       "EUR",
		VerificationStatus: domain.VerificationPending,
	})

	assert.False(t, m.VerifiedAt.Valid)
	assert.False(t, m.IntegrityToken.Valid)
	assert.Equal(t, "invoice", m.RecordType)
	assert.Equal(t, "u1", m.OwnerID)
}

func TestToDomainLedgerRecord_KeepsVerificationTime(t *testing.T) {
	verifiedAt := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	d := ToDomainLedgerRecord(ToModelLedgerRecord(domain.LedgerRecord{
		RecordID:           "rec-2",
		Owner:              "u1",
		Amount:             decimal.NewFromInt(42),
		IntegrityToken:     "T1",
		VerificationStatus: domain.VerificationVerified,
		VerifiedAt:         &verifiedAt,
	}))

	require.NotNil(t, d.VerifiedAt)
	assert.True(t, verifiedAt.Equal(*d.VerifiedAt))
	assert.Equal(t, "T1", d.IntegrityToken)
	assert.True(t, decimal.NewFromInt(42).Equal(d.Amount))
	assert.Equal(t, domain.VerificationVerified, d.VerificationStatus)
}
