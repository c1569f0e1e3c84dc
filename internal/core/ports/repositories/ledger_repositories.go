package repositories

import (
	"context"

	"github.com/SscSPs/mma_audit/internal/core/domain"
)

// LedgerLookup is the narrow view of the bookkeeping record store used by
// verification. Both operations are scoped to the record owner and must not
// reveal records that belong to anyone else.
type LedgerLookup interface {
	// FindByToken returns the owner's record carrying token, or apperrors.ErrNotFound.
	FindByToken(ctx context.Context, owner string, token string) (*domain.LedgerRecord, error)

	// MarkVerified sets the record's verification status to Verified.
	MarkVerified(ctx context.Context, record domain.LedgerRecord, token string) error
}
