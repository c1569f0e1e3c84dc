package services

import (
	"context"

	"github.com/SscSPs/mma_audit/internal/core/domain"
)

// VerificationSvc checks a presented integrity token against the owner's ledger records.
type VerificationSvc interface {
	Verify(ctx context.Context, owner string, token string) domain.VerificationResult
}
