package services

import (
	"context"

	"github.com/SscSPs/mma_audit/internal/core/domain"
)

// AuditWriterSvc appends entries to the activity ledger.
type AuditWriterSvc interface {
	// Append validates and stores entry. Storage failures are reported as false
	// and logged; they are never returned as errors.
	Append(ctx context.Context, entry domain.AuditEntry) bool
}

// AuditReaderSvc reads the activity ledger. Storage failures degrade to empty results.
type AuditReaderSvc interface {
	// Query returns the requested page and the total number of matching entries.
	Query(ctx context.Context, owner string, page int, pageSize int, filter domain.AuditFilter) ([]domain.AuditEntry, int)

	// Get returns a single entry belonging to owner.
	Get(ctx context.Context, owner string, entryID int64) (*domain.AuditEntry, bool)
}

// AuditStoreSvc combines the read and write sides of the activity ledger.
type AuditStoreSvc interface {
	AuditWriterSvc
	AuditReaderSvc
}
