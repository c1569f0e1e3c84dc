package repositories

import (
	"context"

	"github.com/SscSPs/mma_audit/internal/core/domain"
)

// AuditReader defines read operations for the activity ledger.
// Every read is scoped to a single owner.
type AuditReader interface {
	// ListAuditEntries returns one page of an owner's entries matching filter,
	// newest first with ties broken by entry ID descending.
	ListAuditEntries(ctx context.Context, owner string, filter domain.AuditFilter, limit int, offset int) ([]domain.AuditEntry, error)

	// CountAuditEntries counts the owner's entries matching filter, using the same
	// predicate as ListAuditEntries.
	CountAuditEntries(ctx context.Context, owner string, filter domain.AuditFilter) (int, error)

	// FindAuditEntryByID retrieves a single entry belonging to owner.
	FindAuditEntryByID(ctx context.Context, owner string, entryID int64) (*domain.AuditEntry, error)
}

// AuditWriter defines the only write the activity ledger supports.
type AuditWriter interface {
	// SaveAuditEntry inserts entry and returns it with its store-assigned ID.
	// A reused integrity token yields apperrors.ErrDuplicate.
	SaveAuditEntry(ctx context.Context, entry domain.AuditEntry) (*domain.AuditEntry, error)
}

// AuditRepositoryFacade combines all audit-related repository interfaces.
type AuditRepositoryFacade interface {
	AuditReader
	AuditWriter
}
