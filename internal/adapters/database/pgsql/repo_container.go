package pgsql

import (
	portsrepo "github.com/SscSPs/mma_audit/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the PostgreSQL repositories over a shared handle.
func NewRepositoryProvider(db DBTX) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AuditRepo:    newAuditRepository(db),
		LedgerLookup: newLedgerRepository(db),
	}
}
