package memory

import (
	portsrepo "github.com/SscSPs/mma_audit/internal/core/ports/repositories"
)

// Store bundles the in-memory repositories so callers can seed the ledger
// while services see only the ports.
type Store struct {
	Audit  *AuditRepository
	Ledger *LedgerRepository
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		Audit:  NewAuditRepository(),
		Ledger: NewLedgerRepository(),
	}
}

// RepositoryProvider exposes the store through the repository ports.
func (s *Store) RepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AuditRepo:    s.Audit,
		LedgerLookup: s.Ledger,
	}
}
