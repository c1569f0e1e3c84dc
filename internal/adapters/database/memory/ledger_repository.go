package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/SscSPs/mma_audit/internal/apperrors"
	"github.com/SscSPs/mma_audit/internal/core/domain"
	portsrepo "github.com/SscSPs/mma_audit/internal/core/ports/repositories"
	"github.com/google/uuid"
)

// LedgerRepository is an in-memory stand-in for the bookkeeping record store.
// Records are indexed by integrity token, which is unique across owners.
type LedgerRepository struct {
	mu      sync.RWMutex
	records map[string]*domain.LedgerRecord // record id -> record
	tokens  map[string]string               // integrity token -> record id
	now     func() time.Time
}

// NewLedgerRepository creates an empty in-memory ledger.
func NewLedgerRepository() *LedgerRepository {
	return &LedgerRepository{
		records: make(map[string]*domain.LedgerRecord),
		tokens:  make(map[string]string),
		now:     time.Now,
	}
}

var _ portsrepo.LedgerLookup = (*LedgerRepository)(nil)

// CreateRecord stores a new record, assigning an id when none is given.
// Records start Pending unless a status is supplied.
func (r *LedgerRepository) CreateRecord(ctx context.Context, record domain.LedgerRecord) (*domain.LedgerRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if record.RecordID == "" {
		record.RecordID = uuid.NewString()
	}
	if _, exists := r.records[record.RecordID]; exists {
		return nil, fmt.Errorf("ledger record %s: %w", record.RecordID, apperrors.ErrDuplicate)
	}
	if record.IntegrityToken != "" {
		if _, exists := r.tokens[record.IntegrityToken]; exists {
			return nil, fmt.Errorf("integrity token already assigned: %w", apperrors.ErrDuplicate)
		}
	}
	if record.VerificationStatus == "" {
		record.VerificationStatus = domain.VerificationPending
	}
	now := r.now().UTC()
	record.CreatedAt = now
	record.LastUpdatedAt = now
	if record.CreatedBy == "" {
		record.CreatedBy = record.Owner
	}
	record.LastUpdatedBy = record.CreatedBy

	stored := record
	r.records[stored.RecordID] = &stored
	if stored.IntegrityToken != "" {
		r.tokens[stored.IntegrityToken] = stored.RecordID
	}

	out := stored
	return &out, nil
}

// FindRecordByID returns the record regardless of owner. It is not part of
// LedgerLookup and exists for tests and seeding.
func (r *LedgerRepository) FindRecordByID(ctx context.Context, recordID string) (*domain.LedgerRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[recordID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	out := *rec
	return &out, nil
}

func (r *LedgerRepository) FindByToken(ctx context.Context, owner string, token string) (*domain.LedgerRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.tokens[token]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	rec := r.records[id]
	if rec.Owner != owner {
		return nil, apperrors.ErrNotFound
	}
	out := *rec
	return &out, nil
}

func (r *LedgerRepository) MarkVerified(ctx context.Context, record domain.LedgerRecord, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.records[record.RecordID]
	if !ok || rec.Owner != record.Owner || rec.IntegrityToken != token {
		return apperrors.ErrNotFound
	}

	now := r.now().UTC()
	rec.VerificationStatus = domain.VerificationVerified
	if rec.VerifiedAt == nil {
		verifiedAt := now
		if record.VerifiedAt != nil {
			verifiedAt = record.VerifiedAt.UTC()
		}
		rec.VerifiedAt = &verifiedAt
	}
	rec.LastUpdatedAt = now
	rec.LastUpdatedBy = record.Owner
	return nil
}
