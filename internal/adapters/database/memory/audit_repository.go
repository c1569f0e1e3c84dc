package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/SscSPs/mma_audit/internal/apperrors"
	"github.com/SscSPs/mma_audit/internal/core/domain"
	portsrepo "github.com/SscSPs/mma_audit/internal/core/ports/repositories"
)

// AuditRepository keeps audit entries in process memory. It enforces the same
// constraints as the audit_entries table: ids are assigned monotonically and a
// non-empty integrity token may be claimed by at most one entry whose status is
// not Failed.
type AuditRepository struct {
	mu      sync.RWMutex
	lastID  int64
	entries []domain.AuditEntry
	tokens  map[string]int64 // integrity token -> entry id
}

// NewAuditRepository creates an empty in-memory audit repository.
func NewAuditRepository() *AuditRepository {
	return &AuditRepository{
		tokens: make(map[string]int64),
	}
}

var _ portsrepo.AuditRepositoryFacade = (*AuditRepository)(nil)

func (r *AuditRepository) SaveAuditEntry(ctx context.Context, entry domain.AuditEntry) (*domain.AuditEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	claims := claimsToken(entry)
	if claims {
		if id, exists := r.tokens[entry.IntegrityToken]; exists {
			return nil, fmt.Errorf("integrity token already used by audit entry %d: %w", id, apperrors.ErrDuplicate)
		}
	}

	r.lastID++
	entry.EntryID = r.lastID
	r.entries = append(r.entries, entry)
	if claims {
		r.tokens[entry.IntegrityToken] = entry.EntryID
	}

	saved := entry
	return &saved, nil
}

func (r *AuditRepository) ListAuditEntries(ctx context.Context, owner string, filter domain.AuditFilter, limit int, offset int) ([]domain.AuditEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	matched := r.match(owner, filter)
	r.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.EntryID > b.EntryID
	})

	if offset < 0 {
		offset = 0
	}
	if offset >= len(matched) || limit <= 0 {
		return []domain.AuditEntry{}, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}

	page := make([]domain.AuditEntry, end-offset)
	copy(page, matched[offset:end])
	return page, nil
}

func (r *AuditRepository) CountAuditEntries(ctx context.Context, owner string, filter domain.AuditFilter) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.match(owner, filter)), nil
}

func (r *AuditRepository) FindAuditEntryByID(ctx context.Context, owner string, entryID int64) (*domain.AuditEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	// ids are dense and start at 1
	if entryID < 1 || entryID > int64(len(r.entries)) {
		return nil, apperrors.ErrNotFound
	}
	entry := r.entries[entryID-1]
	if entry.Owner != owner {
		return nil, apperrors.ErrNotFound
	}
	return &entry, nil
}

// claimsToken mirrors the partial unique index on audit_entries.integrity_token.
func claimsToken(e domain.AuditEntry) bool {
	return e.IntegrityToken != "" && e.Status != domain.StatusFailed
}

// match must be called with r.mu held.
func (r *AuditRepository) match(owner string, filter domain.AuditFilter) []domain.AuditEntry {
	term := strings.ToLower(filter.SearchTerm)

	var out []domain.AuditEntry
	for _, e := range r.entries {
		if e.Owner != owner {
			continue
		}
		if filter.Category != nil && e.Category != *filter.Category {
			continue
		}
		if filter.Status != nil && e.Status != *filter.Status {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(e.Title), term) &&
			!strings.Contains(strings.ToLower(e.Description), term) &&
			!strings.Contains(strings.ToLower(e.IntegrityToken), term) {
			continue
		}
		out = append(out, e)
	}
	return out
}
