package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/mma_audit/internal/apperrors"
	"github.com/SscSPs/mma_audit/internal/core/domain"
	portsrepo "github.com/SscSPs/mma_audit/internal/core/ports/repositories"
	"github.com/SscSPs/mma_audit/internal/models"
	"github.com/SscSPs/mma_audit/internal/utils/mapping"
)

const auditEntryColumns = `entry_id, owner_id, title, description, category, status, created_at, source_address, device_info, integrity_token`

// auditRepository implements portsrepo.AuditRepositoryFacade
type auditRepository struct {
	BaseRepository
}

// newAuditRepository creates a new repository for the activity ledger.
func newAuditRepository(db DBTX) portsrepo.AuditRepositoryFacade {
	return &auditRepository{
		BaseRepository: BaseRepository{DB: db},
	}
}

var _ portsrepo.AuditRepositoryFacade = (*auditRepository)(nil)

// SaveAuditEntry inserts a new entry. The id is assigned by the database.
func (r *auditRepository) SaveAuditEntry(ctx context.Context, entry domain.AuditEntry) (*domain.AuditEntry, error) {
	m := mapping.ToModelAuditEntry(entry)

	query := `
		INSERT INTO audit_entries (owner_id, title, description, category, status, created_at, source_address, device_info, integrity_token)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING entry_id;
	`
	err := r.DB.QueryRowContext(ctx, query,
		m.OwnerID,
		m.Title,
		m.Description,
		m.Category,
		m.Status,
		m.CreatedAt,
		m.SourceAddress,
		m.DeviceInfo,
		m.IntegrityToken,
	).Scan(&m.EntryID)
	if err != nil {
		return nil, fmt.Errorf("failed to insert audit entry %q: %w", m.Title, r.mapError(err))
	}

	saved := mapping.ToDomainAuditEntry(m)
	return &saved, nil
}

// buildAuditFilter renders the WHERE clause shared by the list and count
// queries. Placeholders start at $1.
func buildAuditFilter(owner string, filter domain.AuditFilter) (string, []any) {
	conds := []string{"owner_id = $1"}
	args := []any{owner}

	if filter.SearchTerm != "" {
		args = append(args, "%"+escapeLike(filter.SearchTerm)+"%")
		n := len(args)
		conds = append(conds, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d OR integrity_token ILIKE $%d)", n, n, n))
	}
	if filter.Category != nil {
		args = append(args, string(*filter.Category))
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, string(*filter.Status))
		conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
	}

	return "WHERE " + strings.Join(conds, " AND "), args
}

// ListAuditEntries returns one page of the owner's entries, newest first.
func (r *auditRepository) ListAuditEntries(ctx context.Context, owner string, filter domain.AuditFilter, limit int, offset int) ([]domain.AuditEntry, error) {
	if offset < 0 {
		offset = 0
	}
	where, args := buildAuditFilter(owner, filter)
	args = append(args, limit, offset)

	query := fmt.Sprintf(`
		SELECT %s
		FROM audit_entries
		%s
		ORDER BY created_at DESC, entry_id DESC
		LIMIT $%d OFFSET $%d;
	`, auditEntryColumns, where, len(args)-1, len(args))

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query audit entries for owner %s: %w", owner, err)
	}
	defer rows.Close()

	var entries []models.AuditEntry
	for rows.Next() {
		var m models.AuditEntry
		if err := rows.Scan(
			&m.EntryID,
			&m.OwnerID,
			&m.Title,
			&m.Description,
			&m.Category,
			&m.Status,
			&m.CreatedAt,
			&m.SourceAddress,
			&m.DeviceInfo,
			&m.IntegrityToken,
		); err != nil {
			return nil, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating audit entries: %w", err)
	}

	return mapping.ToDomainAuditEntrySlice(entries), nil
}

// CountAuditEntries counts the owner's entries matching filter.
func (r *auditRepository) CountAuditEntries(ctx context.Context, owner string, filter domain.AuditFilter) (int, error) {
	where, args := buildAuditFilter(owner, filter)
	query := fmt.Sprintf(`SELECT COUNT(*) FROM audit_entries %s;`, where)

	var total int
	if err := r.DB.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to count audit entries for owner %s: %w", owner, err)
	}
	return total, nil
}

// FindAuditEntryByID retrieves a single entry owned by owner.
func (r *auditRepository) FindAuditEntryByID(ctx context.Context, owner string, entryID int64) (*domain.AuditEntry, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM audit_entries
		WHERE owner_id = $1 AND entry_id = $2;
	`, auditEntryColumns)

	var m models.AuditEntry
	err := r.DB.QueryRowContext(ctx, query, owner, entryID).Scan(
		&m.EntryID,
		&m.OwnerID,
		&m.Title,
		&m.Description,
		&m.Category,
		&m.Status,
		&m.CreatedAt,
		&m.SourceAddress,
		&m.DeviceInfo,
		&m.IntegrityToken,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find audit entry %d: %w", entryID, err)
	}

	entry := mapping.ToDomainAuditEntry(m)
	return &entry, nil
}
