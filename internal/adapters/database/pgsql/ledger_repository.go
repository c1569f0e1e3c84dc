package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/mma_audit/internal/apperrors"
	"github.com/SscSPs/mma_audit/internal/core/domain"
	portsrepo "github.com/SscSPs/mma_audit/internal/core/ports/repositories"
	"github.com/SscSPs/mma_audit/internal/models"
	"github.com/SscSPs/mma_audit/internal/utils/mapping"
)

// ledgerRepository reads and updates the token-bearing records written by the bookkeeping CRUD layer.
type ledgerRepository struct {
	BaseRepository
	now func() time.Time
}

func newLedgerRepository(db DBTX) portsrepo.LedgerLookup {
	return &ledgerRepository{
		BaseRepository: BaseRepository{DB: db},
		now:            time.Now,
	}
}

var _ portsrepo.LedgerLookup = (*ledgerRepository)(nil)

// FindByToken looks the token up among the owner's records only.
func (r *ledgerRepository) FindByToken(ctx context.Context, owner string, token string) (*domain.LedgerRecord, error) {
	query := `
		SELECT record_id, owner_id, record_type, description, amount, currency_code, record_date,
			integrity_token, verification_status, verified_at,
			created_at, created_by, last_updated_at, last_updated_by
		FROM ledger_records
		WHERE owner_id = $1 AND integrity_token = $2;
	`
	var m models.LedgerRecord
	err := r.DB.QueryRowContext(ctx, query, owner, token).Scan(
		&m.RecordID,
		&m.OwnerID,
		&m.RecordType,
		&m.Description,
		&m.Amount,
		&m.CurrencyCode,
		&m.RecordDate,
		&m.IntegrityToken,
		&m.VerificationStatus,
		&m.VerifiedAt,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Another owner's record reads the same as no record.
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find ledger record by token: %w", err)
	}

	record := mapping.ToDomainLedgerRecord(m)
	return &record, nil
}

// MarkVerified moves the record to Verified. The first verification time is kept
// when a record is verified again.
func (r *ledgerRepository) MarkVerified(ctx context.Context, record domain.LedgerRecord, token string) error {
	now := r.now().UTC()
	verifiedAt := now
	if record.VerifiedAt != nil {
		verifiedAt = record.VerifiedAt.UTC()
	}

	query := `
		UPDATE ledger_records
		SET verification_status = $1,
			verified_at = COALESCE(verified_at, $2),
			last_updated_at = $3,
			last_updated_by = $4
		WHERE record_id = $5 AND owner_id = $6 AND integrity_token = $7;
	`
	res, err := r.DB.ExecContext(ctx, query,
		string(domain.VerificationVerified),
		verifiedAt,
		now,
		record.Owner,
		record.RecordID,
		record.Owner,
		token,
	)
	if err != nil {
		return fmt.Errorf("failed to mark ledger record %s verified: %w", record.RecordID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read rows affected for ledger record %s: %w", record.RecordID, err)
	}
	if affected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
