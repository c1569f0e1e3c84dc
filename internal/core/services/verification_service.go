package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/mma_audit/internal/apperrors"
	"github.com/SscSPs/mma_audit/internal/core/domain"
	portsrepo "github.com/SscSPs/mma_audit/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/mma_audit/internal/core/ports/services"
	"github.com/SscSPs/mma_audit/internal/utils/integrity"
)

const (
	verificationSuccessTitle = "Hash Verification Successful"
	verificationFailedTitle  = "Hash Verification Failed"
)

// verificationService checks integrity tokens against the ledger and records each outcome.
//
// The ledger update and the audit append are separate statements. A crash between
// them leaves a verified record without a matching audit entry, and two concurrent
// attempts on one token may both report success; the token's unique index is the
// only mutual exclusion.
type verificationService struct {
	BaseService
	ledger portsrepo.LedgerLookup
	audit  portssvc.AuditWriterSvc
	now    func() time.Time
}

// VerificationOption is a functional option for configuring the verification service
type VerificationOption func(*verificationService)

// WithVerificationClock overrides the clock used to stamp verified records.
func WithVerificationClock(now func() time.Time) VerificationOption {
	return func(s *verificationService) {
		s.now = now
	}
}

// NewVerificationService creates a verification service over the ledger lookup and audit writer.
func NewVerificationService(ledger portsrepo.LedgerLookup, audit portssvc.AuditWriterSvc, options ...VerificationOption) portssvc.VerificationSvc {
	svc := &verificationService{
		ledger: ledger,
		audit:  audit,
		now:    time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.VerificationSvc = (*verificationService)(nil)

func (s *verificationService) Verify(ctx context.Context, owner string, token string) domain.VerificationResult {
	token = strings.TrimSpace(token)
	if token == "" || owner == "" {
		s.LogDebug(ctx, "Verification rejected: empty token or owner")
		return domain.VerificationResult{Outcome: domain.OutcomeInvalidToken}
	}

	record, err := s.ledger.FindByToken(ctx, owner, token)
	if err != nil || record == nil || record.Owner != owner {
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Ledger lookup failed during verification", slog.String("owner", owner))
			audited := s.audit.Append(ctx, failedVerificationEntry(owner, token,
				"Ledger lookup failed; the integrity token could not be checked"))
			return domain.VerificationResult{Outcome: domain.OutcomeLookupFailed, Audited: audited}
		}
		s.LogInfo(ctx, "Integrity token not found", slog.String("owner", owner))
		audited := s.audit.Append(ctx, failedVerificationEntry(owner, token,
			"No ledger record matches the presented integrity token"))
		return domain.VerificationResult{Outcome: domain.OutcomeNotFound, Audited: audited}
	}

	reference := integrity.BlockReference(token)

	verifiedAt := s.now().UTC()
	updated := *record
	updated.VerificationStatus = domain.VerificationVerified
	updated.VerifiedAt = &verifiedAt

	if err := s.ledger.MarkVerified(ctx, updated, token); err != nil {
		s.LogError(ctx, err, "Failed to mark ledger record verified",
			slog.String("owner", owner),
			slog.String("record_id", record.RecordID))
		audited := s.audit.Append(ctx, failedVerificationEntry(owner, token,
			fmt.Sprintf("Matched %s but its verified status could not be saved", describeRecord(*record))))
		return domain.VerificationResult{
			Matched:               true,
			Record:                record,
			DerivedBlockReference: reference,
			Outcome:               domain.OutcomeNotPersisted,
			Audited:               audited,
		}
	}

	audited := s.audit.Append(ctx, domain.AuditEntry{
		Owner:          owner,
		Title:          verificationSuccessTitle,
		Description:    fmt.Sprintf("Verified %s at block %s", describeRecord(updated), reference),
		Category:       domain.CategoryVerification,
		Status:         domain.StatusSuccess,
		IntegrityToken: token,
	})

	s.LogInfo(ctx, "Integrity token verified",
		slog.String("record_id", updated.RecordID),
		slog.Bool("audited", audited))
	return domain.VerificationResult{
		Matched:               true,
		Record:                &updated,
		DerivedBlockReference: reference,
		Outcome:               domain.OutcomeVerified,
		Audited:               audited,
	}
}

func failedVerificationEntry(owner, token, description string) domain.AuditEntry {
	return domain.AuditEntry{
		Owner:          owner,
		Title:          verificationFailedTitle,
		Description:    description,
		Category:       domain.CategoryVerification,
		Status:         domain.StatusFailed,
		IntegrityToken: token,
	}
}

// describeRecord renders e.g. `invoice "Consulting May" (1200.00 EUR, 2024-05-31)`.
func describeRecord(r domain.LedgerRecord) string {
	kind := string(r.RecordType)
	if kind == "" {
		kind = "record"
	}
	return fmt.Sprintf("%s %q (%s %s, %s)",
		kind, r.Description, r.Amount.StringFixed(2), r.CurrencyCode, r.RecordDate.Format("2006-01-02"))
}
