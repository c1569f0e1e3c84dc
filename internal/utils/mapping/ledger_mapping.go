package mapping

import (
	"github.com/SscSPs/mma_audit/internal/core/domain"
	"github.com/SscSPs/mma_audit/internal/models"
)

// ToModelLedgerRecord converts a domain LedgerRecord to a model LedgerRecord
func ToModelLedgerRecord(d domain.LedgerRecord) models.LedgerRecord {
	return models.LedgerRecord{
		RecordID:           d.RecordID,
		OwnerID:            d.Owner,
		RecordType:         string(d.RecordType),
		Description:        d.Description,
		Amount:             d.Amount,
		CurrencyCode:       d.CurrencyCode,
		RecordDate:         d.RecordDate,
		IntegrityToken:     toNullString(d.IntegrityToken),
		VerificationStatus: string(d.VerificationStatus),
		VerifiedAt:         toNullTime(d.VerifiedAt),
		AuditFields:        ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainLedgerRecord converts a model LedgerRecord to a domain LedgerRecord
func ToDomainLedgerRecord(m models.LedgerRecord) domain.LedgerRecord {
	return domain.LedgerRecord{
		RecordID:           m.RecordID,
		Owner:              m.OwnerID,
		RecordType:         domain.LedgerRecordType(m.RecordType),
		Description:        m.Description,
		Amount:             m.Amount,
		CurrencyCode:       m.CurrencyCode,
		RecordDate:         m.RecordDate,
		IntegrityToken:     fromNullString(m.IntegrityToken),
		VerificationStatus: domain.VerificationStatus(m.VerificationStatus),
		VerifiedAt:         fromNullTime(m.VerifiedAt),
		AuditFields:        ToDomainAuditFields(m.AuditFields),
	}
}
