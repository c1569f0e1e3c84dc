package mapping

import (
	"github.com/SscSPs/mma_audit/internal/core/domain"
	"github.com/SscSPs/mma_audit/internal/models"
)

// ToModelAuditEntry converts a domain AuditEntry to a model AuditEntry.
// Empty optional strings are stored as NULL so the integrity token uniqueness
// constraint only applies to entries that carry a token.
func ToModelAuditEntry(d domain.AuditEntry) models.AuditEntry {
	return models.AuditEntry{
		EntryID:        d.EntryID,
		OwnerID:        toNullString(d.Owner),
		Title:          d.Title,
		Description:    d.Description,
		Category:       string(d.Category),
		Status:         string(d.Status),
		CreatedAt:      d.CreatedAt,
		SourceAddress:  toNullString(d.SourceAddress),
		DeviceInfo:     toNullString(d.DeviceInfo),
		IntegrityToken: toNullString(d.IntegrityToken),
	}
}

// ToDomainAuditEntry converts a model AuditEntry to a domain AuditEntry
func ToDomainAuditEntry(m models.AuditEntry) domain.AuditEntry {
	return domain.AuditEntry{
		EntryID:        m.EntryID,
		Owner:          fromNullString(m.OwnerID),
		Title:          m.Title,
		Description:    m.Description,
		Category:       domain.AuditCategory(m.Category),
		Status:         domain.AuditStatus(m.Status),
		CreatedAt:      m.CreatedAt,
		SourceAddress:  fromNullString(m.SourceAddress),
		DeviceInfo:     fromNullString(m.DeviceInfo),
		IntegrityToken: fromNullString(m.IntegrityToken),
	}
}

// ToDomainAuditEntrySlice converts a slice of model AuditEntries to domain AuditEntries
func ToDomainAuditEntrySlice(ms []models.AuditEntry) []domain.AuditEntry {
	ds := make([]domain.AuditEntry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAuditEntry(m)
	}
	return ds
}
