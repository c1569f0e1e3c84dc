package models

import (
	"database/sql"
	"time"
)

// AuditEntry is the persisted shape of an activity ledger row.
type AuditEntry struct {
	EntryID        int64          `db:"entry_id"`
	OwnerID        sql.NullString `db:"owner_id"`
	Title          string         `db:"title"`
	Description    string         `db:"description"`
	Category       string         `db:"category"`
	Status         string         `db:"status"`
	CreatedAt      time.Time      `db:"created_at"`
	SourceAddress  sql.NullString `db:"source_address"`
	DeviceInfo     sql.NullString `db:"device_info"`
	IntegrityToken sql.NullString `db:"integrity_token"`
}

// TableName returns the backing table name.
func (AuditEntry) TableName() string {
	return "audit_entries"
}
