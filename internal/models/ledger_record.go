package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// LedgerRecord is the persisted shape of a token-bearing financial record.
type LedgerRecord struct {
	RecordID           string          `db:"record_id"`
	OwnerID            string          `db:"owner_id"`
	RecordType         string          `db:"record_type"`
	Description        string          `db:"description"`
	Amount             decimal.Decimal `db:"amount"`
	CurrencyCode       string          `db:"currency_code"`
	RecordDate         time.Time       `db:"record_date"`
	IntegrityToken     sql.NullString  `db:"integrity_token"`
	VerificationStatus string          `db:"verification_status"`
	VerifiedAt         sql.NullTime    `db:"verified_at"`
	AuditFields
}

// TableName returns the backing table name.
func (LedgerRecord) TableName() string {
	return "ledger_records"
}
