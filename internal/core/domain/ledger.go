package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// VerificationStatus tracks whether a ledger record's integrity token has been verified.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "Pending"
	VerificationVerified VerificationStatus = "Verified"
	VerificationFailed   VerificationStatus = "Failed"
)

// LedgerRecordType names the kind of financial record carrying a token.
type LedgerRecordType string

const (
	LedgerRecordTransaction LedgerRecordType = "transaction"
	LedgerRecordInvoice     LedgerRecordType = "invoice"
)

// LedgerRecord is a financial record owned by the bookkeeping CRUD layer.
// Only the fields needed to answer a verification request are modelled here.
type LedgerRecord struct {
	RecordID           string             `json:"recordID"`
	Owner              string             `json:"owner"`
	RecordType         LedgerRecordType   `json:"recordType"`
	Description        string             `json:"description"`
	Amount             decimal.Decimal    `json:"amount"`
	CurrencyCode       string             `json:"currencyCode"`
	RecordDate         time.Time          `json:"recordDate"`
	IntegrityToken     string             `json:"integrityToken,omitempty"`
	VerificationStatus VerificationStatus `json:"verificationStatus"`
	VerifiedAt         *time.Time         `json:"verifiedAt,omitempty"`
	AuditFields
}
