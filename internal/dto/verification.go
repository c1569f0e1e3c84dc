package dto

import (
	"time"

	"github.com/SscSPs/mma_audit/internal/core/domain"
	"github.com/shopspring/decimal"
)

// VerifyTokenRequest carries the integrity token presented by the user.
type VerifyTokenRequest struct {
	Token string `json:"token" binding:"required,max=255"`
}

// LedgerRecordResponse describes the record a token matched.
type LedgerRecordResponse struct {
	RecordID           string          `json:"recordID"`
	RecordType         string          `json:"recordType"`
	Description        string          `json:"description"`
	Amount             decimal.Decimal `json:"amount"`
	CurrencyCode       string          `json:"currencyCode"`
	RecordDate         time.Time       `json:"recordDate"`
	VerificationStatus string          `json:"verificationStatus"`
	VerifiedAt         *time.Time      `json:"verifiedAt,omitempty"`
}

// VerificationResponse defines the result of a verification attempt.
type VerificationResponse struct {
	Matched               bool                  `json:"matched"`
	Outcome               string                `json:"outcome"`
	DerivedBlockReference string                `json:"derivedBlockReference,omitempty"`
	Audited               bool                  `json:"audited"`
	Record                *LedgerRecordResponse `json:"record,omitempty"`
}

// ToVerificationResponse converts a domain.VerificationResult to VerificationResponse DTO
func ToVerificationResponse(result domain.VerificationResult) VerificationResponse {
	res := VerificationResponse{
		Matched:               result.Matched,
		Outcome:               string(result.Outcome),
		DerivedBlockReference: result.DerivedBlockReference,
		Audited:               result.Audited,
	}
	if r := result.Record; r != nil {
		res.Record = &LedgerRecordResponse{
			RecordID:           r.RecordID,
			RecordType:         string(r.RecordType),
			Description:        r.Description,
			Amount:             r.Amount,
			CurrencyCode:       r.CurrencyCode,
			RecordDate:         r.RecordDate,
			VerificationStatus: string(r.VerificationStatus),
			VerifiedAt:         r.VerifiedAt,
		}
	}
	return res
}
