package domain

// VerificationOutcome distinguishes the branches a verification attempt can take.
type VerificationOutcome string

const (
	OutcomeVerified     VerificationOutcome = "verified"
	OutcomeNotFound     VerificationOutcome = "not_found"
	OutcomeInvalidToken VerificationOutcome = "invalid_token"
	OutcomeLookupFailed VerificationOutcome = "lookup_failed"
	// OutcomeNotPersisted means the record matched but its status change was not stored.
	OutcomeNotPersisted VerificationOutcome = "not_persisted"
)

// VerificationResult is returned by a verification attempt. It is never persisted.
type VerificationResult struct {
	Matched               bool                `json:"matched"`
	Record                *LedgerRecord       `json:"record,omitempty"`
	DerivedBlockReference string              `json:"derivedBlockReference,omitempty"`
	Outcome               VerificationOutcome `json:"outcome"`
	// Audited reports whether the outcome was written to the audit log.
	Audited bool `json:"audited"`
}
