package domain

import (
	"strings"
	"time"
)

// AuditCategory classifies an audit entry. Stored as free text so rows written
// with legacy or unclassified values remain readable.
type AuditCategory string

const (
	CategoryTransactions   AuditCategory = "Transactions"
	CategoryUserActions    AuditCategory = "UserActions"
	CategorySystemEvents   AuditCategory = "SystemEvents"
	CategoryInvoices       AuditCategory = "Invoices"
	CategoryClients        AuditCategory = "Clients"
	CategoryVerification   AuditCategory = "Verification"
	CategorySecurity       AuditCategory = "Security"
	CategorySettings       AuditCategory = "Settings"
	CategoryAccountActions AuditCategory = "AccountActions"
)

// KnownCategories lists the categories collaborators are expected to write.
var KnownCategories = []AuditCategory{
	CategoryTransactions,
	CategoryUserActions,
	CategorySystemEvents,
	CategoryInvoices,
	CategoryClients,
	CategoryVerification,
	CategorySecurity,
	CategorySettings,
	CategoryAccountActions,
}

// IsKnown reports whether c is one of KnownCategories.
func (c AuditCategory) IsKnown() bool {
	for _, known := range KnownCategories {
		if c == known {
			return true
		}
	}
	return false
}

// AuditStatus is the outcome recorded on an audit entry.
type AuditStatus string

const (
	StatusSuccess  AuditStatus = "Success"
	StatusFailed   AuditStatus = "Failed"
	StatusPending  AuditStatus = "Pending"
	StatusVerified AuditStatus = "Verified"
)

// KnownStatuses lists every valid AuditStatus.
var KnownStatuses = []AuditStatus{StatusSuccess, StatusFailed, StatusPending, StatusVerified}

// IsKnown reports whether s is one of KnownStatuses.
func (s AuditStatus) IsKnown() bool {
	for _, known := range KnownStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// AuditEntry is a single immutable row of the activity ledger.
// An empty Owner marks a system-originated entry.
type AuditEntry struct {
	EntryID        int64         `json:"entryID"`
	Owner          string        `json:"owner,omitempty"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Category       AuditCategory `json:"category"`
	Status         AuditStatus   `json:"status"`
	CreatedAt      time.Time     `json:"createdAt"`
	SourceAddress  string        `json:"sourceAddress,omitempty"`
	DeviceInfo     string        `json:"deviceInfo,omitempty"`
	IntegrityToken string        `json:"integrityToken,omitempty"`
}

// AuditFilter narrows an owner's audit entries. A nil Category or Status means
// no filtering on that field.
type AuditFilter struct {
	SearchTerm string
	Category   *AuditCategory
	Status     *AuditStatus
}

// filterSentinels are the presentation values that mean "do not filter".
var filterSentinels = map[string]struct{}{
	"":               {},
	"all":            {},
	"all activities": {},
	"all status":     {},
	"all statuses":   {},
}

func isFilterSentinel(raw string) bool {
	_, ok := filterSentinels[strings.ToLower(strings.TrimSpace(raw))]
	return ok
}

// ParseCategoryFilter converts a presentation-layer category value into a filter.
// Sentinel values such as "All Activities" yield nil.
func ParseCategoryFilter(raw string) *AuditCategory {
	if isFilterSentinel(raw) {
		return nil
	}
	c := AuditCategory(strings.TrimSpace(raw))
	return &c
}

// ParseStatusFilter converts a presentation-layer status value into a filter.
// Sentinel values such as "All Status" yield nil.
func ParseStatusFilter(raw string) *AuditStatus {
	if isFilterSentinel(raw) {
		return nil
	}
	s := AuditStatus(strings.TrimSpace(raw))
	return &s
}
