package services_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/mma_audit/internal/adapters/database/memory"
	"github.com/SscSPs/mma_audit/internal/core/domain"
	portssvc "github.com/SscSPs/mma_audit/internal/core/ports/services"
	"github.com/SscSPs/mma_audit/internal/core/services"
	"github.com/SscSPs/mma_audit/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// steppingClock advances one second on every call.
type steppingClock struct {
	t time.Time
}

func (c *steppingClock) Now() time.Time {
	c.t = c.t.Add(time.Second)
	return c.t
}

type harness struct {
	store    *memory.Store
	audit    portssvc.AuditStoreSvc
	verifier portssvc.VerificationSvc
	reporter portssvc.ActivityReporterSvc
}

func newHarness() *harness {
	clock := &steppingClock{t: fixedNow}
	store := memory.NewStore()
	repos := store.RepositoryProvider()
	audit := services.NewAuditStore(repos.AuditRepo, services.WithAuditClock(clock.Now))
	return &harness{
		store:    store,
		audit:    audit,
		verifier: services.NewVerificationService(repos.LedgerLookup, audit, services.WithVerificationClock(clock.Now)),
		reporter: services.NewActivityReporter(audit, services.WithReporterClock(clock.Now)),
	}
}

func (h *harness) total(t *testing.T, owner string) int {
	t.Helper()
	_, total := h.audit.Query(context.Background(), owner, 1, 1, domain.AuditFilter{})
	return total
}

func TestProperty_AppendThenQuery(t *testing.T) {
	h := newHarness()
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		before := h.total(t, "u1")
		entry := domain.AuditEntry{Owner: "u1", Title: fmt.Sprintf("Transaction %d", i), Category: domain.CategoryTransactions}
		require.True(t, h.audit.Append(ctx, entry))

		entries, total := h.audit.Query(ctx, "u1", 1, 1, domain.AuditFilter{})
		assert.Equal(t, before+1, total)
		require.Len(t, entries, 1)
		assert.Equal(t, entry.Title, entries[0].Title, "newest entry is first")
	}
}

func TestProperty_PaginationConsistency(t *testing.T) {
	h := newHarness()
	ctx := context.Background()

	categories := []domain.AuditCategory{domain.CategoryInvoices, domain.CategoryClients, domain.CategorySettings}
	statuses := []domain.AuditStatus{domain.StatusSuccess, domain.StatusFailed, domain.StatusPending}
	for i := 0; i < 37; i++ {
		require.True(t, h.audit.Append(ctx, domain.AuditEntry{
			Owner:       "u1",
			Title:       fmt.Sprintf("Event %d", i),
			Description: []string{"alpha", "beta", "gamma"}[i%3],
			Category:    categories[i%len(categories)],
			Status:      statuses[(i/2)%len(statuses)],
		}))
	}

	invoices := domain.CategoryInvoices
	failed := domain.StatusFailed
	filters := []domain.AuditFilter{
		{},
		{SearchTerm: "alpha"},
		{Category: &invoices},
		{Status: &failed},
		{SearchTerm: "event 1", Category: &invoices, Status: &failed},
	}

	for _, filter := range filters {
		for _, size := range []int{1, 4, 10, 50} {
			seen := make(map[int64]bool)
			sum := 0
			_, total := h.audit.Query(ctx, "u1", 1, size, filter)
			pages := (total + size - 1) / size
			for page := 1; page <= pages+1; page++ {
				entries, pageTotal := h.audit.Query(ctx, "u1", page, size, filter)
				assert.Equal(t, total, pageTotal)
				for _, e := range entries {
					assert.False(t, seen[e.EntryID], "entry %d appears on two pages", e.EntryID)
					seen[e.EntryID] = true
				}
				sum += len(entries)
			}
			assert.Equal(t, total, sum, "filter %+v size %d", filter, size)
		}
	}
}

func TestProperty_Ordering(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	for i := 0; i < 12; i++ {
		require.True(t, h.audit.Append(ctx, domain.AuditEntry{Owner: "u1", Title: fmt.Sprintf("e%d", i)}))
	}

	entries, _ := h.audit.Query(ctx, "u1", 1, 100, domain.AuditFilter{})
	require.Len(t, entries, 12)
	for i := 1; i < len(entries); i++ {
		assert.True(t, entries[i-1].CreatedAt.After(entries[i].CreatedAt))
	}
}

func TestProperty_OwnerIsolation(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	_, err := h.store.Ledger.CreateRecord(ctx, domain.LedgerRecord{Owner: "owner-b", IntegrityToken: "TB", Amount: decimal.NewFromInt(10)})
	require.NoError(t, err)

	result := h.verifier.Verify(ctx, "owner-a", "TB")

	assert.False(t, result.Matched)
	assert.Nil(t, result.Record)
	assert.Equal(t, domain.OutcomeNotFound, result.Outcome)
	assert.Zero(t, h.total(t, "owner-b"))

	rec, err := h.store.Ledger.FindByToken(ctx, "owner-b", "TB")
	require.NoError(t, err)
	assert.Equal(t, domain.VerificationPending, rec.VerificationStatus)
}

func TestProperty_ForeignTokenReadsLikeUnknownToken(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	_, err := h.store.Ledger.CreateRecord(ctx, domain.LedgerRecord{Owner: "owner-b", IntegrityToken: "TB", Amount: decimal.NewFromInt(10)})
	require.NoError(t, err)
	require.True(t, h.verifier.Verify(ctx, "owner-b", "TB").Matched)

	foreign := h.verifier.Verify(ctx, "owner-a", "TB")
	unknown := h.verifier.Verify(ctx, "owner-a", "never-issued")

	assert.Equal(t, unknown, foreign)
	assert.True(t, foreign.Audited)

	foreignBody, err := json.Marshal(dto.ToVerificationResponse(foreign))
	require.NoError(t, err)
	unknownBody, err := json.Marshal(dto.ToVerificationResponse(unknown))
	require.NoError(t, err)
	assert.JSONEq(t, string(unknownBody), string(foreignBody))
}

func TestProperty_ForeignAttemptDoesNotBlockOwnerAudit(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	_, err := h.store.Ledger.CreateRecord(ctx, domain.LedgerRecord{Owner: "owner-b", IntegrityToken: "TB", Amount: decimal.NewFromInt(10)})
	require.NoError(t, err)

	attempt := h.verifier.Verify(ctx, "owner-a", "TB")
	require.Equal(t, domain.OutcomeNotFound, attempt.Outcome)

	result := h.verifier.Verify(ctx, "owner-b", "TB")
	assert.Equal(t, domain.OutcomeVerified, result.Outcome)
	assert.True(t, result.Audited)

	entries, total := h.audit.Query(ctx, "owner-b", 1, 10, domain.AuditFilter{})
	require.Equal(t, 1, total)
	assert.Equal(t, domain.CategoryVerification, entries[0].Category)
	assert.Equal(t, domain.StatusSuccess, entries[0].Status)
	assert.Equal(t, "TB", entries[0].IntegrityToken)

	// the attempt stays in owner-a's own trace only
	entries, total = h.audit.Query(ctx, "owner-a", 1, 10, domain.AuditFilter{})
	require.Equal(t, 1, total)
	assert.Equal(t, domain.StatusFailed, entries[0].Status)
}

func TestProperty_RepeatedFailuresAreAudited(t *testing.T) {
	h := newHarness()
	ctx := context.Background()

	first := h.verifier.Verify(ctx, "u1", "T9")
	second := h.verifier.Verify(ctx, "u1", "T9")

	assert.True(t, first.Audited)
	assert.True(t, second.Audited)
	assert.Equal(t, 2, h.total(t, "u1"))
}

func TestProperty_EmptyTokenNoOp(t *testing.T) {
	h := newHarness()
	ctx := context.Background()

	result := h.verifier.Verify(ctx, "u1", "")

	assert.False(t, result.Matched)
	assert.Zero(t, h.total(t, "u1"))
}

func TestProperty_VerificationScenario(t *testing.T) {
	h := newHarness()
	ctx := context.Background()
	_, err := h.store.Ledger.CreateRecord(ctx, domain.LedgerRecord{
		RecordID:       "rec-1",
		Owner:          "U1",
		RecordType:     domain.LedgerRecordTransaction,
		Description:    "Office chairs",
		Amount:         decimal.RequireFromString("349.99"),
		CurrencyCode:   "USD",
		RecordDate:     fixedNow,
		IntegrityToken: "T1",
	})
	require.NoError(t, err)

	result := h.verifier.Verify(ctx, "U1", "T1")
	require.True(t, result.Matched)
	assert.True(t, result.Audited)
	assert.NotEmpty(t, result.DerivedBlockReference)

	stored, err := h.store.Ledger.FindRecordByID(ctx, "rec-1")
	require.NoError(t, err)
	assert.Equal(t, domain.VerificationVerified, stored.VerificationStatus)

	entries, total := h.audit.Query(ctx, "U1", 1, 10, domain.AuditFilter{})
	require.Equal(t, 1, total)
	assert.Equal(t, domain.CategoryVerification, entries[0].Category)
	assert.Equal(t, domain.StatusSuccess, entries[0].Status)
	assert.Equal(t, "T1", entries[0].IntegrityToken)

	result = h.verifier.Verify(ctx, "U1", "T2")
	assert.False(t, result.Matched)

	entries, total = h.audit.Query(ctx, "U1", 1, 10, domain.AuditFilter{})
	require.Equal(t, 2, total)
	assert.Equal(t, domain.StatusFailed, entries[0].Status)
	assert.Equal(t, "T2", entries[0].IntegrityToken)

	page := h.reporter.List(ctx, "U1", domain.AuditFilter{}, 1, 10)
	assert.Equal(t, 2, page.Total)
	assert.Equal(t, "just now", page.Items[0].RelativeTime)
}

func TestProperty_TokenUniqueness(t *testing.T) {
	h := newHarness()
	ctx := context.Background()

	require.True(t, h.audit.Append(ctx, domain.AuditEntry{Owner: "u1", Title: "first", IntegrityToken: "dup"}))
	assert.False(t, h.audit.Append(ctx, domain.AuditEntry{Owner: "u2", Title: "second", IntegrityToken: "dup"}))
	assert.Equal(t, 1, h.total(t, "u1"))
	assert.Zero(t, h.total(t, "u2"))

	_, err := h.store.Ledger.CreateRecord(ctx, domain.LedgerRecord{Owner: "u1", IntegrityToken: "L1"})
	require.NoError(t, err)
	_, err = h.store.Ledger.CreateRecord(ctx, domain.LedgerRecord{Owner: "u1", IntegrityToken: "L1"})
	assert.Error(t, err)

	// a repeated verification still succeeds on the ledger, but its audit
	// entry collides with the first one
	first := h.verifier.Verify(ctx, "u1", "L1")
	second := h.verifier.Verify(ctx, "u1", "L1")
	assert.True(t, first.Matched)
	assert.True(t, first.Audited)
	assert.True(t, second.Matched)
	assert.False(t, second.Audited)
	assert.Equal(t, first.DerivedBlockReference, second.DerivedBlockReference)
}
