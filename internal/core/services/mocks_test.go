package services_test

import (
	"context"

	"github.com/SscSPs/mma_audit/internal/core/domain"
	"github.com/stretchr/testify/mock"
)

// --- Mock AuditRepository ---
type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) SaveAuditEntry(ctx context.Context, entry domain.AuditEntry) (*domain.AuditEntry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuditEntry), args.Error(1)
}

func (m *MockAuditRepository) ListAuditEntries(ctx context.Context, owner string, filter domain.AuditFilter, limit int, offset int) ([]domain.AuditEntry, error) {
	args := m.Called(ctx, owner, filter, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditEntry), args.Error(1)
}

func (m *MockAuditRepository) CountAuditEntries(ctx context.Context, owner string, filter domain.AuditFilter) (int, error) {
	args := m.Called(ctx, owner, filter)
	return args.Int(0), args.Error(1)
}

func (m *MockAuditRepository) FindAuditEntryByID(ctx context.Context, owner string, entryID int64) (*domain.AuditEntry, error) {
	args := m.Called(ctx, owner, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AuditEntry), args.Error(1)
}

// --- Mock LedgerLookup ---
type MockLedgerLookup struct {
	mock.Mock
}

func (m *MockLedgerLookup) FindByToken(ctx context.Context, owner string, token string) (*domain.LedgerRecord, error) {
	args := m.Called(ctx, owner, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerRecord), args.Error(1)
}

func (m *MockLedgerLookup) MarkVerified(ctx context.Context, record domain.LedgerRecord, token string) error {
	args := m.Called(ctx, record, token)
	return args.Error(0)
}

// --- Mock AuditWriterSvc ---
type MockAuditWriter struct {
	mock.Mock
}

func (m *MockAuditWriter) Append(ctx context.Context, entry domain.AuditEntry) bool {
	args := m.Called(ctx, entry)
	return args.Bool(0)
}

// --- Mock AuditReaderSvc ---
type MockAuditReader struct {
	mock.Mock
}

func (m *MockAuditReader) Query(ctx context.Context, owner string, page int, pageSize int, filter domain.AuditFilter) ([]domain.AuditEntry, int) {
	args := m.Called(ctx, owner, page, pageSize, filter)
	return args.Get(0).([]domain.AuditEntry), args.Int(1)
}

func (m *MockAuditReader) Get(ctx context.Context, owner string, entryID int64) (*domain.AuditEntry, bool) {
	args := m.Called(ctx, owner, entryID)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*domain.AuditEntry), args.Bool(1)
}
