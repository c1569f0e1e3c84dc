package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/mma_audit/internal/apperrors"
	"github.com/SscSPs/mma_audit/internal/core/domain"
	portsrepo "github.com/SscSPs/mma_audit/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/mma_audit/internal/core/ports/services"
	"github.com/SscSPs/mma_audit/internal/middleware"
	"github.com/SscSPs/mma_audit/internal/utils/pagination"
)

// auditStore implements the append-only activity ledger on top of an AuditRepositoryFacade.
type auditStore struct {
	BaseService
	repo            portsrepo.AuditRepositoryFacade
	now             func() time.Time
	defaultPageSize int
	maxPageSize     int
}

// AuditStoreOption is a functional option for configuring the audit store
type AuditStoreOption func(*auditStore)

// WithAuditClock overrides the clock used to timestamp entries.
func WithAuditClock(now func() time.Time) AuditStoreOption {
	return func(s *auditStore) {
		s.now = now
	}
}

// WithAuditPageLimits sets the default and maximum page sizes.
func WithAuditPageLimits(defaultSize, maxSize int) AuditStoreOption {
	return func(s *auditStore) {
		s.defaultPageSize = defaultSize
		s.maxPageSize = maxSize
	}
}

// NewAuditStore creates a new audit store with the provided options
func NewAuditStore(repo portsrepo.AuditRepositoryFacade, options ...AuditStoreOption) portssvc.AuditStoreSvc {
	svc := &auditStore{
		repo:            repo,
		now:             time.Now,
		defaultPageSize: pagination.DefaultPageSize,
		maxPageSize:     pagination.MaxPageSize,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure auditStore implements the AuditStoreSvc interface
var _ portssvc.AuditStoreSvc = (*auditStore)(nil)

func (s *auditStore) Append(ctx context.Context, entry domain.AuditEntry) bool {
	entry.Title = strings.TrimSpace(entry.Title)
	if entry.Title == "" {
		s.LogWarn(ctx, "Rejected audit entry without title",
			slog.String("owner", entry.Owner),
			slog.String("category", string(entry.Category)))
		return false
	}

	entry.EntryID = 0
	entry.CreatedAt = s.now().UTC()
	if entry.Status == "" {
		entry.Status = domain.StatusSuccess
	}
	if md, ok := middleware.GetRequestMetadataFromCtx(ctx); ok {
		if entry.SourceAddress == "" {
			entry.SourceAddress = md.SourceAddress
		}
		if entry.DeviceInfo == "" {
			entry.DeviceInfo = md.DeviceInfo
		}
	}

	saved, err := s.repo.SaveAuditEntry(ctx, entry)
	if err != nil {
		s.LogError(ctx, err, "Failed to append audit entry",
			slog.String("owner", entry.Owner),
			slog.String("category", string(entry.Category)),
			slog.String("title", entry.Title),
			slog.Bool("duplicate_token", errors.Is(err, apperrors.ErrDuplicate)))
		return false
	}

	s.LogDebug(ctx, "Audit entry appended",
		slog.Int64("entry_id", saved.EntryID),
		slog.String("category", string(saved.Category)),
		slog.String("status", string(saved.Status)))
	return true
}

func (s *auditStore) Query(ctx context.Context, owner string, page int, pageSize int, filter domain.AuditFilter) ([]domain.AuditEntry, int) {
	if owner == "" {
		s.LogDebug(ctx, "Audit query without owner returns no entries")
		return []domain.AuditEntry{}, 0
	}

	p := pagination.NewPage(page, pageSize, s.defaultPageSize, s.maxPageSize)
	filter.SearchTerm = strings.TrimSpace(filter.SearchTerm)

	total, err := s.repo.CountAuditEntries(ctx, owner, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to count audit entries", slog.String("owner", owner))
		return []domain.AuditEntry{}, 0
	}
	if total == 0 {
		return []domain.AuditEntry{}, 0
	}

	entries, err := s.repo.ListAuditEntries(ctx, owner, filter, p.Size, p.Offset())
	if err != nil {
		s.LogError(ctx, err, "Failed to list audit entries",
			slog.String("owner", owner),
			slog.Int("page", p.Number),
			slog.Int("page_size", p.Size))
		return []domain.AuditEntry{}, 0
	}
	if entries == nil {
		entries = []domain.AuditEntry{}
	}
	return entries, total
}

func (s *auditStore) Get(ctx context.Context, owner string, entryID int64) (*domain.AuditEntry, bool) {
	if owner == "" || entryID <= 0 {
		return nil, false
	}

	entry, err := s.repo.FindAuditEntryByID(ctx, owner, entryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find audit entry",
				slog.String("owner", owner),
				slog.Int64("entry_id", entryID))
		}
		return nil, false
	}
	return entry, true
}
