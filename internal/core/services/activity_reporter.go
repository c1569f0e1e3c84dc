package services

import (
	"context"
	"time"

	"github.com/SscSPs/mma_audit/internal/core/domain"
	portssvc "github.com/SscSPs/mma_audit/internal/core/ports/services"
	"github.com/SscSPs/mma_audit/internal/utils/pagination"
	"github.com/SscSPs/mma_audit/internal/utils/relativetime"
)

// activityReporter composes audit queries with relative-time rendering.
type activityReporter struct {
	BaseService
	audit           portssvc.AuditReaderSvc
	now             func() time.Time
	defaultPageSize int
	maxPageSize     int
}

// ActivityReporterOption is a functional option for configuring the activity reporter
type ActivityReporterOption func(*activityReporter)

// WithReporterClock overrides the clock relative times are measured against.
func WithReporterClock(now func() time.Time) ActivityReporterOption {
	return func(r *activityReporter) {
		r.now = now
	}
}

// WithReporterPageLimits must match the limits given to the audit store so
// the reported page size is the one actually applied.
func WithReporterPageLimits(defaultSize, maxSize int) ActivityReporterOption {
	return func(r *activityReporter) {
		r.defaultPageSize = defaultSize
		r.maxPageSize = maxSize
	}
}

// NewActivityReporter creates an activity reporter reading from audit.
func NewActivityReporter(audit portssvc.AuditReaderSvc, options ...ActivityReporterOption) portssvc.ActivityReporterSvc {
	r := &activityReporter{
		audit:           audit,
		now:             time.Now,
		defaultPageSize: pagination.DefaultPageSize,
		maxPageSize:     pagination.MaxPageSize,
	}
	for _, option := range options {
		option(r)
	}
	return r
}

var _ portssvc.ActivityReporterSvc = (*activityReporter)(nil)

func (r *activityReporter) List(ctx context.Context, owner string, filter domain.AuditFilter, page int, pageSize int) domain.ActivityPage {
	p := pagination.NewPage(page, pageSize, r.defaultPageSize, r.maxPageSize)
	entries, total := r.audit.Query(ctx, owner, p.Number, p.Size, filter)

	now := r.now().UTC()
	items := make([]domain.ActivityItem, len(entries))
	for i, entry := range entries {
		items[i] = domain.ActivityItem{
			Entry:        entry,
			RelativeTime: relativetime.Since(entry.CreatedAt, now),
		}
	}

	return domain.ActivityPage{
		Items:      items,
		Total:      total,
		Page:       p.Number,
		PageSize:   p.Size,
		TotalPages: pagination.TotalPages(total, p.Size),
	}
}

func (r *activityReporter) Detail(ctx context.Context, owner string, entryID int64) (*domain.ActivityItem, bool) {
	entry, ok := r.audit.Get(ctx, owner, entryID)
	if !ok {
		return nil, false
	}
	return &domain.ActivityItem{
		Entry:        *entry,
		RelativeTime: relativetime.Since(entry.CreatedAt, r.now().UTC()),
	}, true
}
