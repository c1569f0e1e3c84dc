package services

import (
	"context"

	"github.com/SscSPs/mma_audit/internal/core/domain"
)

// ActivityReporterSvc provides read-only activity views for presentation layers.
type ActivityReporterSvc interface {
	// List returns a page of the owner's activity with relative timestamps.
	List(ctx context.Context, owner string, filter domain.AuditFilter, page int, pageSize int) domain.ActivityPage

	// Detail returns a single activity item.
	Detail(ctx context.Context, owner string, entryID int64) (*domain.ActivityItem, bool)
}
