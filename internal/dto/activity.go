package dto

import (
	"time"

	"github.com/SscSPs/mma_audit/internal/core/domain"
)

// ListActivitiesParams defines the query parameters for listing activities.
type ListActivitiesParams struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"pageSize" binding:"omitempty,min=1"`
	Search   string `form:"search" binding:"omitempty,max=200"`
	Category string `form:"category"`
	Status   string `form:"status"`
}

// ToFilter converts the query parameters into a domain filter. Values such as
// "All Activities" or "all" disable the corresponding filter.
func (p ListActivitiesParams) ToFilter() domain.AuditFilter {
	return domain.AuditFilter{
		SearchTerm: p.Search,
		Category:   domain.ParseCategoryFilter(p.Category),
		Status:     domain.ParseStatusFilter(p.Status),
	}
}

// CreateActivityRequest is sent by bookkeeping flows to record an event.
// Integrity tokens are only attached by in-process collaborators, so a
// client cannot claim or probe another owner's token through this route.
type CreateActivityRequest struct {
	Title       string `json:"title" binding:"required,max=255"`
	Description string `json:"description" binding:"max=4000"`
	Category    string `json:"category" binding:"required,audit_category"`
	Status      string `json:"status" binding:"omitempty,audit_status"`
}

// ToAuditEntry converts the request into an entry owned by owner.
func (r CreateActivityRequest) ToAuditEntry(owner string) domain.AuditEntry {
	return domain.AuditEntry{
		Owner:       owner,
		Title:       r.Title,
		Description: r.Description,
		Category:    domain.AuditCategory(r.Category),
		Status:      domain.AuditStatus(r.Status),
	}
}

// CreateActivityResponse reports whether the activity was stored.
type CreateActivityResponse struct {
	Recorded bool `json:"recorded"`
}

// ActivityResponse defines a single activity row.
type ActivityResponse struct {
	EntryID        int64     `json:"entryID"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	Category       string    `json:"category"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
	RelativeTime   string    `json:"relativeTime"`
	SourceAddress  string    `json:"sourceAddress,omitempty"`
	DeviceInfo     string    `json:"deviceInfo,omitempty"`
	IntegrityToken string    `json:"integrityToken,omitempty"`
}

// ListActivitiesResponse defines one page of activities.
type ListActivitiesResponse struct {
	Activities []ActivityResponse `json:"activities"`
	Total      int                `json:"total"`
	Page       int                `json:"page"`
	PageSize   int                `json:"pageSize"`
	TotalPages int                `json:"totalPages"`
}

// ToActivityResponse converts a domain.ActivityItem to ActivityResponse DTO
func ToActivityResponse(item domain.ActivityItem) ActivityResponse {
	e := item.Entry
	return ActivityResponse{
		EntryID:        e.EntryID,
		Title:          e.Title,
		Description:    e.Description,
		Category:       string(e.Category),
		Status:         string(e.Status),
		CreatedAt:      e.CreatedAt,
		RelativeTime:   item.RelativeTime,
		SourceAddress:  e.SourceAddress,
		DeviceInfo:     e.DeviceInfo,
		IntegrityToken: e.IntegrityToken,
	}
}

// ToListActivitiesResponse converts a domain.ActivityPage to ListActivitiesResponse DTO
func ToListActivitiesResponse(page domain.ActivityPage) ListActivitiesResponse {
	res := make([]ActivityResponse, len(page.Items))
	for i, item := range page.Items {
		res[i] = ToActivityResponse(item)
	}
	return ListActivitiesResponse{
		Activities: res,
		Total:      page.Total,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
	}
}
