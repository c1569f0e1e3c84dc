package domain

// ActivityItem pairs an audit entry with its human-readable age.
type ActivityItem struct {
	Entry        AuditEntry `json:"entry"`
	RelativeTime string     `json:"relativeTime"`
}

// ActivityPage is one page of an owner's activity feed.
type ActivityPage struct {
	Items      []ActivityItem `json:"items"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"pageSize"`
	TotalPages int            `json:"totalPages"`
}
