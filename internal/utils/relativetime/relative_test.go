package relativetime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSince(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		then time.Time
		want string
	}{
		{name: "seconds ago", then: now.Add(-30 * time.Second), want: "just now"},
		{name: "future timestamp", then: now.Add(time.Hour), want: "just now"},
		{name: "one minute", then: now.Add(-time.Minute), want: "1 minute ago"},
		{name: "59 minutes", then: now.Add(-59 * time.Minute), want: "59 minutes ago"},
		{name: "60 minutes", then: now.Add(-60 * time.Minute), want: "1 hour ago"},
		{name: "23 hours", then: now.Add(-23 * time.Hour), want: "23 hours ago"},
		{name: "6 days", then: now.AddDate(0, 0, -6), want: "6 days ago"},
		{name: "7 days", then: now.AddDate(0, 0, -7), want: "1 week ago"},
		{name: "13 days", then: now.AddDate(0, 0, -13), want: "1 week ago"},
		{name: "14 days", then: now.AddDate(0, 0, -14), want: "2 weeks ago"},
		{name: "one calendar month", then: now.AddDate(0, -1, 0), want: "1 month ago"},
		{name: "11 months", then: now.AddDate(0, -11, 0), want: "11 months ago"},
		{name: "13 months", then: now.AddDate(0, -13, 0), want: "1 year ago"},
		{name: "three years", then: now.AddDate(-3, 0, -2), want: "3 years ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Since(tt.then, now))
		})
	}
}

func TestSince_CalendarMonths(t *testing.T) {
	// February is 29 days in 2024; a fixed 30-day month would report weeks here.
	then := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "1 month ago", Since(then, now))

	// 29 days but not yet a calendar month from the 31st of January.
	then = time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	now = time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "4 weeks ago", Since(then, now))
}

func TestRelativeTime(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "2 hours ago", RelativeTime("2024-06-15 10:00:00", now))
	assert.Equal(t, "1 day ago", RelativeTime("2024-06-14T12:00:00Z", now))
	assert.Equal(t, "3 days ago", RelativeTime("2024-06-12", now))
}

func TestRelativeTime_UnparsableReturnsInput(t *testing.T) {
	now := time.Now()
	assert.Equal(t, "yesterday-ish", RelativeTime("yesterday-ish", now))
	assert.Equal(t, "", RelativeTime("", now))
}
