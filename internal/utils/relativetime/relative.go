// Package relativetime renders past timestamps as coarse "N units ago" strings.
package relativetime

import (
	"fmt"
	"strings"
	"time"
)

// layouts accepted by RelativeTime, tried in order.
var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// RelativeTime parses raw and formats it relative to now. Unparsable input is
// returned unchanged.
func RelativeTime(raw string, now time.Time) string {
	trimmed := strings.TrimSpace(raw)
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, trimmed, now.Location()); err == nil {
			return Since(t, now)
		}
	}
	return raw
}

// Since formats the elapsed time between t and now using only the largest
// applicable unit: years, months, weeks, days, hours, minutes, or "just now".
// Months and years are calendar months, not fixed-length buckets.
func Since(t, now time.Time) string {
	t = t.In(now.Location())
	if !t.Before(now) {
		return "just now"
	}

	months, days, hours, minutes := calendarDiff(t, now)
	years := months / 12
	months %= 12
	weeks := days / 7

	switch {
	case years > 0:
		return plural(years, "year")
	case months > 0:
		return plural(months, "month")
	case weeks > 0:
		return plural(weeks, "week")
	case days > 0:
		return plural(days, "day")
	case hours > 0:
		return plural(hours, "hour")
	case minutes > 0:
		return plural(minutes, "minute")
	default:
		return "just now"
	}
}

// calendarDiff splits the interval from..to (from before to) into whole
// calendar months followed by the remaining days, hours and minutes.
func calendarDiff(from, to time.Time) (months, days, hours, minutes int) {
	months = (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	anchor := from.AddDate(0, months, 0)
	for months > 0 && anchor.After(to) {
		months--
		anchor = from.AddDate(0, months, 0)
	}

	rest := to.Sub(anchor)
	days = int(rest / (24 * time.Hour))
	rest -= time.Duration(days) * 24 * time.Hour
	hours = int(rest / time.Hour)
	rest -= time.Duration(hours) * time.Hour
	minutes = int(rest / time.Minute)
	return months, days, hours, minutes
}

func plural(n int, unit string) string {
	if n > 1 {
		unit += "s"
	}
	return fmt.Sprintf("%d %s ago", n, unit)
}
