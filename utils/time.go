// Package utils provides utility functions for the application.
package utils

import (
	"time"
)

// DateLayout is the canonical date-only format used in opportunity ids and
// cache keys.
const DateLayout = "2006-01-02"

// UTCNow returns the current time in UTC
func UTCNow() time.Time {
	return time.Now().UTC()
}

// UTCNowAdd returns the current UTC time plus the given duration
func UTCNowAdd(d time.Duration) time.Time {
	return UTCNow().Add(d)
}

// IsExpired checks if the given time is in the past (expired)
func IsExpired(t time.Time) bool {
	return UTCNow().After(t)
}

// DateOnly truncates a time to midnight UTC, keeping only the calendar day
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatDate renders a time as its yyyy-mm-dd calendar day
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a yyyy-mm-dd string into a UTC midnight time
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// MonthWindow returns the first day of the given month and the first day of
// the next month, both at midnight UTC. The window is half-open: [from, to).
func MonthWindow(year int, month time.Month) (time.Time, time.Time) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}

// MonthKey renders a year/month pair as yyyy-mm, the cache key segment for
// monthly snapshots.
func MonthKey(year int, month time.Month) string {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}
