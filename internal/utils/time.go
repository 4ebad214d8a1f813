package utils

import (
	"strings"
	"time"
)

const (
	layoutDate    = "2006-01-02"
	layoutCompact = "20060102"
	layoutMonth   = "January 2006"
)

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ParseDate parses YYYY-MM-DD in local timezone.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(layoutDate, strings.TrimSpace(s), time.Local)
}

// FormatDate formats time to zero-padded YYYY-MM-DD, safe for lexicographic
// comparison against stored record dates.
func FormatDate(t time.Time) string {
	return t.In(time.Local).Format(layoutDate)
}

// FormatDateCompact formats time to YYYYMMDD for export file names.
func FormatDateCompact(t time.Time) string {
	return t.In(time.Local).Format(layoutCompact)
}

// MonthLabel renders the month grouping label, e.g. "January 2025".
func MonthLabel(t time.Time) string {
	return t.In(time.Local).Format(layoutMonth)
}
