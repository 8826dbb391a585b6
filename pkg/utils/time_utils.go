// utils/time_utils.go
package utils

import (
	"strings"
	"time"
)

const (
	// CanonicalDateLayout is used for every derived date (schedule dates).
	CanonicalDateLayout = "2006.01.02"
	isoDateLayout       = "2006-01-02"
)

// nowFunc is swapped in tests.
var nowFunc = time.Now

// ParseTripDate accepts YYYY.MM.DD, YYYY/MM/DD and YYYY-MM-DD.
func ParseTripDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(CanonicalDateLayout, strings.ReplaceAll(s, "/", ".")); err == nil {
		return t, true
	}
	if t, err := time.Parse(isoDateLayout, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// ParseTripDateOrToday never fails: an unparseable date falls back to the
// current day.
func ParseTripDateOrToday(s string) time.Time {
	if t, ok := ParseTripDate(s); ok {
		return t
	}
	now := nowFunc()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// DayDate returns start + (day-1) days in the canonical layout.
func DayDate(start time.Time, day int) string {
	return FormatCanonicalDate(start.AddDate(0, 0, day-1))
}

// FormatCanonicalDate renders t as YYYY.MM.DD; the zero time renders empty.
func FormatCanonicalDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(CanonicalDateLayout)
}
