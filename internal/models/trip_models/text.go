package trip_models

import "unicode/utf8"

// Truncate cuts s to at most max runes. Strings already within the cap are
// returned unchanged.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max])
}
