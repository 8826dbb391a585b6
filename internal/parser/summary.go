package parser

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"triptalk/internal/models/trip_models"
)

const (
	boldTitleLabel = "**제목:**"
	titleLabel     = "제목:"
	highlightLabel = "하이라이트"
	divider        = "---"
)

var titleKeywords = []string{"여행", "관광", "투어"}

// DefaultTitle is used when the document carries no recognizable title.
func DefaultTitle(destination string) string {
	return destination + " 여행"
}

// DefaultHighlights is used when the document carries no highlight bullets.
func DefaultHighlights(destination string) []string {
	return []string{destination + " 탐방", "맛집 투어", "문화 체험"}
}

// lines yields doc line by line after NFC normalization, without the line
// terminators.
func lines(doc string) func(yield func(string) bool) {
	doc = norm.NFC.String(doc)
	return func(yield func(string) bool) {
		for line := range strings.Lines(doc) {
			if !yield(strings.TrimRight(line, "\r\n")) {
				return
			}
		}
	}
}

// ExtractTitle returns the first title found, checking each line for a bold
// 제목 label, a plain 제목 label, then a heading with a travel keyword. A first
// match with nothing left after cleanup yields the default title; later lines
// are not tried.
func ExtractTitle(doc, destination string) string {
	for line := range lines(doc) {
		title, ok := titleFromLine(line)
		if !ok {
			continue
		}
		title = trip_models.Truncate(cutParenthesized(title), trip_models.TitleMaxLen)
		if title == "" {
			break
		}
		return title
	}
	return DefaultTitle(destination)
}

func titleFromLine(line string) (string, bool) {
	switch {
	case strings.Contains(line, boldTitleLabel):
		return afterLast(line, boldTitleLabel), true
	case strings.Contains(line, titleLabel) && !strings.Contains(line, "**"):
		return afterLast(line, titleLabel), true
	}
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "#") && containsAny(trimmed, titleKeywords) {
		return strings.TrimSpace(strings.ReplaceAll(trimmed, "#", "")), true
	}
	return "", false
}

func afterLast(s, label string) string {
	return strings.TrimSpace(s[strings.LastIndex(s, label)+len(label):])
}

// cutParenthesized drops a trailing annotation such as "(3박 4일)".
func cutParenthesized(s string) string {
	before, _, _ := strings.Cut(s, "(")
	return strings.TrimSpace(before)
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

type highlightState int

const (
	stateSeeking highlightState = iota
	stateInHighlights
)

// ExtractHighlights collects the bullet lines that follow a 하이라이트 label.
// At most five are kept; with none the destination defaults are returned.
func ExtractHighlights(doc, destination string) []string {
	var out []string
	state := stateSeeking

	for line := range lines(doc) {
		if strings.Contains(line, highlightLabel) {
			state = stateInHighlights
			continue
		}
		if state != stateInHighlights {
			continue
		}

		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
		case strings.HasPrefix(trimmed, divider):
			state = stateSeeking
		case strings.HasPrefix(trimmed, "**"):
		case isBullet(trimmed):
			if h := bulletText(trimmed); h != "" {
				out = append(out, h)
			}
		default:
			state = stateSeeking
		}
	}

	if len(out) == 0 {
		return DefaultHighlights(destination)
	}
	if len(out) > trip_models.MaxHighlights {
		out = out[:trip_models.MaxHighlights]
	}
	return out
}

func isBullet(s string) bool {
	return strings.HasPrefix(s, "•") || strings.HasPrefix(s, "-") || strings.HasPrefix(s, "*")
}

func bulletText(s string) string {
	for _, glyph := range []string{"•", "-", "*"} {
		if rest, ok := strings.CutPrefix(s, glyph); ok {
			s = rest
			break
		}
	}
	s = strings.TrimSpace(strings.ReplaceAll(s, "**", ""))
	return trip_models.Truncate(s, trip_models.HighlightMaxLen)
}
