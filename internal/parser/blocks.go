// Package parser pulls the machine-readable parts out of a generated itinerary:
// fenced JSON blocks (timeline, transportation, accommodations) and the
// line-based summary fields (title, highlights).
package parser

import (
	"regexp"
	"strings"
)

const (
	TagTimeline       = "json"
	TagTransportation = "transportation"
	TagAccommodations = "accommodations"
)

var knownTags = []string{TagTimeline, TagTransportation, TagAccommodations}

var blockPatterns = func() map[string]*regexp.Regexp {
	out := make(map[string]*regexp.Regexp, len(knownTags))
	for _, tag := range knownTags {
		out[tag] = compileFence(tag)
	}
	return out
}()

// compileFence matches ```<tag>, optional trailing whitespace, a newline, the
// payload (non-greedy, may span lines) and a newline followed by the closing
// fence.
func compileFence(tag string) *regexp.Regexp {
	return regexp.MustCompile("(?s)```" + regexp.QuoteMeta(tag) + `\s*\n(.*?)\n` + "```")
}

func fencePattern(tag string) *regexp.Regexp {
	if re, ok := blockPatterns[tag]; ok {
		return re
	}
	return compileFence(tag)
}

// ExtractBlocks returns the payloads of every fence opened with exactly tag, in
// document order. It returns an empty slice when there are none.
func ExtractBlocks(doc, tag string) []string {
	matches := fencePattern(tag).FindAllStringSubmatch(doc, -1)
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m[1])
	}
	return out
}

// firstBlock returns the first payload for tag, if any.
func firstBlock(doc, tag string) (string, bool) {
	m := fencePattern(tag).FindStringSubmatch(doc)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// StripFencedBlocks removes every json, transportation and accommodations
// block and trims the remainder. This is the client-facing text.
func StripFencedBlocks(doc string) string {
	for _, tag := range knownTags {
		doc = blockPatterns[tag].ReplaceAllLiteralString(doc, "")
	}
	return strings.TrimSpace(doc)
}
