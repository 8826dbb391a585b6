package parser

import (
	"encoding/json"
	"strings"

	"triptalk/internal/models/trip_models"
)

// ParseAccommodations reads the first accommodations block, either an array or
// a single object. Invalid JSON yields an empty list; elements that are not
// accommodation objects are skipped.
func ParseAccommodations(doc string) []trip_models.Accommodation {
	out := make([]trip_models.Accommodation, 0)
	payload, ok := firstBlock(doc, TagAccommodations)
	if !ok {
		return out
	}
	raw := []byte(strings.TrimSpace(payload))

	var elems []json.RawMessage
	switch payloadKind(raw) {
	case '[':
		if err := json.Unmarshal(raw, &elems); err != nil {
			plog().Warn("discarding accommodations block", "error", err)
			return out
		}
	case '{':
		if !json.Valid(raw) {
			plog().Warn("discarding accommodations block", "error", "invalid JSON object")
			return out
		}
		elems = []json.RawMessage{raw}
	default:
		plog().Warn("discarding accommodations block", "error", errNotObject)
		return out
	}

	for i, e := range elems {
		if payloadKind(e) != '{' {
			continue
		}
		var a trip_models.Accommodation
		if err := json.Unmarshal(e, &a); err != nil {
			plog().Warn("skipping accommodation", "index", i, "error", err)
			continue
		}
		out = append(out, a)
	}
	return out
}
