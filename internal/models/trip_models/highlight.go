package trip_models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// Highlight is the structured form used by the alternate record schema.
type Highlight struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

// HighlightList is the canonical bare-string form. Decoding accepts either bare
// strings or {content} objects, mixed freely.
type HighlightList []string

func (h *HighlightList) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*h = nil
		return nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}

	out := make(HighlightList, 0, len(items))
	for _, item := range items {
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			out = append(out, s)
			continue
		}
		var structured Highlight
		if err := json.Unmarshal(item, &structured); err != nil {
			return err
		}
		out = append(out, structured.Content)
	}
	*h = out
	return nil
}

// WrapHighlights upgrades bare strings to the structured form with fresh ids.
func WrapHighlights(list []string) []Highlight {
	out := make([]Highlight, 0, len(list))
	for _, content := range list {
		out = append(out, Highlight{ID: uuid.NewString(), Content: content})
	}
	return out
}

// UnwrapHighlights downgrades the structured form back to bare strings.
func UnwrapHighlights(list []Highlight) []string {
	out := make([]string, 0, len(list))
	for _, h := range list {
		out = append(out, h.Content)
	}
	return out
}
