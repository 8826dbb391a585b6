package trip_models

import "encoding/json"

// ScheduleItem is one entry of a day. OrderIndex is assigned during extraction
// and never taken from the generated payload.
type ScheduleItem struct {
	OrderIndex  int    `json:"order_index"`
	Time        string `json:"time"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UnmarshalJSON accepts the legacy "index" and "sequence" keys for the order
// index, as written by earlier record versions.
func (s *ScheduleItem) UnmarshalJSON(data []byte) error {
	var wire struct {
		OrderIndex  *int   `json:"order_index"`
		Index       *int   `json:"index"`
		Sequence    *int   `json:"sequence"`
		Time        string `json:"time"`
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	*s = ScheduleItem{
		Time:        wire.Time,
		Title:       wire.Title,
		Description: wire.Description,
	}
	switch {
	case wire.OrderIndex != nil:
		s.OrderIndex = *wire.OrderIndex
	case wire.Index != nil:
		s.OrderIndex = *wire.Index
	case wire.Sequence != nil:
		s.OrderIndex = *wire.Sequence
	}
	return nil
}
