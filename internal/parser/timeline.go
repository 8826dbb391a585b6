package parser

import (
	"encoding/json"
	"strings"

	"triptalk/internal/models/trip_models"
	"triptalk/pkg/utils"
)

type dayWire struct {
	Day       looseInt          `json:"day"`
	Schedules []json.RawMessage `json:"schedules"`
}

type itemWire struct {
	Time        looseString `json:"time"`
	Title       looseString `json:"title"`
	Description looseString `json:"description"`
}

// ParseTimeline turns every json block of doc into a DailySchedule. Dates are
// derived from startDate; blocks that do not decode are logged and skipped.
// The result keeps block order and is never nil.
func ParseTimeline(doc, startDate string) []trip_models.DailySchedule {
	start := utils.ParseTripDateOrToday(startDate)
	out := make([]trip_models.DailySchedule, 0)

	for i, payload := range ExtractBlocks(doc, TagTimeline) {
		days, err := decodeDays([]byte(strings.TrimSpace(payload)))
		if err != nil {
			plog().Warn("skipping malformed timeline block", "block", i, "error", err)
			continue
		}
		for _, d := range days {
			if !d.Day.Set || d.Day.Value < 1 {
				plog().Warn("skipping day without a positive day number", "block", i)
				continue
			}
			out = append(out, trip_models.DailySchedule{
				Day:       d.Day.Value,
				Date:      utils.DayDate(start, d.Day.Value),
				Schedules: buildItems(d.Schedules, i),
			})
		}
	}
	return out
}

// decodeDays accepts one day object or an array of them. Array elements that
// are not day objects are dropped.
func decodeDays(raw []byte) ([]dayWire, error) {
	switch payloadKind(raw) {
	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(raw, &elems); err != nil {
			return nil, err
		}
		days := make([]dayWire, 0, len(elems))
		for _, e := range elems {
			var d dayWire
			if payloadKind(e) != '{' || json.Unmarshal(e, &d) != nil {
				continue
			}
			days = append(days, d)
		}
		return days, nil
	default:
		var d dayWire
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, err
		}
		return []dayWire{d}, nil
	}
}

func buildItems(raw []json.RawMessage, block int) []trip_models.ScheduleItem {
	items := make([]trip_models.ScheduleItem, 0, len(raw))
	for _, r := range raw {
		var w itemWire
		if payloadKind(r) != '{' || json.Unmarshal(r, &w) != nil {
			plog().Warn("skipping malformed schedule item", "block", block)
			continue
		}
		items = append(items, trip_models.ScheduleItem{
			OrderIndex:  len(items) + 1,
			Time:        string(w.Time),
			Title:       trip_models.Truncate(string(w.Title), trip_models.ScheduleTitleMaxLen),
			Description: trip_models.Truncate(string(w.Description), trip_models.ScheduleDescriptionMaxLen),
		})
	}
	return items
}
