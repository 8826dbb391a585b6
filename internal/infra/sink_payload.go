package infra

import (
	"encoding/json"

	"triptalk/internal/models/trip_models"
)

// The downstream service expects camelCase keys and owns every id.

type sinkScheduleItem struct {
	OrderIndex  int    `json:"orderIndex"`
	Time        string `json:"time"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type sinkDailySchedule struct {
	Day       int                `json:"day"`
	Date      string             `json:"date"`
	Schedules []sinkScheduleItem `json:"schedules"`
}

type sinkTransportation struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	Name          string `json:"name"`
	Price         int    `json:"price"`
	Type          string `json:"type,omitempty"`
	DepartureTime string `json:"departureTime,omitempty"`
	ArrivalTime   string `json:"arrivalTime,omitempty"`
}

type sinkAccommodation struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	PricePerNight int    `json:"pricePerNight"`
	CheckInDate   string `json:"checkInDate,omitempty"`
	CheckOutDate  string `json:"checkOutDate,omitempty"`
	Nights        int    `json:"nights,omitempty"`
}

type sinkPayload struct {
	Title                  string                    `json:"title"`
	Destination            string                    `json:"destination"`
	Departure              string                    `json:"departure"`
	StartDate              string                    `json:"startDate"`
	EndDate                string                    `json:"endDate"`
	Companions             string                    `json:"companions"`
	Budget                 string                    `json:"budget"`
	TravelStyles           []trip_models.TravelStyle `json:"travelStyles"`
	Highlights             []trip_models.Highlight   `json:"highlights"`
	DailySchedules         []sinkDailySchedule       `json:"dailySchedules"`
	OutboundTransportation *sinkTransportation       `json:"outboundTransportation"`
	ReturnTransportation   *sinkTransportation       `json:"returnTransportation"`
	Accommodations         []sinkAccommodation       `json:"accommodations"`
}

// EncodeSinkPayload renders plan for the downstream service: camelCase keys,
// highlights as bare strings and no "id" key at any depth.
func EncodeSinkPayload(plan trip_models.TripPlan) ([]byte, error) {
	raw, err := json.Marshal(newSinkPayload(plan))
	if err != nil {
		return nil, err
	}

	var tree any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, err
	}
	tree = stripIDs(tree)
	if m, ok := tree.(map[string]any); ok {
		m["highlights"] = flattenHighlights(m["highlights"])
	}
	return json.Marshal(tree)
}

func newSinkPayload(plan trip_models.TripPlan) sinkPayload {
	resp := plan.ToResponse()

	days := make([]sinkDailySchedule, 0, len(resp.DailySchedules))
	for _, d := range resp.DailySchedules {
		items := make([]sinkScheduleItem, 0, len(d.Schedules))
		for _, it := range d.Schedules {
			items = append(items, sinkScheduleItem(it))
		}
		days = append(days, sinkDailySchedule{Day: d.Day, Date: d.Date, Schedules: items})
	}

	lodging := make([]sinkAccommodation, 0, len(resp.Accommodations))
	for _, a := range resp.Accommodations {
		lodging = append(lodging, sinkAccommodation(a))
	}

	styles := resp.TravelStyles
	if styles == nil {
		styles = []trip_models.TravelStyle{}
	}

	return sinkPayload{
		Title:                  resp.Title,
		Destination:            resp.Destination,
		Departure:              resp.Departure,
		StartDate:              resp.StartDate,
		EndDate:                resp.EndDate,
		Companions:             resp.Companions,
		Budget:                 resp.Budget,
		TravelStyles:           styles,
		Highlights:             trip_models.WrapHighlights(resp.Highlights),
		DailySchedules:         days,
		OutboundTransportation: newSinkTransportation(resp.OutboundTransportation),
		ReturnTransportation:   newSinkTransportation(resp.ReturnTransportation),
		Accommodations:         lodging,
	}
}

func newSinkTransportation(leg *trip_models.TransportationLeg) *sinkTransportation {
	if leg == nil {
		return nil
	}
	out := sinkTransportation(*leg)
	return &out
}

// stripIDs removes every "id" key from nested maps and slices.
func stripIDs(v any) any {
	switch t := v.(type) {
	case map[string]any:
		delete(t, "id")
		for k, child := range t {
			t[k] = stripIDs(child)
		}
		return t
	case []any:
		for i, child := range t {
			t[i] = stripIDs(child)
		}
		return t
	default:
		return v
	}
}

// flattenHighlights turns [{"content": "..."}] into ["..."]. Bare strings pass
// through.
func flattenHighlights(v any) []string {
	items, _ := v.([]any)
	out := make([]string, 0, len(items))
	for _, item := range items {
		switch h := item.(type) {
		case string:
			out = append(out, h)
		case map[string]any:
			if content, ok := h["content"].(string); ok {
				out = append(out, content)
			}
		}
	}
	return out
}
