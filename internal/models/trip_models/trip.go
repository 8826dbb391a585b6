// Package trip_models holds the trip record and its sub-entities, shared by the
// extraction pipeline, the store and the HTTP layer.
package trip_models

const (
	TitleMaxLen               = 100
	HighlightMaxLen           = 100
	ScheduleTitleMaxLen       = 100
	ScheduleDescriptionMaxLen = 50
	MaxHighlights             = 5
)

// TripPlan is the persisted trip record. It is only ever produced by the
// extraction pipeline and is replaced wholesale on update.
type TripPlan struct {
	ID                     string             `json:"id"`
	Title                  string             `json:"title"`
	Destination            string             `json:"destination"`
	Departure              string             `json:"departure"`
	StartDate              string             `json:"start_date"`
	EndDate                string             `json:"end_date"`
	Companions             string             `json:"companions"`
	Budget                 string             `json:"budget"`
	TravelStyles           []TravelStyle      `json:"travel_styles"`
	Highlights             HighlightList      `json:"highlights"`
	FullPlan               string             `json:"full_plan"`
	DailySchedules         []DailySchedule    `json:"daily_schedules"`
	OutboundTransportation *TransportationLeg `json:"outbound_transportation"`
	ReturnTransportation   *TransportationLeg `json:"return_transportation"`
	Accommodations         []Accommodation    `json:"accommodations"`
}

type DailySchedule struct {
	Day       int            `json:"day"`
	Date      string         `json:"date"`
	Schedules []ScheduleItem `json:"schedules"`
}

// TripPlanResponse is TripPlan without the verbatim document.
type TripPlanResponse struct {
	ID                     string             `json:"id"`
	Title                  string             `json:"title"`
	Destination            string             `json:"destination"`
	Departure              string             `json:"departure"`
	StartDate              string             `json:"start_date"`
	EndDate                string             `json:"end_date"`
	Companions             string             `json:"companions"`
	Budget                 string             `json:"budget"`
	TravelStyles           []TravelStyle      `json:"travel_styles"`
	Highlights             HighlightList      `json:"highlights"`
	DailySchedules         []DailySchedule    `json:"daily_schedules"`
	OutboundTransportation *TransportationLeg `json:"outbound_transportation"`
	ReturnTransportation   *TransportationLeg `json:"return_transportation"`
	Accommodations         []Accommodation    `json:"accommodations"`
}

func (p TripPlan) ToResponse() TripPlanResponse {
	return TripPlanResponse{
		ID:                     p.ID,
		Title:                  p.Title,
		Destination:            p.Destination,
		Departure:              p.Departure,
		StartDate:              p.StartDate,
		EndDate:                p.EndDate,
		Companions:             p.Companions,
		Budget:                 p.Budget,
		TravelStyles:           p.TravelStyles,
		Highlights:             p.Highlights,
		DailySchedules:         p.DailySchedules,
		OutboundTransportation: p.OutboundTransportation,
		ReturnTransportation:   p.ReturnTransportation,
		Accommodations:         p.Accommodations,
	}
}
