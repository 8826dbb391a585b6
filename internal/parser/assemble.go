package parser

import (
	"github.com/google/uuid"
	"github.com/samber/lo"

	"triptalk/internal/models/request_models"
	"triptalk/internal/models/trip_models"
)

// AssembleTripPlan builds a complete record from a generated document and the
// request that produced it. The record always gets a fresh id; callers keep an
// existing one on update.
func AssembleTripPlan(doc string, req request_models.TravelInput) trip_models.TripPlan {
	outbound, ret := ParseTransportation(doc)

	return trip_models.TripPlan{
		ID:                     uuid.NewString(),
		Title:                  ExtractTitle(doc, req.Destination),
		Destination:            req.Destination,
		Departure:              req.Departure,
		StartDate:              req.StartDate,
		EndDate:                req.EndDate,
		Companions:             req.Companions,
		Budget:                 req.Budget,
		TravelStyles:           lo.Uniq(req.Style),
		Highlights:             ExtractHighlights(doc, req.Destination),
		FullPlan:               doc,
		DailySchedules:         ParseTimeline(doc, req.StartDate),
		OutboundTransportation: outbound,
		ReturnTransportation:   ret,
		Accommodations:         ParseAccommodations(doc),
	}
}
