package trip_models

import (
	"encoding/json"
	"errors"
	"strings"
)

var ErrEmptyLeg = errors.New("transportation leg has no origin, destination or name")

// TransportationLeg is one direction of the round trip.
type TransportationLeg struct {
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	Name          string `json:"name"`
	Price         int    `json:"price"`
	Type          string `json:"type,omitempty"`
	DepartureTime string `json:"departure_time,omitempty"`
	ArrivalTime   string `json:"arrival_time,omitempty"`
}

// transportationWire is the union of the canonical leg and the legacy
// {type, route, price: "65,000원", company} shape.
type transportationWire struct {
	Origin        string          `json:"origin"`
	Destination   string          `json:"destination"`
	Name          string          `json:"name"`
	Price         json.RawMessage `json:"price"`
	Type          string          `json:"type"`
	Route         string          `json:"route"`
	Company       string          `json:"company"`
	DepartureTime string          `json:"departure_time"`
	ArrivalTime   string          `json:"arrival_time"`
}

var routeSeparators = []string{"→", "->", "⇒"}

func (w transportationWire) normalize() (TransportationLeg, error) {
	price, err := decodePrice(w.Price)
	if err != nil {
		return TransportationLeg{}, err
	}

	leg := TransportationLeg{
		Origin:        strings.TrimSpace(w.Origin),
		Destination:   strings.TrimSpace(w.Destination),
		Name:          strings.TrimSpace(w.Name),
		Price:         price,
		Type:          strings.TrimSpace(w.Type),
		DepartureTime: strings.TrimSpace(w.DepartureTime),
		ArrivalTime:   strings.TrimSpace(w.ArrivalTime),
	}

	if leg.Origin == "" && leg.Destination == "" && w.Route != "" {
		leg.Origin, leg.Destination = splitRoute(w.Route)
	}
	if leg.Name == "" {
		leg.Name = strings.TrimSpace(w.Company)
	}
	if leg.Name == "" {
		leg.Name = leg.Type
	}

	return leg, leg.Validate()
}

func splitRoute(route string) (string, string) {
	for _, sep := range routeSeparators {
		if from, to, ok := strings.Cut(route, sep); ok {
			return strings.TrimSpace(from), strings.TrimSpace(to)
		}
	}
	return strings.TrimSpace(route), ""
}

func (l TransportationLeg) Validate() error {
	if l.Origin == "" && l.Destination == "" && l.Name == "" {
		return ErrEmptyLeg
	}
	return nil
}

func (l *TransportationLeg) UnmarshalJSON(data []byte) error {
	var wire transportationWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	leg, err := wire.normalize()
	if err != nil {
		return err
	}
	*l = leg
	return nil
}
