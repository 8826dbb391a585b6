package trip_models

import (
	"encoding/json"
	"strings"
)

// Accommodation is one lodging entry. The stay fields are only present in the
// nested-stay record shape.
type Accommodation struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	PricePerNight int    `json:"price_per_night"`
	CheckInDate   string `json:"check_in_date,omitempty"`
	CheckOutDate  string `json:"check_out_date,omitempty"`
	Nights        int    `json:"nights,omitempty"`
}

func (a *Accommodation) UnmarshalJSON(data []byte) error {
	var wire struct {
		Name          string          `json:"name"`
		Address       string          `json:"address"`
		PricePerNight json.RawMessage `json:"price_per_night"`
		Price         json.RawMessage `json:"price"`
		CheckInDate   string          `json:"check_in_date"`
		CheckOutDate  string          `json:"check_out_date"`
		Nights        int             `json:"nights"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	raw := wire.PricePerNight
	if len(raw) == 0 {
		raw = wire.Price
	}
	price, err := decodePrice(raw)
	if err != nil {
		return err
	}

	*a = Accommodation{
		Name:          strings.TrimSpace(wire.Name),
		Address:       strings.TrimSpace(wire.Address),
		PricePerNight: price,
		CheckInDate:   strings.TrimSpace(wire.CheckInDate),
		CheckOutDate:  strings.TrimSpace(wire.CheckOutDate),
		Nights:        wire.Nights,
	}
	return nil
}
