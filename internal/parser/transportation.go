package parser

import (
	"encoding/json"
	"errors"
	"strings"

	"triptalk/internal/models/trip_models"
)

var errNotObject = errors.New("expected a JSON object")

// ParseTransportation reads the first transportation block. An array fills
// outbound then return; a single object is the outbound leg. Any decode or
// validation failure degrades to (nil, nil).
func ParseTransportation(doc string) (outbound, ret *trip_models.TransportationLeg) {
	payload, ok := firstBlock(doc, TagTransportation)
	if !ok {
		return nil, nil
	}
	raw := []byte(strings.TrimSpace(payload))

	var err error
	switch payloadKind(raw) {
	case '[':
		var elems []json.RawMessage
		if err = json.Unmarshal(raw, &elems); err == nil {
			if len(elems) > 0 {
				outbound, err = decodeLeg(elems[0])
			}
			if err == nil && len(elems) > 1 {
				ret, err = decodeLeg(elems[1])
			}
		}
	case '{':
		outbound, err = decodeLeg(raw)
	default:
		err = errNotObject
	}

	if err != nil {
		plog().Warn("discarding transportation block", "error", err)
		return nil, nil
	}
	return outbound, ret
}

// decodeLeg returns nil for non-object elements.
func decodeLeg(raw json.RawMessage) (*trip_models.TransportationLeg, error) {
	if payloadKind(raw) != '{' {
		return nil, nil
	}
	var leg trip_models.TransportationLeg
	if err := json.Unmarshal(raw, &leg); err != nil {
		return nil, err
	}
	return &leg, nil
}
