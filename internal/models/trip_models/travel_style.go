package trip_models

import (
	"encoding/json"
	"fmt"
	"strings"
)

type TravelStyle string

const (
	StyleActivity  TravelStyle = "ACTIVITY"
	StyleHotplace  TravelStyle = "HOTPLACE"
	StyleNature    TravelStyle = "NATURE"
	StyleMustVisit TravelStyle = "MUST_VISIT"
	StyleHealing   TravelStyle = "HEALING"
	StyleCulture   TravelStyle = "CULTURE"
	StyleLocalVibe TravelStyle = "LOCAL_VIBE"
	StyleShopping  TravelStyle = "SHOPPING"
	StyleFoodFocus TravelStyle = "FOOD_FOCUS"
)

var styleLabels = map[TravelStyle]string{
	StyleActivity:  "체험/액티비티",
	StyleHotplace:  "SNS 핫플레이스",
	StyleNature:    "자연과 함께",
	StyleMustVisit: "유명 관광지는 필수",
	StyleHealing:   "여유롭게 힐링",
	StyleCulture:   "문화/예술/역사",
	StyleLocalVibe: "여행지 느낌 물씬",
	StyleShopping:  "쇼핑은 열정적으로",
	StyleFoodFocus: "관광보다 먹방",
}

// AllTravelStyles lists the enum in declaration order.
var AllTravelStyles = []TravelStyle{
	StyleActivity, StyleHotplace, StyleNature, StyleMustVisit, StyleHealing,
	StyleCulture, StyleLocalVibe, StyleShopping, StyleFoodFocus,
}

// ParseTravelStyle accepts the tag name (case-insensitive) or its Korean label.
func ParseTravelStyle(s string) (TravelStyle, bool) {
	s = strings.TrimSpace(s)
	for _, style := range AllTravelStyles {
		if strings.EqualFold(string(style), s) || styleLabels[style] == s {
			return style, true
		}
	}
	return "", false
}

func (s TravelStyle) Label() string {
	if label, ok := styleLabels[s]; ok {
		return label
	}
	return string(s)
}

func (s TravelStyle) Valid() bool {
	_, ok := styleLabels[s]
	return ok
}

func (s *TravelStyle) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	style, ok := ParseTravelStyle(raw)
	if !ok {
		return fmt.Errorf("unknown travel style %q", raw)
	}
	*s = style
	return nil
}

// StyleLabels renders styles for prompt text.
func StyleLabels(styles []TravelStyle) []string {
	out := make([]string, 0, len(styles))
	for _, s := range styles {
		out = append(out, s.Label())
	}
	return out
}
