package trip_models

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var priceGroupPattern = regexp.MustCompile(`\d[\d,]*`)

// decodePrice reads an integer price from a JSON number or from free text such
// as "65,000원" or "1박 약 120,000원". For text the digit group with the most
// digits wins, so a leading "1박" does not leak into the amount.
func decodePrice(raw json.RawMessage) (int, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return 0, nil
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, err
	}

	switch t := v.(type) {
	case float64:
		return int(math.Round(t)), nil
	case string:
		return priceFromText(t), nil
	default:
		return 0, fmt.Errorf("price must be a number or string, got %s", string(raw))
	}
}

func priceFromText(s string) int {
	best := ""
	for _, group := range priceGroupPattern.FindAllString(s, -1) {
		digits := strings.ReplaceAll(group, ",", "")
		if len(digits) > len(best) {
			best = digits
		}
	}
	if best == "" {
		return 0
	}
	n, err := strconv.Atoi(best)
	if err != nil {
		return 0
	}
	return n
}
