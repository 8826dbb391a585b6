package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// looseString accepts any JSON scalar; generated payloads are not reliable
// about quoting.
type looseString string

func (s *looseString) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case nil:
		*s = ""
	case string:
		*s = looseString(strings.TrimSpace(t))
	case float64, bool:
		*s = looseString(fmt.Sprint(t))
	default:
		return fmt.Errorf("expected a scalar, got %s", string(data))
	}
	return nil
}

// looseInt accepts 3, 3.0 and "3".
type looseInt struct {
	Value int
	Set   bool
}

func (n *looseInt) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case nil:
		*n = looseInt{}
		return nil
	case float64:
		if t != math.Trunc(t) {
			return fmt.Errorf("expected an integer, got %v", t)
		}
		*n = looseInt{Value: int(t), Set: true}
		return nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return fmt.Errorf("expected an integer, got %q", t)
		}
		*n = looseInt{Value: i, Set: true}
		return nil
	default:
		return fmt.Errorf("expected an integer, got %s", string(data))
	}
}

// payloadKind reports whether raw holds a JSON object or array.
func payloadKind(raw []byte) byte {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0
	}
	return raw[0]
}
