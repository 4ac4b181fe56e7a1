package upstream

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// FlexString decodes a JSON string or number. Any other JSON value, null
// included, decodes to "" instead of failing the whole payload.
type FlexString string

func (s *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0:
		*s = ""
	case data[0] == '"':
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			v = ""
		}
		*s = FlexString(v)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			*s = ""
			return nil
		}
		*s = FlexString(n.String())
	}
	return nil
}

// String returns the value with surrounding whitespace trimmed.
func (s FlexString) String() string { return strings.TrimSpace(string(s)) }

// FlexInt decodes a JSON number, numeric string or boolean. Fractions are
// truncated. Anything else leaves Valid false.
type FlexInt struct {
	Value int
	Valid bool
}

// IntOf builds a valid FlexInt.
func IntOf(v int) FlexInt { return FlexInt{Value: v, Valid: true} }

func (n *FlexInt) UnmarshalJSON(data []byte) error {
	*n = FlexInt{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil
	}
	switch data[0] {
	case 't':
		if bytes.Equal(data, []byte("true")) {
			*n = IntOf(1)
		}
		return nil
	case 'f':
		if bytes.Equal(data, []byte("false")) {
			*n = IntOf(0)
		}
		return nil
	case '"':
		var raw string
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil
		}
		n.set(strings.TrimSpace(raw))
		return nil
	}
	n.set(string(data))
	return nil
}

func (n *FlexInt) set(raw string) {
	if v, err := strconv.ParseInt(raw, 10, 32); err == nil {
		*n = IntOf(int(v))
		return
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f > math.MaxInt32 || f < math.MinInt32 {
		return
	}
	*n = IntOf(int(f))
}

// Ptr returns nil when the value was absent or malformed.
func (n FlexInt) Ptr() *int {
	if !n.Valid {
		return nil
	}
	v := n.Value
	return &v
}
