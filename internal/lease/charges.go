package lease

import (
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// chargesObject is the wrapped shape older applications stored: either an
// "amount" or a "value" key, each possibly holding a number or a numeric
// string.
type chargesObject struct {
	Amount *json.RawMessage `json:"amount"`
	Value  *json.RawMessage `json:"value"`
}

// NormalizeCharges resolves the legacy polymorphic charges field to a plain
// amount. Accepted shapes: number, numeric string, {amount|value} object.
// Anything else resolves to 0 without error; charges is optional legacy data
// and a malformed shape must not block lease generation.
func NormalizeCharges(raw []byte) float64 {
	raw = []byte(strings.TrimSpace(string(raw)))
	if len(raw) == 0 || string(raw) == "null" {
		return 0
	}

	if v, ok := normalizeScalar(raw); ok {
		return v
	}

	var obj chargesObject
	if err := json.Unmarshal(raw, &obj); err != nil {
		return 0
	}

	if obj.Amount != nil {
		if v, ok := normalizeScalar(*obj.Amount); ok {
			return v
		}
	}
	if obj.Value != nil {
		if v, ok := normalizeScalar(*obj.Value); ok {
			return v
		}
	}

	return 0
}

func normalizeScalar(raw json.RawMessage) (float64, bool) {
	var num float64
	if err := json.Unmarshal(raw, &num); err == nil {
		return num, true
	}

	var str string
	if err := json.Unmarshal(raw, &str); err != nil {
		return 0, false
	}

	num, err := strconv.ParseFloat(strings.TrimSpace(str), 64)
	if err != nil {
		return 0, false
	}
	return num, true
}
