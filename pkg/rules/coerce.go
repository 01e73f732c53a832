package rules

import (
	"encoding/json"
	"strconv"
)

// asString narrows a document value to a string.
func asString(v any) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

// asFloat widens any numeric document value to float64. JSON decoding yields
// float64 and json.Number; programmatically built documents may carry native
// Go integer types.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// isIntegral reports whether a document value is an integer, an integral
// float, or a string of digits.
func isIntegral(v any) bool {
	switch n := v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	case float64:
		return n == float64(int64(n))
	case float32:
		return float64(n) == float64(int64(n))
	case json.Number:
		_, err := n.Int64()
		return err == nil
	case string:
		_, err := strconv.ParseInt(n, 10, 64)
		return err == nil
	default:
		return false
	}
}
