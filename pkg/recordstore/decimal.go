package recordstore

import (
	"math"
	"strconv"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// EncodeDecimals walks v and converts every float into the store's
// Decimal128 representation. The shortest-round-trip formatting keeps the
// conversion lossless (well past the 6-significant-digit guarantee). Maps and
// slices are rebuilt; all other values pass through unchanged.
func EncodeDecimals(v any) any {
	switch t := v.(type) {
	case float64:
		return floatToDecimal(t)
	case float32:
		return floatToDecimal(float64(t))
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = EncodeDecimals(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = EncodeDecimals(val)
		}
		return out
	default:
		return v
	}
}

// DecodeDecimals is the inverse walk: Decimal128 values become float64 so the
// core computes on native floats.
func DecodeDecimals(v any) any {
	switch t := v.(type) {
	case bson.Decimal128:
		f, err := strconv.ParseFloat(t.String(), 64)
		if err != nil {
			// Out-of-range decimals survive as strings rather than vanish.
			return t.String()
		}
		return f
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = DecodeDecimals(val)
		}
		return out
	case bson.M:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = DecodeDecimals(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = DecodeDecimals(val)
		}
		return out
	case bson.A:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = DecodeDecimals(val)
		}
		return out
	default:
		return v
	}
}

func floatToDecimal(f float64) any {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		// ParseDecimal128 would accept these, but a NaN/Inf Decimal128 does
		// not round-trip through comparisons; store the string spelling.
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	d, err := bson.ParseDecimal128(strconv.FormatFloat(f, 'g', -1, 64))
	if err != nil {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return d
}
