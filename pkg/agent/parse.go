package agent

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/intakehq/intake/pkg/configstore"
)

// DefaultLLMConfidence is assumed when a provider's output omits the
// confidence key.
const DefaultLLMConfidence = 0.5

// ParseOutput interprets a tool's text response as a JSON object. A strict
// parse is attempted first; failing that, the longest brace-delimited
// substring is tried (models wrap JSON in prose or code fences often enough
// that this rescue pays for itself). ok is false when neither parse yields an
// object.
func ParseOutput(text string) (map[string]any, bool) {
	if out, ok := tryParse(strings.TrimSpace(text)); ok {
		return out, true
	}
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end <= start {
		return nil, false
	}
	return tryParse(text[start : end+1])
}

func tryParse(s string) (map[string]any, bool) {
	var out map[string]any
	if err := json.Unmarshal([]byte(s), &out); err != nil || out == nil {
		return nil, false
	}
	return out, true
}

// ValidateOutput fits raw onto the agent's output schema:
//   - keys absent from the schema are dropped
//   - schema keys absent from raw get a type-appropriate zero value
//   - numbers arriving as strings are coerced where the parse is exact
//   - confidence is pulled out, clamped to [0,1], and defaulted when missing
//
// The confidence key never appears in the returned output map; it travels on
// the agent result itself.
func ValidateOutput(schema map[string]string, raw map[string]any, defaultConfidence float64) (map[string]any, float64) {
	out := make(map[string]any, len(schema))
	for key, typ := range schema {
		if key == configstore.ConfidenceKey {
			continue
		}
		v, ok := raw[key]
		if !ok {
			out[key] = zeroValue(typ)
			continue
		}
		out[key] = coerce(typ, v)
	}

	confidence := defaultConfidence
	if v, ok := raw[configstore.ConfidenceKey]; ok {
		if f, ok := asNumber(v); ok {
			confidence = clamp01(f)
		}
	}
	return out, confidence
}

func coerce(typ string, v any) any {
	switch typ {
	case "string":
		if s, ok := v.(string); ok {
			return s
		}
		return zeroValue(typ)
	case "number":
		if f, ok := asNumber(v); ok {
			return f
		}
		return zeroValue(typ)
	case "boolean":
		switch t := v.(type) {
		case bool:
			return t
		case string:
			if b, err := strconv.ParseBool(t); err == nil {
				return b
			}
		}
		return zeroValue(typ)
	case "array":
		if a, ok := v.([]any); ok {
			return a
		}
		return zeroValue(typ)
	case "object":
		if m, ok := v.(map[string]any); ok {
			return m
		}
		return zeroValue(typ)
	default:
		return zeroValue(typ)
	}
}

func zeroValue(typ string) any {
	switch typ {
	case "string":
		return ""
	case "number":
		return 0.0
	case "boolean":
		return false
	case "array":
		return []any{}
	case "object":
		return map[string]any{}
	default:
		return nil
	}
}

func asNumber(v any) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
