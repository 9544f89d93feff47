package tool

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/intakehq/intake/pkg/llm"
)

const geocoderPrompt = `Extract the most specific location mentioned in the text below.
Respond with JSON only, matching exactly:
{"coordinates": [longitude, latitude] or null, "place_label": "<human-readable place>", "geometry_type": "point"|"area"|"unknown"}
Use null coordinates when you cannot determine them.

Text:
`

// GeocoderTool resolves free text to a location descriptor. It is an
// LLM-backed capability provider; deployments with a dedicated geocoding
// service register their own Tool under the same name instead.
type GeocoderTool struct {
	client llm.Client
}

// NewGeocoderTool creates the built-in geocoder provider.
func NewGeocoderTool(client llm.Client) *GeocoderTool {
	return &GeocoderTool{client: client}
}

// Invoke returns {coordinates|null, place_label, geometry_type} in Data.
func (t *GeocoderTool) Invoke(ctx context.Context, req *Request) (*Response, error) {
	out, err := t.client.Generate(ctx, &llm.GenerateInput{
		UserPrompt:  geocoderPrompt + req.Input,
		Temperature: 0,
	})
	if err != nil {
		switch {
		case llm.IsThrottle(err):
			return nil, fmt.Errorf("%w: %v", ErrToolBusy, err)
		case llm.IsServerFault(err):
			return nil, MarkTransient(err)
		default:
			return nil, err
		}
	}

	var parsed struct {
		Coordinates  []float64 `json:"coordinates"`
		PlaceLabel   string    `json:"place_label"`
		GeometryType string    `json:"geometry_type"`
	}
	if err := json.Unmarshal([]byte(out.Text), &parsed); err != nil {
		return nil, fmt.Errorf("geocoder returned unparseable response: %w", err)
	}

	data := map[string]any{
		"place_label":   parsed.PlaceLabel,
		"geometry_type": parsed.GeometryType,
	}
	if len(parsed.Coordinates) == 2 {
		data["coordinates"] = parsed.Coordinates
	} else {
		data["coordinates"] = nil
	}
	return &Response{Text: out.Text, Data: data}, nil
}
