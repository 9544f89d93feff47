package recordstore

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func TestEncodeDecimals_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		value float64
	}{
		{"simple", 0.5},
		{"coordinate", -73.985428},
		{"six sig digits", 40.7484},
		{"tiny", 0.000001},
		{"large", 123456789.123456},
		{"negative", -0.33},
		{"zero", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded := EncodeDecimals(tt.value)
			_, ok := encoded.(bson.Decimal128)
			require.True(t, ok, "expected Decimal128, got %T", encoded)

			decoded := DecodeDecimals(encoded)
			assert.Equal(t, tt.value, decoded)
		})
	}
}

func TestEncodeDecimals_WalksNestedStructures(t *testing.T) {
	doc := map[string]any{
		"title": "pothole on 5th ave",
		"location": map[string]any{
			"coordinates": []any{-73.985428, 40.748441},
			"precision":   0.95,
		},
		"counts": []any{1, 2.5, "three"},
	}

	encoded := EncodeDecimals(doc).(map[string]any)

	loc := encoded["location"].(map[string]any)
	coords := loc["coordinates"].([]any)
	assert.IsType(t, bson.Decimal128{}, coords[0])
	assert.IsType(t, bson.Decimal128{}, coords[1])
	assert.IsType(t, bson.Decimal128{}, loc["precision"])

	counts := encoded["counts"].([]any)
	assert.Equal(t, 1, counts[0])
	assert.IsType(t, bson.Decimal128{}, counts[1])
	assert.Equal(t, "three", counts[2])

	// Strings and ints pass through untouched.
	assert.Equal(t, "pothole on 5th ave", encoded["title"])

	decoded := DecodeDecimals(encoded).(map[string]any)
	assert.Equal(t, doc, decoded)
}

func TestEncodeDecimals_NonFiniteFloats(t *testing.T) {
	assert.Equal(t, "NaN", EncodeDecimals(math.NaN()))
	assert.Equal(t, "+Inf", EncodeDecimals(math.Inf(1)))
	assert.Equal(t, "-Inf", EncodeDecimals(math.Inf(-1)))
}

func TestDecodeDecimals_BSONContainerTypes(t *testing.T) {
	d, err := bson.ParseDecimal128("0.75")
	require.NoError(t, err)

	doc := bson.M{
		"scores": bson.A{d, "n/a"},
		"nested": bson.M{"confidence": d},
	}

	decoded := DecodeDecimals(doc).(map[string]any)
	scores := decoded["scores"].([]any)
	assert.Equal(t, 0.75, scores[0])
	assert.Equal(t, "n/a", scores[1])
	nested := decoded["nested"].(map[string]any)
	assert.Equal(t, 0.75, nested["confidence"])
}
