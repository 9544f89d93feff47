package recordstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeepMerge_NestedMapsMerge(t *testing.T) {
	dst := map[string]any{
		"ingestion_data": map[string]any{
			"category": "roads",
			"location": map[string]any{"borough": "manhattan"},
		},
		"status": "open",
	}
	partial := map[string]any{
		"ingestion_data": map[string]any{
			"severity": "high",
			"location": map[string]any{"street": "5th ave"},
		},
	}

	deepMerge(dst, partial)

	ing := dst["ingestion_data"].(map[string]any)
	assert.Equal(t, "roads", ing["category"])
	assert.Equal(t, "high", ing["severity"])
	loc := ing["location"].(map[string]any)
	assert.Equal(t, "manhattan", loc["borough"])
	assert.Equal(t, "5th ave", loc["street"])
	assert.Equal(t, "open", dst["status"])
}

func TestDeepMerge_LastWriterWinsOnLeaves(t *testing.T) {
	dst := map[string]any{"status": "open", "priority": 2}
	deepMerge(dst, map[string]any{"status": "resolved"})

	assert.Equal(t, "resolved", dst["status"])
	assert.Equal(t, 2, dst["priority"])
}

func TestDeepMerge_HistoryAppends(t *testing.T) {
	dst := map[string]any{
		FieldHistory: []any{map[string]any{"action": "created"}},
	}
	deepMerge(dst, map[string]any{
		FieldHistory: []any{map[string]any{"action": "status_change"}},
	})

	hist := dst[FieldHistory].([]any)
	require.Len(t, hist, 2)
	assert.Equal(t, "created", hist[0].(map[string]any)["action"])
	assert.Equal(t, "status_change", hist[1].(map[string]any)["action"])
}

func TestDeepMerge_NestedHistoryAppends(t *testing.T) {
	dst := map[string]any{
		"management_data": map[string]any{
			FieldHistory: []any{"assigned"},
		},
	}
	deepMerge(dst, map[string]any{
		"management_data": map[string]any{
			FieldHistory: []any{"escalated"},
		},
	})

	hist := dst["management_data"].(map[string]any)[FieldHistory].([]any)
	assert.Equal(t, []any{"assigned", "escalated"}, hist)
}

func TestFlattenForUpdate_MirrorsMergeSemantics(t *testing.T) {
	partial := map[string]any{
		"ingestion_data": map[string]any{
			"severity": "high",
			"location": map[string]any{"street": "5th ave"},
		},
		"management_data": map[string]any{
			FieldHistory: []any{"escalated", "closed"},
		},
		"status": "resolved",
	}

	set := map[string]any{}
	push := map[string][]any{}
	flattenForUpdate("", partial, set, push)

	assert.Equal(t, map[string]any{
		"ingestion_data.severity":        "high",
		"ingestion_data.location.street": "5th ave",
		"status":                         "resolved",
	}, set)
	assert.Equal(t, map[string][]any{
		"management_data.history": {"escalated", "closed"},
	}, push)
}

func TestFakeStore_CreateAndGet(t *testing.T) {
	store := NewFakeStore()
	ctx := context.Background()

	id, err := store.CreateRecord(ctx, "acme", map[string]any{
		FieldDomainID: "civic_complaints",
		FieldRawInput: "broken streetlight",
		"ingestion_data": map[string]any{
			"coordinates": []any{-73.99, 40.73},
		},
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := store.GetRecord(ctx, "acme", id)
	require.NoError(t, err)
	assert.Equal(t, "broken streetlight", got[FieldRawInput])
	coords := got["ingestion_data"].(map[string]any)["coordinates"].([]any)
	assert.Equal(t, -73.99, coords[0])
	assert.Equal(t, 40.73, coords[1])

	// Tenant scoping: another tenant cannot see it.
	_, err = store.GetRecord(ctx, "other", id)
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestFakeStore_MergePreservesUntouchedFields(t *testing.T) {
	store := NewFakeStore()
	ctx := context.Background()

	id, err := store.CreateRecord(ctx, "acme", map[string]any{
		FieldDomainID: "civic_complaints",
		"ingestion_data": map[string]any{
			"category": "lighting",
			"severity": "low",
		},
	})
	require.NoError(t, err)

	err = store.MergeRecord(ctx, "acme", id, map[string]any{
		"ingestion_data": map[string]any{"severity": "high"},
		"management_data": map[string]any{
			FieldHistory: []any{map[string]any{"action": "triaged"}},
		},
	})
	require.NoError(t, err)

	got, err := store.GetRecord(ctx, "acme", id)
	require.NoError(t, err)
	ing := got["ingestion_data"].(map[string]any)
	assert.Equal(t, "lighting", ing["category"])
	assert.Equal(t, "high", ing["severity"])
	hist := got["management_data"].(map[string]any)[FieldHistory].([]any)
	require.Len(t, hist, 1)
}

func TestFakeStore_MergeUnknownRecord(t *testing.T) {
	store := NewFakeStore()
	err := store.MergeRecord(context.Background(), "acme", "nope", map[string]any{"a": 1})
	assert.ErrorIs(t, err, ErrRecordNotFound)
}

func TestFakeStore_QueryFiltersByDomainAndFields(t *testing.T) {
	store := NewFakeStore()
	ctx := context.Background()

	_, err := store.CreateRecord(ctx, "acme", map[string]any{
		FieldDomainID: "civic_complaints",
		FieldStatus:   "open",
	})
	require.NoError(t, err)
	_, err = store.CreateRecord(ctx, "acme", map[string]any{
		FieldDomainID: "civic_complaints",
		FieldStatus:   "resolved",
	})
	require.NoError(t, err)
	_, err = store.CreateRecord(ctx, "acme", map[string]any{
		FieldDomainID: "permits",
		FieldStatus:   "open",
	})
	require.NoError(t, err)

	got, err := store.QueryRecords(ctx, "acme", "civic_complaints", map[string]any{FieldStatus: "open"}, 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "open", got[0][FieldStatus])

	// Other tenants see nothing.
	got, err = store.QueryRecords(ctx, "other", "civic_complaints", nil, 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}
