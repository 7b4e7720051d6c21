// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package batch

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/restaurant-lookup/internal/places"
	"github.com/pdiddy/restaurant-lookup/pkg/types"
)

// --- test doubles ---

type fakeLooker struct {
	fail  map[string]error
	calls []types.LookupRequest
}

func (f *fakeLooker) Lookup(_ context.Context, req types.LookupRequest) (*types.LookupResult, error) {
	f.calls = append(f.calls, req)
	if err, ok := f.fail[req.RestaurantName]; ok {
		return nil, err
	}
	return &types.LookupResult{
		Query:      req.RestaurantName,
		PlaceID:    "id-" + req.RestaurantName,
		Restaurant: types.Restaurant{Name: req.RestaurantName},
	}, nil
}

type fakeSaver struct {
	runIDs []string
	saved  []string
	err    error
}

func (f *fakeSaver) Save(_ context.Context, runID string, res *types.LookupResult) (*types.SavedRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.runIDs = append(f.runIDs, runID)
	f.saved = append(f.saved, res.PlaceID)
	return &types.SavedRecord{RunID: runID, LookupResult: *res}, nil
}

func reqs(names ...string) []types.LookupRequest {
	out := make([]types.LookupRequest, len(names))
	for i, n := range names {
		out[i] = types.LookupRequest{RestaurantName: n, City: "Austin", State: "TX"}
	}
	return out
}

// --- Run ---

func TestRunAllResolved(t *testing.T) {
	l := &fakeLooker{}
	var buf bytes.Buffer

	result, err := Run(context.Background(), l, reqs("Joe's Diner", "Taqueria"), nil, &buf)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Resolved)
	assert.Equal(t, 0, result.Failed)
	assert.False(t, result.HasFailures())
	assert.NotEmpty(t, result.RunID)
	require.Len(t, result.Entries, 2)
	assert.Equal(t, "Joe's Diner", result.Entries[0].Result.Restaurant.Name)
	assert.Contains(t, buf.String(), "resolved: Joe's Diner Austin TX -> Joe's Diner")
	assert.Contains(t, buf.String(), "resolved: 2, failed: 0 (total: 2)")
}

func TestRunContinuesAfterFailure(t *testing.T) {
	notFound := &places.Error{Kind: places.KindNotFound, Op: places.OpSearch, Msg: `Could not find "Ghost" on Google Places`}
	l := &fakeLooker{fail: map[string]error{"Ghost": notFound}}
	var buf bytes.Buffer

	result, err := Run(context.Background(), l, reqs("Joe's Diner", "Ghost", "Taqueria"), nil, &buf)
	require.NoError(t, err)

	assert.Len(t, l.calls, 3, "every request is attempted")
	assert.Equal(t, 2, result.Resolved)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 3, result.Total())

	failed := result.Entries[1]
	assert.Nil(t, failed.Result)
	assert.Equal(t, "NotFoundError", failed.Kind)
	assert.Contains(t, failed.Error, "Could not find")
	assert.Contains(t, buf.String(), "failed:   Ghost Austin TX")
	assert.Contains(t, buf.String(), "resolved: 2, failed: 1 (total: 3)")
}

func TestRunMissingNameIsReported(t *testing.T) {
	invalid := &places.Error{Kind: places.KindInvalidInput, Op: places.OpQuery, Msg: "restaurantName is required"}
	l := &fakeLooker{fail: map[string]error{"": invalid}}
	var buf bytes.Buffer

	result, err := Run(context.Background(), l, []types.LookupRequest{{City: "Austin"}}, nil, &buf)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, "InvalidInput", result.Entries[0].Kind)
	assert.Contains(t, buf.String(), "(missing restaurantName)")
}

func TestRunSavesUnderOneRunID(t *testing.T) {
	l := &fakeLooker{fail: map[string]error{"Ghost": errors.New("boom")}}
	s := &fakeSaver{}

	result, err := Run(context.Background(), l, reqs("Joe's Diner", "Ghost", "Taqueria"), s, &bytes.Buffer{})
	require.NoError(t, err)

	assert.Equal(t, []string{"id-Joe's Diner", "id-Taqueria"}, s.saved)
	for _, id := range s.runIDs {
		assert.Equal(t, result.RunID, id)
	}
	assert.Empty(t, result.Entries[1].Kind, "plain errors carry no kind")
}

func TestRunSaveFailureCountsAsFailed(t *testing.T) {
	s := &fakeSaver{err: errors.New("disk full")}

	result, err := Run(context.Background(), &fakeLooker{}, reqs("Joe's Diner"), s, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 0, result.Resolved)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, "disk full", result.Entries[0].Error)
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	l := &fakeLooker{}

	result, err := Run(ctx, l, reqs("Joe's Diner", "Taqueria"), nil, &bytes.Buffer{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, l.calls)
	assert.Equal(t, 0, result.Total())
}

func TestRunEmpty(t *testing.T) {
	var buf bytes.Buffer
	result, err := Run(context.Background(), &fakeLooker{}, nil, nil, &buf)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Total())
	assert.Contains(t, buf.String(), "resolved: 0, failed: 0")
}

// --- ReadRequests ---

func TestParseRequests(t *testing.T) {
	tests := []struct {
		name string
		data string
		want []types.LookupRequest
	}{
		{
			name: "bare list",
			data: "- restaurantName: Joe's Diner\n  city: Austin\n  state: TX\n- restaurantName: Taqueria\n",
			want: []types.LookupRequest{
				{RestaurantName: "Joe's Diner", City: "Austin", State: "TX"},
				{RestaurantName: "Taqueria"},
			},
		},
		{
			name: "restaurants document",
			data: "restaurants:\n  - restaurantName: Joe's Diner\n    state: TX\n",
			want: []types.LookupRequest{{RestaurantName: "Joe's Diner", State: "TX"}},
		},
		{
			name: "empty file",
			data: "",
			want: nil,
		},
		{
			name: "comments only",
			data: "# nothing to look up yet\n",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRequests([]byte(tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRequestsRejectsGarbage(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unclosed flow list", "restaurants: [unclosed"},
		{"misspelled list key", "restaurant:\n  - restaurantName: Joe's Diner\n"},
		{"unknown key beside the list", "restaurants: []\nextra: true\n"},
		{"null list", "restaurants:\n"},
		{"scalar document", "just a string"},
		{"entry field typo", "restaurants:\n  - restaurantNam: Joe's Diner\n"},
		{"entry field typo in bare list", "- restaurantNam: Joe's Diner\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRequests([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "parsing batch file")
		})
	}
}

func TestReadRequests(t *testing.T) {
	path := filepath.Join(t.TempDir(), "requests.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- restaurantName: Joe's Diner\n"), 0o644))

	got, err := ReadRequests(path)
	require.NoError(t, err)
	assert.Equal(t, []types.LookupRequest{{RestaurantName: "Joe's Diner"}}, got)

	_, err = ReadRequests(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
