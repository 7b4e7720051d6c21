// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/restaurant-lookup/pkg/types"
)

// --- test helpers ---

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(types.StoreConfig{DBPath: filepath.Join(t.TempDir(), "nested", "restaurants.db")})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	fixed := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }
	return s
}

func fptr(f float64) *float64 { return &f }
func iptr(n int) *int { return &n }

func joesDiner() *types.LookupResult {
	return &types.LookupResult{
		Query:            "Joe's Diner Austin TX",
		PlaceID:          "ChIJ-joes",
		FormattedAddress: "12 Main St, Austin, TX 78701, USA",
		Restaurant: types.Restaurant{
			Name:             "Joe's Diner",
			Address:          "12 Main St",
			City:             "Austin",
			State:            "TX",
			Zip:              "78701",
			County:           "Travis County",
			Phone:            "(512) 555-0100",
			WebsiteURL:       "https://joesdiner.example.com",
			HoursOfOperation: "Monday: Closed",
			YelpRating:       "4.5",
			GoogleRating:     fptr(4.5),
			TotalRatings:     iptr(321),
			Latitude:         fptr(30.27),
			Longitude:        fptr(-97.74),
		},
	}
}

func bareRecord() *types.LookupResult {
	return &types.LookupResult{
		Query:      "Taqueria",
		PlaceID:    "ChIJ-taq",
		Restaurant: types.Restaurant{Name: "Taqueria"},
	}
}

// --- Save / List ---

func TestSaveAndList(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	saved, err := s.Save(ctx, "run-1", joesDiner())
	require.NoError(t, err)
	assert.NotZero(t, saved.ID)
	assert.Equal(t, "run-1", saved.RunID)
	assert.Len(t, saved.Geohash, geohashPrecision)

	records, err := s.List(ctx, ListOptions{})
	require.NoError(t, err)
	require.Len(t, records, 1)

	got := records[0]
	assert.Equal(t, saved.ID, got.ID)
	assert.Equal(t, saved.Geohash, got.Geohash)
	assert.Equal(t, *joesDiner(), got.LookupResult)
	assert.True(t, got.LookedUpAt.Equal(time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)))
}

func TestSaveKeepsAbsentNumbersAbsent(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	saved, err := s.Save(ctx, "run-1", bareRecord())
	require.NoError(t, err)
	assert.Empty(t, saved.Geohash, "no coordinates, no geohash")

	records, err := s.List(ctx, ListOptions{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	r := records[0].Restaurant
	assert.Nil(t, r.GoogleRating)
	assert.Nil(t, r.TotalRatings)
	assert.Nil(t, r.Latitude)
	assert.Nil(t, r.Longitude)
	assert.Equal(t, "", r.YelpRating)
}

func TestListFilters(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	joes, err := s.Save(ctx, "run-1", joesDiner())
	require.NoError(t, err)
	_, err = s.Save(ctx, "run-2", bareRecord())
	require.NoError(t, err)
	_, err = s.Save(ctx, "run-2", joesDiner())
	require.NoError(t, err)

	tests := []struct {
		name string
		opts ListOptions
		want int
	}{
		{"all", ListOptions{}, 3},
		{"by run", ListOptions{RunID: "run-2"}, 2},
		{"by place", ListOptions{PlaceID: "ChIJ-joes"}, 2},
		{"by geohash prefix", ListOptions{GeohashPrefix: joes.Geohash[:4]}, 2},
		{"geohash prefix elsewhere", ListOptions{GeohashPrefix: "u4pr"}, 0},
		{"limit", ListOptions{Limit: 1}, 1},
		{"no limit", ListOptions{Limit: -1}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := s.List(ctx, tt.opts)
			require.NoError(t, err)
			assert.Len(t, records, tt.want)
		})
	}
}

func TestListNewestFirst(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()

	first, err := s.Save(ctx, "run-1", bareRecord())
	require.NoError(t, err)
	second, err := s.Save(ctx, "run-1", joesDiner())
	require.NoError(t, err)

	records, err := s.List(ctx, ListOptions{})
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, second.ID, records[0].ID)
	assert.Equal(t, first.ID, records[1].ID)
}

func TestOpenReusesExistingDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "restaurants.db")

	s1, err := Open(types.StoreConfig{DBPath: path})
	require.NoError(t, err)
	_, err = s1.Save(context.Background(), "run-1", joesDiner())
	require.NoError(t, err)
	require.NoError(t, s1.Close())

	s2, err := Open(types.StoreConfig{DBPath: path})
	require.NoError(t, err)
	defer s2.Close()

	records, err := s2.List(context.Background(), ListOptions{})
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

// --- Export ---

func TestExportYAML(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	_, err := s.Save(ctx, "run-1", joesDiner())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, s.Export(ctx, &buf, FormatYAML, ListOptions{}))

	var got []types.SavedRecord
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "ChIJ-joes", got[0].PlaceID)
	assert.Equal(t, "Joe's Diner", got[0].Restaurant.Name)
	assert.Contains(t, buf.String(), "yelpRating: \"4.5\"")
}

func TestExportJSON(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	_, err := s.Save(ctx, "run-1", joesDiner())
	require.NoError(t, err)
	_, err = s.Save(ctx, "run-1", bareRecord())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, s.Export(ctx, &buf, FormatJSON, ListOptions{}))

	var got []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)

	bare := got[0]["restaurant"].(map[string]any)
	assert.Equal(t, "Taqueria", bare["name"])
	_, hasLat := bare["latitude"]
	assert.False(t, hasLat)

	joes := got[1]["restaurant"].(map[string]any)
	assert.Equal(t, 4.5, joes["googleRating"])
	assert.Equal(t, "4.5", joes["yelpRating"])
}

func TestExportUnsupportedFormat(t *testing.T) {
	s := testStore(t)
	err := s.Export(context.Background(), &bytes.Buffer{}, "csv", ListOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestExportFile(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	_, err := s.Save(ctx, "run-1", joesDiner())
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "out", "records.json")
	require.NoError(t, s.ExportFile(ctx, path, FormatJSON, ListOptions{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ChIJ-joes")
}
