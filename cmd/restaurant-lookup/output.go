// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/restaurant-lookup/pkg/types"
)

// Output formats for lookup.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

// successEnvelope matches the server's success body.
type successEnvelope struct {
	Success bool             `json:"success"`
	Data    types.Restaurant `json:"data"`
}

// writeResult renders res to w in format.
func writeResult(w io.Writer, res *types.LookupResult, format string) error {
	switch format {
	case formatTable, "":
		return writeTable(w, res)
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(successEnvelope{Success: true, Data: res.Restaurant})
	case formatYAML:
		data, err := yaml.Marshal(res)
		if err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unsupported format %q: use table, json, or yaml", format)
	}
}

func writeTable(w io.Writer, res *types.LookupResult) error {
	r := res.Restaurant
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := [][2]string{
		{"Name", r.Name},
		{"Address", r.Address},
		{"City", r.City},
		{"State", r.State},
		{"Zip", r.Zip},
		{"County", r.County},
		{"Phone", r.Phone},
		{"Website", r.WebsiteURL},
		{"Hours", r.HoursOfOperation},
		{"Rating", ratingText(r)},
		{"Location", locationText(r)},
		{"Place ID", res.PlaceID},
	}
	for _, row := range rows {
		fmt.Fprintf(tw, "%s:\t%s\n", row[0], row[1])
	}
	return tw.Flush()
}

func ratingText(r types.Restaurant) string {
	if r.GoogleRating == nil {
		return ""
	}
	s := r.YelpRating
	if r.TotalRatings != nil {
		s += " (" + strconv.Itoa(*r.TotalRatings) + " ratings)"
	}
	return s
}

func locationText(r types.Restaurant) string {
	if !r.HasCoordinates() {
		return ""
	}
	return strconv.FormatFloat(*r.Latitude, 'f', -1, 64) + ", " + strconv.FormatFloat(*r.Longitude, 'f', -1, 64)
}
