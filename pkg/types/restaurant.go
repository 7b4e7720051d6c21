// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the restaurant-lookup pipeline:
// the inbound lookup request, the normalized restaurant record, the lookup result
// that wraps it, and stage configuration.
package types

import "time"

// LookupRequest is the inbound request contract. RestaurantName is required;
// City and State narrow the text search when present.
type LookupRequest struct {
	RestaurantName string `json:"restaurantName" yaml:"restaurantName"`
	State          string `json:"state,omitempty" yaml:"state,omitempty"`
	City           string `json:"city,omitempty" yaml:"city,omitempty"`
}

// Restaurant is the normalized record produced for one lookup. String fields
// are empty when the provider has no data; pointer fields are nil (and omitted
// from JSON) when the provider omits them, never zero-filled.
type Restaurant struct {
	Name             string `json:"name" yaml:"name"`
	Address          string `json:"address" yaml:"address"`
	City             string `json:"city" yaml:"city"`
	State            string `json:"state" yaml:"state"`
	Zip              string `json:"zip" yaml:"zip"`
	County           string `json:"county" yaml:"county"`
	Phone            string `json:"phone" yaml:"phone"`
	WebsiteURL       string `json:"websiteURL" yaml:"websiteURL"`
	HoursOfOperation string `json:"hoursOfOperation" yaml:"hoursOfOperation"`

	// YelpRating is the rating as decimal text. It duplicates GoogleRating on
	// purpose: downstream forms consume the text copy.
	YelpRating string `json:"yelpRating" yaml:"yelpRating"`

	GoogleRating *float64 `json:"googleRating,omitempty" yaml:"googleRating,omitempty"`
	TotalRatings *int     `json:"totalRatings,omitempty" yaml:"totalRatings,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty" yaml:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty" yaml:"longitude,omitempty"`
}

// HasCoordinates reports whether both latitude and longitude are present.
func (r Restaurant) HasCoordinates() bool {
	return r.Latitude != nil && r.Longitude != nil
}

// LookupResult is the outcome of a successful pipeline run.
type LookupResult struct {
	// Query is the search string sent to the text-search endpoint.
	Query string `json:"query" yaml:"query"`

	// PlaceID is the provider identifier of the first candidate.
	PlaceID string `json:"placeId" yaml:"placeId"`

	// FormattedAddress is the provider's single-line address. It is not part
	// of the normalized record but is kept for the records journal.
	FormattedAddress string `json:"formattedAddress,omitempty" yaml:"formattedAddress,omitempty"`

	Restaurant Restaurant `json:"restaurant" yaml:"restaurant"`
}

// SavedRecord is a LookupResult as persisted in the records journal.
type SavedRecord struct {
	ID         int64     `json:"id" yaml:"id"`
	RunID      string    `json:"runId" yaml:"runId"`
	Geohash    string    `json:"geohash,omitempty" yaml:"geohash,omitempty"`
	LookedUpAt time.Time `json:"lookedUpAt" yaml:"lookedUpAt"`

	LookupResult `yaml:",inline"`
}
