// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package places

import (
	"context"
	"net/url"
)

// detailFields is the field mask sent to the details endpoint. Without it the
// provider returns its default field set and the payload shape changes.
const detailFields = "name,formatted_address,formatted_phone_number,website,opening_hours,rating,user_ratings_total,geometry,address_components"

// AddressComponent is one typed fragment of a postal address.
type AddressComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

// HasType reports whether t is among the component's type tags.
func (a AddressComponent) HasType(t string) bool {
	for _, typ := range a.Types {
		if typ == t {
			return true
		}
	}
	return false
}

// OpeningHours is the weekly-hours structure.
type OpeningHours struct {
	WeekdayText []string `json:"weekday_text"`
}

// LatLng is a coordinate pair. Either side may be missing in the payload.
type LatLng struct {
	Lat *float64 `json:"lat"`
	Lng *float64 `json:"lng"`
}

// Geometry wraps the place location.
type Geometry struct {
	Location *LatLng `json:"location"`
}

// PlaceDetails is the details payload. Optional provider fields are pointers,
// so absence is decided once at decode time.
type PlaceDetails struct {
	Name              string             `json:"name"`
	FormattedAddress  string             `json:"formatted_address"`
	Phone             string             `json:"formatted_phone_number"`
	Website           string             `json:"website"`
	OpeningHours      *OpeningHours      `json:"opening_hours"`
	Rating            *float64           `json:"rating"`
	UserRatingsTotal  *int               `json:"user_ratings_total"`
	Geometry          *Geometry          `json:"geometry"`
	AddressComponents []AddressComponent `json:"address_components"`
}

// Location returns the coordinates, each nil when the geometry/location
// structure or the coordinate itself is missing.
func (d *PlaceDetails) Location() (lat, lng *float64) {
	if d.Geometry == nil || d.Geometry.Location == nil {
		return nil, nil
	}
	return d.Geometry.Location.Lat, d.Geometry.Location.Lng
}

type detailsResponse struct {
	Status string        `json:"status"`
	Result *PlaceDetails `json:"result"`
}

// Details fetches the fixed field set for placeID. A response without a
// result payload is NotFound.
func (c *Client) Details(ctx context.Context, placeID string) (*PlaceDetails, error) {
	params := url.Values{
		"place_id": {placeID},
		"fields":   {detailFields},
	}

	var dr detailsResponse
	if err := c.get(ctx, OpDetails, detailsPath, params, &dr); err != nil {
		return nil, err
	}

	if dr.Result == nil {
		return nil, &Error{Kind: KindNotFound, Op: OpDetails, Msg: "Could not fetch place details"}
	}
	return dr.Result, nil
}
