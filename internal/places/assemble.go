// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package places

import (
	"strconv"
	"strings"

	"github.com/pdiddy/restaurant-lookup/pkg/types"
)

// FormatHours joins the weekday display strings with ", " in provider order.
// A nil structure yields "".
func FormatHours(h *OpeningHours) string {
	if h == nil {
		return ""
	}
	return strings.Join(h.WeekdayText, ", ")
}

// FormatRating renders a rating as shortest decimal text ("4.5", "4").
// A missing rating yields "".
func FormatRating(r *float64) string {
	if r == nil {
		return ""
	}
	return strconv.FormatFloat(*r, 'f', -1, 64)
}

// Assemble builds the normalized record from a details payload.
func Assemble(d *PlaceDetails) types.Restaurant {
	addr := NormalizeAddress(d.AddressComponents)
	lat, lng := d.Location()

	return types.Restaurant{
		Name:             d.Name,
		Address:          addr.Street,
		City:             addr.City,
		State:            addr.State,
		Zip:              addr.Zip,
		County:           addr.County,
		Phone:            d.Phone,
		WebsiteURL:       d.Website,
		HoursOfOperation: FormatHours(d.OpeningHours),
		YelpRating:       FormatRating(d.Rating),
		GoogleRating:     d.Rating,
		TotalRatings:     d.UserRatingsTotal,
		Latitude:         lat,
		Longitude:        lng,
	}
}
