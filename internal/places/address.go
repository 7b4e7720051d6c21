// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package places

import "strings"

// Address type tags, in rule order.
const (
	TypeStreetNumber = "street_number"
	TypeRoute        = "route"
	TypeLocality     = "locality"
	TypeAdminArea1   = "administrative_area_level_1"
	TypePostalCode   = "postal_code"
	TypeAdminArea2   = "administrative_area_level_2"
)

// Address holds the discrete fields flattened from an address-component list.
type Address struct {
	Street string
	City   string
	State  string
	Zip    string
	County string
}

// NormalizeAddress flattens components in provider order. Each component is
// handled by the first rule whose tag it carries:
//
//	street_number                 street number = long name + " "
//	route                         long name appended to the street
//	locality                      city = long name
//	administrative_area_level_1   state = short name
//	postal_code                   zip = long name
//	administrative_area_level_2   county = long name
//
// Later components overwrite earlier ones except route, which appends. The
// street number always leads the street, even when route arrives first.
func NormalizeAddress(components []AddressComponent) Address {
	var (
		a      Address
		number string
		route  string
	)

	for _, c := range components {
		switch {
		case c.HasType(TypeStreetNumber):
			number = c.LongName + " "
		case c.HasType(TypeRoute):
			route += c.LongName
		case c.HasType(TypeLocality):
			a.City = c.LongName
		case c.HasType(TypeAdminArea1):
			a.State = c.ShortName
		case c.HasType(TypePostalCode):
			a.Zip = c.LongName
		case c.HasType(TypeAdminArea2):
			a.County = c.LongName
		}
	}

	a.Street = strings.TrimSpace(number + route)
	return a
}
