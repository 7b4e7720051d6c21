// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package places

import "strings"

// BuildQuery combines name, city, and state into a single text-search string.
// Tokens are trimmed and joined by one space in the fixed order name, city,
// state; empty optional tokens are left out. An empty name is InvalidInput.
func BuildQuery(name, city, state string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", &Error{Kind: KindInvalidInput, Op: OpQuery, Msg: "restaurantName is required"}
	}

	parts := []string{name}
	for _, p := range []string{city, state} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " "), nil
}
