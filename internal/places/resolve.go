// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package places

import (
	"context"
	"fmt"
	"net/url"
)

// Candidate is one entry of a text-search result list.
type Candidate struct {
	PlaceID string `json:"place_id"`
	Name    string `json:"name"`
}

type textSearchResponse struct {
	Status  string      `json:"status"`
	Results []Candidate `json:"results"`
}

// Resolve runs a text search for query and returns the first candidate.
// There is no scoring or filtering: position zero wins. An empty result list
// is NotFound carrying the query; a first candidate without a place ID is a
// Parse error.
func (c *Client) Resolve(ctx context.Context, query string) (Candidate, error) {
	params := url.Values{"query": {query}}

	var sr textSearchResponse
	if err := c.get(ctx, OpSearch, textSearchPath, params, &sr); err != nil {
		return Candidate{}, err
	}

	if len(sr.Results) == 0 {
		return Candidate{}, &Error{
			Kind:  KindNotFound,
			Op:    OpSearch,
			Query: query,
			Msg:   fmt.Sprintf("Could not find %q on Google Places", query),
		}
	}
	first := sr.Results[0]
	if first.PlaceID == "" {
		return Candidate{}, &Error{
			Kind:  KindParse,
			Op:    OpSearch,
			Query: query,
			Msg:   "first candidate has no place_id",
		}
	}
	return first, nil
}
