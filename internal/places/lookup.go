// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package places

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/restaurant-lookup/pkg/types"
)

// Lookup runs the full pipeline for req: build the query, resolve the first
// candidate, fetch its details, and assemble the normalized record. Stages run
// strictly in order and the first failure ends the run; no partial result is
// returned. Input is validated before the credential, and both before any
// network call.
func (c *Client) Lookup(ctx context.Context, req types.LookupRequest) (*types.LookupResult, error) {
	query, err := BuildQuery(req.RestaurantName, req.City, req.State)
	if err != nil {
		return nil, err
	}
	if c == nil || c.apiKey == "" {
		return nil, &Error{Kind: KindMissingConfig, Op: OpConfig, Msg: "API key not configured"}
	}

	w := c.Log
	if w == nil {
		w = io.Discard
	}
	fmt.Fprintf(w, "searching: %s\n", query)

	cand, err := c.Resolve(ctx, query)
	if err != nil {
		return nil, err
	}

	details, err := c.Details(ctx, cand.PlaceID)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(w, "resolved: %s (%s)\n", details.Name, cand.PlaceID)

	return &types.LookupResult{
		Query:            query,
		PlaceID:          cand.PlaceID,
		FormattedAddress: details.FormattedAddress,
		Restaurant:       Assemble(details),
	}, nil
}
