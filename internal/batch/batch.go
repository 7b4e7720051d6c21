// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package batch runs the lookup pipeline over a list of requests read from a
// YAML file. Each request is looked up on its own, in file order; a failed
// entry is reported and counted but never stops the run.
package batch

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/restaurant-lookup/internal/places"
	"github.com/pdiddy/restaurant-lookup/pkg/types"
)

// Looker resolves one request into a normalized record.
type Looker interface {
	Lookup(ctx context.Context, req types.LookupRequest) (*types.LookupResult, error)
}

// Saver persists a successful lookup. store.Store satisfies it.
type Saver interface {
	Save(ctx context.Context, runID string, res *types.LookupResult) (*types.SavedRecord, error)
}

// Entry is the outcome for one request.
type Entry struct {
	Request types.LookupRequest `json:"request" yaml:"request"`
	Result  *types.LookupResult `json:"result,omitempty" yaml:"result,omitempty"`
	Error   string              `json:"error,omitempty" yaml:"error,omitempty"`
	Kind    string              `json:"kind,omitempty" yaml:"kind,omitempty"`
}

// Result holds the outcome of a batch run.
type Result struct {
	RunID    string  `json:"runId" yaml:"runId"`
	Resolved int     `json:"resolved" yaml:"resolved"`
	Failed   int     `json:"failed" yaml:"failed"`
	Entries  []Entry `json:"entries" yaml:"entries"`
}

// Total returns the number of requests processed.
func (r Result) Total() int {
	return r.Resolved + r.Failed
}

// HasFailures reports whether any request failed.
func (r Result) HasFailures() bool {
	return r.Failed > 0
}

// requestFile is the document form of a batch input file. A bare YAML list
// of requests is accepted too.
type requestFile struct {
	Restaurants *[]types.LookupRequest `yaml:"restaurants"`
}

// ReadRequests loads lookup requests from a YAML file.
func ReadRequests(path string) ([]types.LookupRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return ParseRequests(data)
}

// ParseRequests decodes either a top-level list of requests or a document
// with a "restaurants" list. Unknown keys are rejected, as is a document
// without the list. An empty file yields no requests.
func ParseRequests(data []byte) ([]types.LookupRequest, error) {
	var list []types.LookupRequest
	err := decodeStrict(data, &list)
	if err == nil || errors.Is(err, io.EOF) {
		return list, nil
	}

	var doc requestFile
	if err := decodeStrict(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing batch file: %w", err)
	}
	if doc.Restaurants == nil {
		return nil, fmt.Errorf("parsing batch file: no %q list", "restaurants")
	}
	return *doc.Restaurants, nil
}

func decodeStrict(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(out)
}

// Run looks up every request in order and, when saver is non-nil, saves each
// success under a fresh run ID. Per-entry status goes to w. Run stops early
// only when ctx is cancelled.
func Run(ctx context.Context, l Looker, reqs []types.LookupRequest, saver Saver, w io.Writer) (Result, error) {
	result := Result{RunID: uuid.NewString()}

	for _, req := range reqs {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		entry := Entry{Request: req}
		res, err := l.Lookup(ctx, req)
		if err == nil && saver != nil {
			if _, serr := saver.Save(ctx, result.RunID, res); serr != nil {
				err = serr
			}
		}

		if err != nil {
			entry.Error = err.Error()
			if k := places.KindOf(err); k != places.KindUnknown {
				entry.Kind = k.String()
			}
			fmt.Fprintf(w, "failed:   %s (%v)\n", label(req), err)
			result.Failed++
		} else {
			entry.Result = res
			fmt.Fprintf(w, "resolved: %s -> %s\n", label(req), res.Restaurant.Name)
			result.Resolved++
		}
		result.Entries = append(result.Entries, entry)
	}

	fmt.Fprintf(w, "\nresolved: %d, failed: %d (total: %d)\n", result.Resolved, result.Failed, result.Total())
	return result, nil
}

// label names a request in progress output.
func label(req types.LookupRequest) string {
	if q, err := places.BuildQuery(req.RestaurantName, req.City, req.State); err == nil {
		return q
	}
	return "(missing restaurantName)"
}
