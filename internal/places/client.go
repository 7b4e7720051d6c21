// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package places resolves a restaurant by name into a normalized record using
// the Google Places web service. A lookup is two dependent calls, a text search
// that yields a candidate and a details fetch for that candidate, followed by
// flattening the nested details payload into types.Restaurant.
package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/restaurant-lookup/pkg/types"
)

// placesAPIBase is the Places web service prefix. Declared as a var so tests
// can substitute an httptest server.
var placesAPIBase = "https://maps.googleapis.com/maps/api/place"

const (
	textSearchPath = "/textsearch/json"
	detailsPath    = "/details/json"
)

// Provider statuses that count as success.
const (
	StatusOK          = "OK"
	StatusZeroResults = "ZERO_RESULTS"
)

// Client talks to the Places web service. It holds no per-request state and
// is safe to reuse across lookups.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string

	// Log receives progress lines. Nil discards them.
	Log io.Writer
}

// NewClient returns a Client for cfg. A missing API key is a configuration
// failure reported as MissingConfig. A nil httpClient uses http.DefaultClient;
// callers normally pass one from httputil.NewClient.
func NewClient(httpClient *http.Client, cfg types.PlacesConfig) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, &Error{Kind: KindMissingConfig, Op: OpConfig, Msg: "API key not configured"}
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	base := cfg.BaseURL
	if base == "" {
		base = placesAPIBase
	}
	return &Client{
		httpClient: httpClient,
		apiKey:     strings.TrimSpace(cfg.APIKey),
		baseURL:    strings.TrimRight(base, "/"),
	}, nil
}

// envelope holds the fields every Places response carries.
type envelope struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
}

// get issues one GET against path with params plus the credential, reads the
// whole body, and decodes it into out. The provider status decides success:
// OK and ZERO_RESULTS decode normally, anything else is RemoteAPI.
func (c *Client) get(ctx context.Context, op, path string, params url.Values, out any) error {
	q := url.Values{}
	for k, v := range params {
		q[k] = v
	}
	q.Set("key", c.apiKey)

	// Parse the endpoint before the credential is attached so a bad base URL
	// cannot echo the key back in its error.
	endpoint, err := url.Parse(c.baseURL + path)
	if err != nil {
		return &Error{Kind: KindTransport, Op: op, Msg: "invalid base URL", Err: err}
	}
	endpoint.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return &Error{Kind: KindTransport, Op: op, Msg: "creating request", Err: redactKey(err, c.apiKey)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &Error{Kind: KindTransport, Op: op, Msg: "request failed", Err: redactKey(err, c.apiKey)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Kind: KindTransport, Op: op, Msg: "reading response", Err: err}
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return &Error{Kind: KindParse, Op: op, Msg: fmt.Sprintf("decoding response (HTTP %d)", resp.StatusCode), Err: err}
	}
	if env.Status != StatusOK && env.Status != StatusZeroResults {
		return &Error{Kind: KindRemoteAPI, Op: op, Status: env.Status, Msg: env.ErrorMessage}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &Error{Kind: KindParse, Op: op, Msg: "decoding response", Err: err}
	}
	return nil
}

// redactKey strips the credential from the request URL that url.Error
// carries, keeping the cause chain intact.
func redactKey(err error, key string) error {
	var uerr *url.Error
	if !errors.As(err, &uerr) {
		return err
	}
	redacted := strings.ReplaceAll(uerr.URL, url.QueryEscape(key), "REDACTED")
	redacted = strings.ReplaceAll(redacted, key, "REDACTED")
	return &url.Error{
		Op:  uerr.Op,
		URL: redacted,
		Err: uerr.Err,
	}
}
