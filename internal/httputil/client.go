// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil builds the outbound HTTP client shared by the lookup
// commands and the server.
package httputil

import (
	"net/http"

	"github.com/pdiddy/restaurant-lookup/pkg/types"
)

// DefaultUserAgent is sent when the config leaves UserAgent empty.
const DefaultUserAgent = "restaurant-lookup/0.1"

// NewClient returns an *http.Client with cfg's timeout that stamps every
// request with cfg's User-Agent. A zero Timeout leaves deadlines to the
// request context.
func NewClient(cfg types.HTTPConfig) *http.Client {
	ua := cfg.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	return &http.Client{
		Timeout:   cfg.Timeout,
		Transport: &userAgentTransport{base: http.DefaultTransport, userAgent: ua},
	}
}

// userAgentTransport sets User-Agent on requests that do not carry one.
type userAgentTransport struct {
	base      http.RoundTripper
	userAgent string
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") != "" {
		return t.base.RoundTrip(req)
	}
	r := req.Clone(req.Context())
	r.Header.Set("User-Agent", t.userAgent)
	return t.base.RoundTrip(r)
}
