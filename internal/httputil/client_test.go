// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/restaurant-lookup/pkg/types"
)

func userAgentServer(t *testing.T) (*httptest.Server, <-chan string) {
	t.Helper()
	got := make(chan string, 1)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got <- r.Header.Get("User-Agent")
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(ts.Close)
	return ts, got
}

func TestNewClient_SetsUserAgent(t *testing.T) {
	tests := []struct {
		name string
		cfg  types.HTTPConfig
		want string
	}{
		{"configured", types.HTTPConfig{UserAgent: "restaurant-lookup/test"}, "restaurant-lookup/test"},
		{"default", types.HTTPConfig{}, DefaultUserAgent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, got := userAgentServer(t)
			client := NewClient(tt.cfg)

			resp, err := client.Get(ts.URL)
			require.NoError(t, err)
			resp.Body.Close()

			assert.Equal(t, tt.want, <-got)
		})
	}
}

func TestNewClient_KeepsExplicitUserAgent(t *testing.T) {
	ts, got := userAgentServer(t)
	client := NewClient(types.HTTPConfig{UserAgent: "configured"})

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, ts.URL, nil)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "per-request")

	resp, err := client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "per-request", <-got)
}

func TestNewClient_Timeout(t *testing.T) {
	client := NewClient(types.HTTPConfig{Timeout: 5 * time.Second})
	assert.Equal(t, 5*time.Second, client.Timeout)
}
