// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/restaurant-lookup/internal/httputil"
	"github.com/pdiddy/restaurant-lookup/internal/places"
	"github.com/pdiddy/restaurant-lookup/internal/secrets"
	"github.com/pdiddy/restaurant-lookup/pkg/types"
)

const defaultTimeout = 10 * time.Second

// loadConfig reads the resolved settings from v. The API key comes from
// apiKeyFlag first, then v, then the secrets directory.
func loadConfig(v *viper.Viper, apiKeyFlag string) types.Config {
	apiKey := strings.TrimSpace(apiKeyFlag)
	if apiKey == "" {
		apiKey = strings.TrimSpace(v.GetString("places.api_key"))
	}

	return types.Config{
		Places: types.PlacesConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   v.GetDuration("places.timeout"),
				UserAgent: httputil.DefaultUserAgent + " (" + version + ")",
			},
			APIKey:  secretDefault(secrets.PlacesAPIKey, apiKey),
			BaseURL: v.GetString("places.base_url"),
		},
		Server: types.ServerConfig{
			Addr:           v.GetString("server.addr"),
			AllowedOrigins: v.GetStringSlice("server.allowed_origins"),
		},
		Store: types.StoreConfig{
			DBPath: v.GetString("store.db_path"),
		},
	}
}

// commandConfig resolves settings for cmd using the global viper instance.
func commandConfig(cmd *cobra.Command) types.Config {
	flag, _ := cmd.Flags().GetString("api-key")
	return loadConfig(viper.GetViper(), flag)
}

// newPlacesClient builds a Places client from cfg. A missing key surfaces as
// a MissingConfig error before any request is made.
func newPlacesClient(cfg types.PlacesConfig) (*places.Client, error) {
	return places.NewClient(httputil.NewClient(cfg.HTTPConfig), cfg)
}
