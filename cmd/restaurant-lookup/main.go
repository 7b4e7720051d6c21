// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the restaurant-lookup CLI.
// Subcommands: lookup, batch, serve, records, version.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/restaurant-lookup/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds API keys loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// secretDefault returns fallback when it is set, otherwise the secret stored
// under key, otherwise "".
func secretDefault(key, fallback string) string {
	if fallback != "" {
		return fallback
	}
	if v, ok := loadedSecrets[key]; ok {
		return v
	}
	return ""
}

// rootCmd is the base command for the restaurant-lookup CLI.
var rootCmd = &cobra.Command{
	Use:   "restaurant-lookup",
	Short: "Resolve restaurants into normalized records via Google Places",
	Long: `restaurant-lookup turns a restaurant name, with optional city and state,
into a flat record: street address, city, state, zip, county, phone, website,
hours, rating, and coordinates.

Look up one restaurant with lookup, many with batch, or run the HTTP endpoint
with serve. Results can be saved to a local SQLite journal and exported with
records.

The Places API key is read from --api-key, the places.api_key config entry,
RESTAURANT_LOOKUP_PLACES_API_KEY or GOOGLE_PLACES_API_KEY, or
.secrets/google-places-api-key, in that order. A .env file in the working
directory is loaded first.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := secrets.LoadDotEnv(".env"); err != nil {
			return err
		}
		s, err := secrets.Load(".secrets/", os.Stderr)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./restaurant-lookup.yaml or ~/.config/restaurant-lookup/config.yaml)")
	rootCmd.PersistentFlags().String("api-key", "", "Google Places API key")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("restaurant-lookup")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "restaurant-lookup"))
		}
	}

	setDefaults(viper.GetViper())

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// setDefaults installs env bindings and defaults on v.
func setDefaults(v *viper.Viper) {
	v.SetEnvPrefix("RESTAURANT_LOOKUP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("places.api_key", "RESTAURANT_LOOKUP_PLACES_API_KEY", "GOOGLE_PLACES_API_KEY")

	v.SetDefault("places.timeout", defaultTimeout)
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("store.db_path", "data/restaurants.db")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
