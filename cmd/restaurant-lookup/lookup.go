// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pdiddy/restaurant-lookup/internal/places"
	"github.com/pdiddy/restaurant-lookup/internal/store"
	"github.com/pdiddy/restaurant-lookup/pkg/types"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup <restaurant name...>",
	Short: "Look up one restaurant",
	Long: `Lookup searches Google Places for the restaurant, takes the first
candidate, fetches its details, and prints the normalized record. Narrow the
search with --city and --state.`,
	Example: `  restaurant-lookup lookup "Joe's Diner" --city Austin --state TX
  restaurant-lookup lookup "Franklin Barbecue" --format json --save`,
	RunE: runLookup,
}

func init() {
	lookupCmd.Flags().String("city", "", "city to narrow the search")
	lookupCmd.Flags().String("state", "", "state to narrow the search")
	lookupCmd.Flags().String("format", formatTable, "output format: table, json, or yaml")
	lookupCmd.Flags().Bool("save", false, "save the record to the local journal")

	rootCmd.AddCommand(lookupCmd)
}

func runLookup(cmd *cobra.Command, args []string) error {
	city, _ := cmd.Flags().GetString("city")
	state, _ := cmd.Flags().GetString("state")
	format, _ := cmd.Flags().GetString("format")
	save, _ := cmd.Flags().GetBool("save")

	req := types.LookupRequest{
		RestaurantName: strings.Join(args, " "),
		City:           city,
		State:          state,
	}
	if _, err := places.BuildQuery(req.RestaurantName, req.City, req.State); err != nil {
		return err
	}

	cfg := commandConfig(cmd)
	client, err := newPlacesClient(cfg.Places)
	if err != nil {
		return err
	}
	client.Log = os.Stderr

	res, err := client.Lookup(cmd.Context(), req)
	if err != nil {
		return err
	}

	if save {
		s, err := store.Open(cfg.Store)
		if err != nil {
			return err
		}
		defer s.Close()
		rec, err := s.Save(cmd.Context(), uuid.NewString(), res)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "saved: record %d\n", rec.ID)
	}

	return writeResult(cmd.OutOrStdout(), res, format)
}
