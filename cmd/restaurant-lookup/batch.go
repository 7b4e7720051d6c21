// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/restaurant-lookup/internal/batch"
	"github.com/pdiddy/restaurant-lookup/internal/store"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Look up every restaurant listed in a YAML file",
	Long: `Batch reads a YAML list of {restaurantName, city, state} entries and looks
each one up in order. A failed entry is reported and counted; the rest still
run. With --save, every resolved record is written to the local journal under
one run ID.`,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().String("input", "", "YAML file of lookup requests (required)")
	batchCmd.Flags().Bool("save", false, "save resolved records to the local journal")
	_ = batchCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	input, _ := cmd.Flags().GetString("input")
	save, _ := cmd.Flags().GetBool("save")

	reqs, err := batch.ReadRequests(input)
	if err != nil {
		return err
	}

	cfg := commandConfig(cmd)
	client, err := newPlacesClient(cfg.Places)
	if err != nil {
		return err
	}
	client.Log = os.Stderr

	var saver batch.Saver
	if save {
		s, err := store.Open(cfg.Store)
		if err != nil {
			return err
		}
		defer s.Close()
		saver = s
	}

	result, err := batch.Run(cmd.Context(), client, reqs, saver, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	if save {
		fmt.Fprintf(os.Stderr, "run: %s\n", result.RunID)
	}
	if result.HasFailures() {
		return fmt.Errorf("%d lookup(s) failed", result.Failed)
	}
	return nil
}
