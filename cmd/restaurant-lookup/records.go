// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pdiddy/restaurant-lookup/internal/store"
)

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "List and export saved lookup records",
	Long: `Records reads the local SQLite journal that lookup --save and batch --save
write to. Lookups never read from it.`,
}

var recordsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved records, newest first",
	RunE:  runRecordsList,
}

var recordsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export saved records to YAML or JSON",
	RunE:  runRecordsExport,
}

func init() {
	for _, c := range []*cobra.Command{recordsListCmd, recordsExportCmd} {
		c.Flags().String("geohash", "", "only records whose geohash starts with this prefix")
		c.Flags().String("run", "", "only records from this run ID")
		c.Flags().String("place", "", "only records for this place ID")
	}
	recordsListCmd.Flags().Int("limit", 50, "maximum number of records (negative for all)")
	recordsExportCmd.Flags().String("format", store.FormatYAML, "export format: yaml or json")
	recordsExportCmd.Flags().String("out", "", "output file (default: stdout)")

	recordsCmd.AddCommand(recordsListCmd, recordsExportCmd)
	rootCmd.AddCommand(recordsCmd)
}

func listOptions(cmd *cobra.Command) store.ListOptions {
	geo, _ := cmd.Flags().GetString("geohash")
	run, _ := cmd.Flags().GetString("run")
	place, _ := cmd.Flags().GetString("place")
	return store.ListOptions{GeohashPrefix: geo, RunID: run, PlaceID: place}
}

func runRecordsList(cmd *cobra.Command, args []string) error {
	opts := listOptions(cmd)
	opts.Limit, _ = cmd.Flags().GetInt("limit")
	if opts.Limit == 0 {
		opts.Limit = -1
	}

	s, err := store.Open(commandConfig(cmd).Store)
	if err != nil {
		return err
	}
	defer s.Close()

	records, err := s.List(cmd.Context(), opts)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "no records")
		return nil
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tLOOKED UP\tNAME\tCITY\tSTATE\tGEOHASH\tPLACE ID")
	for _, r := range records {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.ID, r.LookedUpAt.Format("2006-01-02 15:04"), r.Restaurant.Name,
			r.Restaurant.City, r.Restaurant.State, r.Geohash, r.PlaceID)
	}
	return tw.Flush()
}

func runRecordsExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")
	out, _ := cmd.Flags().GetString("out")
	opts := listOptions(cmd)

	s, err := store.Open(commandConfig(cmd).Store)
	if err != nil {
		return err
	}
	defer s.Close()

	if out == "" {
		return s.Export(cmd.Context(), cmd.OutOrStdout(), format, opts)
	}
	if err := s.ExportFile(cmd.Context(), out, format, opts); err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "exported: %s\n", out)
	return nil
}
