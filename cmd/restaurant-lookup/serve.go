// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/pdiddy/restaurant-lookup/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve lookups over HTTP",
	Long: `Serve runs the lookup endpoint. POST {"restaurantName", "city", "state"} to
/api/restaurant (or /.netlify/functions/fetch-restaurant-data) and receive
{"success": true, "data": {...}}. /healthz reports liveness and /metrics
exposes Prometheus metrics.

The server refuses to start without a Places API key.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default from server.addr, :8080)")
	serveCmd.Flags().StringSlice("allowed-origins", nil, "CORS origins (default: all)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := commandConfig(cmd)
	if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
		cfg.Server.Addr = addr
	}
	if origins, _ := cmd.Flags().GetStringSlice("allowed-origins"); len(origins) > 0 {
		cfg.Server.AllowedOrigins = origins
	}

	client, err := newPlacesClient(cfg.Places)
	if err != nil {
		return err
	}
	client.Log = os.Stderr

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(client, cfg.Server, prometheus.NewRegistry(), os.Stderr)
	return srv.Run(ctx)
}
