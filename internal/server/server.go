// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the restaurant lookup over HTTP. A POST with
// {restaurantName, city, state} returns {"success": true, "data": {...}};
// failures return {"error": ..., "message": ...} with a status code chosen by
// the error kind.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/pdiddy/restaurant-lookup/pkg/types"
)

// DefaultAddr is used when ServerConfig.Addr is empty.
const DefaultAddr = ":8080"

// Lookup routes. The second path matches the hosted function URL so existing
// front ends keep working.
const (
	RoutePath         = "/api/restaurant"
	FunctionRoutePath = "/.netlify/functions/fetch-restaurant-data"
)

const shutdownTimeout = 5 * time.Second

// Looker resolves one request into a normalized record. places.Client
// satisfies it.
type Looker interface {
	Lookup(ctx context.Context, req types.LookupRequest) (*types.LookupResult, error)
}

// Server wires the lookup handler, middleware, and metrics into a gin engine.
type Server struct {
	cfg     types.ServerConfig
	looker  Looker
	metrics *Metrics
	router  *gin.Engine
	log     *log.Logger
}

// New builds a server. reg receives the lookup metrics and backs /metrics;
// when nil a fresh registry is used. Access and error logs go to logw.
func New(l Looker, cfg types.ServerConfig, reg *prometheus.Registry, logw io.Writer) *Server {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	if logw == nil {
		logw = io.Discard
	}
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}

	s := &Server{
		cfg:     cfg,
		looker:  l,
		metrics: NewMetrics(reg),
		log:     log.New(logw, "", log.LstdFlags),
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.LoggerWithWriter(logw), gin.RecoveryWithWriter(logw))
	r.Use(requestID())
	r.Use(cors.New(corsConfig(cfg.AllowedOrigins)))

	r.POST(RoutePath, s.handleLookup)
	r.POST(FunctionRoutePath, s.handleLookup)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	s.router = r
	return s
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.cfg.Addr
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Printf("listening on %s", s.cfg.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving on %s: %w", s.cfg.Addr, err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
		return nil
	}
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodPost, http.MethodGet, http.MethodOptions},
		AllowHeaders:  []string{"Content-Type", requestIDHeader},
		ExposeHeaders: []string{"Content-Length", requestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			origins = nil
			break
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
