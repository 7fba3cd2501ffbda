package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/gridpath/internal/server"
	"github.com/matzehuels/gridpath/pkg/cache"
	"github.com/matzehuels/gridpath/pkg/observability"
	"github.com/matzehuels/gridpath/pkg/pipeline"
)

// serveCommand creates the serve command, which runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr        string
		noCache     bool
		maxGridSize int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Long: `Serve the gridpath HTTP API.

Endpoints:
  GET  /healthz          liveness probe
  GET  /v1/version       build information
  GET  /v1/algorithms    registered algorithms
  GET  /v1/random        random grid (?size, ?seed, ?max_weight)
  POST /v1/solve         solve {"cells": [[...]], "algorithms": [...]}
  POST /v1/render        render a solved grid (?format, ?viz)

The server shuts down gracefully on SIGINT or SIGTERM.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if addr == "" {
				addr = c.Config.Serve.Addr
			}

			store, err := c.newCache(ctx, noCache)
			if err != nil {
				return fmt.Errorf("initialize cache: %w", err)
			}
			runner := pipeline.NewRunner(store, cache.NewScopedKeyer(cache.NewDefaultKeyer(), "api:"), c.Logger)
			defer runner.Close()

			if c.verbose {
				observability.NewLogHooks(c.Logger).Register()
				defer observability.Reset()
			}

			srv := server.New(runner, c.Logger, server.WithMaxGridSize(maxGridSize))
			printInfo("Listening on %s", StyleHighlight.Render("http://"+addr))
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default "+server.DefaultAddr+")")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().IntVar(&maxGridSize, "max-size", server.DefaultMaxGridSize, "largest grid side accepted")

	return cmd
}
