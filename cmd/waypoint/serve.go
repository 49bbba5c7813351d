package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aretw0/waypoint"
	httpAdapter "github.com/aretw0/waypoint/pkg/adapters/http"
	"github.com/aretw0/waypoint/pkg/domain"
	"github.com/aretw0/waypoint/pkg/observability"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long:  `Serves a navigation host over a JSON API, with server-sent events and Prometheus metrics.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := getLogger(cmd)
			if err != nil {
				return err
			}
			g, err := loadGraph(cmd, logger)
			if err != nil {
				return err
			}
			loc, err := buildLocalizer(cmd)
			if err != nil {
				return err
			}

			reg := prometheus.NewRegistry()
			reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
			metrics := observability.NewMetrics(reg)
			streams := httpAdapter.NewStreamManager(logger)

			host, err := waypoint.New(g,
				waypoint.WithLogger(logger),
				waypoint.WithHooks(metrics.Hooks().Merge(observability.LogHooks(logger)).Merge(streams.Hooks())),
			)
			if err != nil {
				return err
			}
			if err := host.Render(); err != nil && !errors.Is(err, domain.ErrNoContent) {
				return err
			}

			api := httpAdapter.NewServer(host,
				httpAdapter.WithStreams(streams),
				httpAdapter.WithLocalizer(loc),
				httpAdapter.WithVersion(waypoint.Version),
				httpAdapter.WithLogger(logger),
			)
			r := chi.NewRouter()
			r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
			r.Mount("/", api.Routes())

			port, _ := cmd.Flags().GetString("port")
			srv := &http.Server{
				Addr:              ":" + port,
				Handler:           r,
				ReadHeaderTimeout: 5 * time.Second,
			}
			out := cmd.OutOrStdout()

			// Channel to listen for errors coming from the listener.
			serverErrors := make(chan error, 1)
			go func() {
				fmt.Fprintf(out, "Starting Waypoint Server on %s\n", srv.Addr)
				serverErrors <- srv.ListenAndServe()
			}()

			shutdown := make(chan os.Signal, 1)
			signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(shutdown)

			select {
			case err := <-serverErrors:
				return fmt.Errorf("server error: %w", err)

			case sig := <-shutdown:
				fmt.Fprintf(out, "\nStart shutdown... Signal: %v\n", sig)

				// Give outstanding requests a deadline for completion.
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()

				if err := srv.Shutdown(ctx); err != nil {
					logger.Warn("graceful shutdown did not complete", "timeout", 5*time.Second, "error", err)
					if err := srv.Close(); err != nil {
						return fmt.Errorf("error killing server: %w", err)
					}
				}
				fmt.Fprintln(out, "Waypoint Server stopped gracefully")
			}
			return nil
		},
	}
	cmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	cmd.Flags().StringSlice("lang", nil, "Preferred languages for menu labels")
	cmd.Flags().StringSlice("messages", nil, "Message files for menu labels")
	return cmd
}
