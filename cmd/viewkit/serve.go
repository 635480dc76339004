package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"github.com/vitalvas/viewkit/viewhttp"
	"github.com/vitalvas/viewkit/viewmetrics"
)

func serveCmd(opts *rootOptions) *cobra.Command {
	var (
		addr    string
		metrics bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the view lookup API over HTTP",
		Long: `Serve the view lookup API:

  GET /views         list registered views
  GET /views/{view}  resolve a view, query values form the model
  GET /metrics       Prometheus metrics (with --metrics)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			r, err := opts.loadRouter()
			if err != nil {
				return err
			}
			r.Logger(logger)

			mux := http.NewServeMux()
			if metrics {
				reg := prometheus.NewRegistry()
				r.Observer(viewmetrics.New(viewmetrics.Config{Registry: reg}))
				mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
			}
			mux.Handle("/", viewhttp.NewHandler(r, viewhttp.Config{Logger: logger}))

			srv := &http.Server{
				Addr:              addr,
				Handler:           mux,
				ReadHeaderTimeout: 10 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				logger.Info("serving view lookup API", "addr", addr, "views", len(r.ViewNames()))
				errCh <- srv.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVar(&metrics, "metrics", false, "expose Prometheus metrics on /metrics")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}
