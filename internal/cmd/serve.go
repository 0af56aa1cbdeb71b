package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/adamanr/corp_summary/internal/api"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(opts *options) *cobra.Command {
	var host string

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the hierarchy and report over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			deps, closer, err := bootstrap(opts, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closer.Close()

			if host != "" {
				deps.Config.Server.Host = host
			}

			s := &http.Server{
				Handler:           api.NewServer(deps).Router(),
				Addr:              deps.Config.Server.Host,
				WriteTimeout:      deps.Config.Server.WriteTimeout,
				ReadTimeout:       deps.Config.Server.ReadTimeout,
				ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				deps.Logger.Info("Server is starting", slog.String("address", s.Addr))
				errCh <- s.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				deps.Logger.Error("Server failed", slog.String("error", err.Error()))
				return err
			case <-ctx.Done():
			}

			deps.Logger.Info("Server is shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()

			return s.Shutdown(shutdownCtx)
		},
	}

	serveCmd.Flags().StringVar(&host, "host", "", "listen address (overrides config)")

	return serveCmd
}
