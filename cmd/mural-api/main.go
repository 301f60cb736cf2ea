package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"mural/internal/devserver"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		addr  string
		like  string
		seeds []string
	)
	cmd := &cobra.Command{
		Use:          "mural-api",
		Short:        "In-memory posts API for development",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, ok := devserver.ParseLikeResponse(like)
			if !ok {
				return fmt.Errorf("unknown --like-response %q (want message, fields or both)", like)
			}
			logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

			srv := devserver.New(mode, logger)
			srv.Seed(seeds...)
			return serve(cmd.Context(), addr, srv.Handler(), logger)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8000", "listen address")
	cmd.Flags().StringVar(&like, "like-response", string(devserver.LikeResponseMessage), "like response shape: message, fields or both")
	cmd.Flags().StringArrayVar(&seeds, "seed", nil, "post content to create at startup (repeatable)")
	return cmd
}

func serve(ctx context.Context, addr string, h http.Handler, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := &http.Server{Addr: addr, Handler: h, ReadHeaderTimeout: 5 * time.Second}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("api listening", "addr", addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	logger.Info("shutting down")
	return server.Shutdown(shutdownCtx)
}
