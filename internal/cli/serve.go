package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

const shutdownTimeout = 5 * time.Second

func (c *CLI) newServeCmd() *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(migrate)
		},
	}

	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply pending migrations before serving")

	return cmd
}

func (c *CLI) runServe(migrate bool) error {
	c.log.Info("app: starting")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := c.openApp()
	if err != nil {
		return fmt.Errorf("init app: %w", err)
	}

	if migrate {
		if _, err := application.Migrate(); err != nil {
			_ = application.Close()
			return fmt.Errorf("migrate: %w", err)
		}
	}

	srv := application.HTTPServer()
	c.log.Info("http: listening", "addr", srv.Addr)

	serverErrCh := make(chan error, 1)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
		close(serverErrCh)
	}()

	var runErr error
	select {
	case <-ctx.Done():
		c.log.Info("app: shutdown signal received")
	case err := <-serverErrCh:
		if err != nil {
			c.log.Critical("http: server failed", "addr", srv.Addr, "err", err)
			runErr = err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		c.log.Error("http: graceful shutdown failed", "err", err)
		runErr = errors.Join(runErr, err)
	}

	if err := application.Close(); err != nil {
		c.log.Error("app: close failed", "err", err)
		runErr = errors.Join(runErr, err)
	}

	if runErr == nil {
		c.log.Info("app: stopped")
	}
	return runErr
}
