package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

var addr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site over HTTP",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address (default $ADDR or :3000)")
}

func runServe(cmd *cobra.Command, args []string) error {
	app, err := loadApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()
	if cmd.Flags().Changed("addr") {
		app.Config.Addr = addr
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case err := <-errCh:
		return err
	case <-sigCh:
	}

	app.Logger.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := app.Shutdown(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
