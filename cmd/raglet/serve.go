// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The raglet Authors

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/raglet/raglet/internal/config"
	"github.com/raglet/raglet/internal/logger"
	"github.com/raglet/raglet/internal/server"
	"github.com/raglet/raglet/settings"
)

var (
	flagServeAddr  string
	flagServeWatch bool
)

const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the effective configuration over HTTP",
	Long: `Serve exposes the redacted effective document and the resolved
generation configs on an admin endpoint. With --watch, the settings file
is reloaded on change and responses follow the edits.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.NewLogger("serve")

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		loader := config.NewLoader(flagFile, loaderOptions(log)...)

		var source server.SettingsSource
		if flagServeWatch {
			watcher, err := config.NewWatcher(loader, log, func(cfg *settings.Settings, summary config.ChangeSummary) {
				if summary.RestartRequired {
					log.Warn().
						Strs("changed", summary.ChangedKeys).
						Msg("changes need a platform restart to fully apply")
				}
			})
			if err != nil {
				return err
			}
			source = watcher.Settings

			go func() {
				if err := watcher.Run(ctx); err != nil {
					log.Error().Err(err).Msg("settings watcher stopped")
				}
			}()
		} else {
			cfg, err := loader.Load()
			if err != nil {
				return err
			}
			source = func() *settings.Settings { return cfg }
		}

		srv := server.NewServer(flagServeAddr, source, log)

		errCh := make(chan error, 1)
		go func() { errCh <- srv.RunServer() }()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		log.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}

		return <-errCh
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagServeAddr, "addr", ":7275", "listen address for the admin endpoint")
	serveCmd.Flags().BoolVar(&flagServeWatch, "watch", false, "reload the settings file when it changes")
}
