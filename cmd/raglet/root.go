// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The raglet Authors

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raglet/raglet/internal/config"
	"github.com/raglet/raglet/internal/logger"
	"github.com/raglet/raglet/settings"
)

var (
	flagFile     string
	flagOverlays []string
	flagDotenv   string
	flagStrict   bool
	flagNoEnv    bool
)

var rootCmd = &cobra.Command{
	Use:           "raglet",
	Short:         "Manage raglet settings documents",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagFile, "file", "f", "raglet.toml", "settings document to load")
	rootCmd.PersistentFlags().StringArrayVar(&flagOverlays, "overlay", nil, "overlay document applied on top of the base file (repeatable)")
	rootCmd.PersistentFlags().StringVar(&flagDotenv, "env-file", "", "dotenv file loaded before reading the environment")
	rootCmd.PersistentFlags().BoolVar(&flagStrict, "strict", false, "reject unknown keys in the document")
	rootCmd.PersistentFlags().BoolVar(&flagNoEnv, "no-env", false, "ignore environment variable overrides")

	rootCmd.AddCommand(
		validateCmd,
		showCmd,
		initCmd,
		diffCmd,
		envCmd,
		serveCmd,
		doctorCmd,
		versionCmd,
	)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show build information",
	Run: func(cmd *cobra.Command, args []string) {
		printBuildInfo()
	},
}

// loaderOptions translates the persistent flags into loader options.
func loaderOptions(log *logger.Logger) []config.Option {
	opts := []config.Option{
		config.WithLogger(log),
		config.WithOverlays(flagOverlays...),
	}
	if flagDotenv != "" {
		opts = append(opts, config.WithDotenv(flagDotenv))
	}
	if flagStrict {
		opts = append(opts, config.WithStrict())
	}
	if flagNoEnv {
		opts = append(opts, config.WithoutEnv())
	}

	return opts
}

func loadSettings(log *logger.Logger) (*settings.Settings, error) {
	return config.Load(flagFile, loaderOptions(log)...)
}

// Execute runs the root command. Commands that need differentiated exit
// codes call os.Exit themselves; everything else surfaces here.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "raglet: %v\n", err)
		os.Exit(1)
	}
}
