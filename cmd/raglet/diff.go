// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The raglet Authors

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raglet/raglet/internal/config"
	"github.com/raglet/raglet/internal/logger"
)

var diffCmd = &cobra.Command{
	Use:   "diff OLD NEW",
	Short: "Compare two settings documents",
	Long: `Diff loads both documents without the environment layer and lists
every key whose effective value differs, marking which changes the
platform can apply without a restart.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.NewConsoleLogger("diff")

		opts := []config.Option{config.WithLogger(log), config.WithoutEnv()}
		if flagStrict {
			opts = append(opts, config.WithStrict())
		}

		oldCfg, err := config.Load(args[0], opts...)
		if err != nil {
			return fmt.Errorf("%s: %w", args[0], err)
		}
		newCfg, err := config.Load(args[1], opts...)
		if err != nil {
			return fmt.Errorf("%s: %w", args[1], err)
		}

		summary := config.Diff(oldCfg, newCfg)
		if len(summary.ChangedKeys) == 0 {
			fmt.Println("no changes")
			return nil
		}

		for _, key := range summary.ChangedKeys {
			fmt.Println(key)
		}
		if summary.RestartRequired {
			fmt.Println("restart required")
		} else {
			fmt.Println("hot-reloadable")
		}

		return nil
	},
}
