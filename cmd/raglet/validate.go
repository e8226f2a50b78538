// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The raglet Authors

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raglet/raglet/internal/config"
	"github.com/raglet/raglet/internal/logger"
)

// Exit codes for validate: 0 valid, 1 invalid document, 2 unreadable or
// unparsable input. Scripts branch on the distinction.
const (
	exitValid      = 0
	exitInvalid    = 1
	exitUnreadable = 2
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a settings document against the schema",
	Long: `Validate loads the document through the full layering pipeline
(defaults, file, overlays, environment) and reports every violation at
once. With --strict, unknown keys fail validation instead of logging a
warning.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.NewConsoleLogger("validate")

		cfg, err := loadSettings(log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "raglet: %s: %v\n", flagFile, err)
			if isValidationError(err) {
				os.Exit(exitInvalid)
			}
			os.Exit(exitUnreadable)
		}

		fmt.Printf("%s: valid (project %q)\n", flagFile, cfg.App.ProjectName)
		os.Exit(exitValid)
	},
}

// isValidationError distinguishes schema violations from I/O and parse
// failures.
func isValidationError(err error) bool {
	for _, sentinel := range []error{
		config.ErrInvalidAgentSettings,
		config.ErrInvalidAuthSettings,
		config.ErrInvalidCompletionSettings,
		config.ErrInvalidDatabaseSettings,
		config.ErrInvalidEmbeddingSettings,
		config.ErrInvalidIngestionSettings,
		config.ErrInvalidOrchestrationSettings,
		config.ErrUnknownProvider,
		config.ErrUnknownKeys,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}

	return false
}
