// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The raglet Authors

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/raglet/raglet/internal/config"
	"github.com/raglet/raglet/internal/logger"
)

var (
	flagShowFormat   string
	flagShowNoRedact bool
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings document",
	Long: `Show prints the document after layering defaults, file, overlays,
and environment, so what you see is what the platform runs with. Secrets
are masked unless --no-redact is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.NewConsoleLogger("show")

		cfg, err := loadSettings(log)
		if err != nil {
			return err
		}
		if !flagShowNoRedact {
			cfg = cfg.Redacted()
		}

		switch flagShowFormat {
		case "toml":
			return config.Encode(os.Stdout, cfg)

		case "json":
			data, err := config.EncodeBytes(cfg)
			if err != nil {
				return err
			}
			// Round-trip through a generic tree so JSON output carries
			// the TOML key names.
			var tree map[string]any
			if err := toml.Unmarshal(data, &tree); err != nil {
				return fmt.Errorf("error re-decoding settings: %w", err)
			}
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(tree)

		default:
			return fmt.Errorf("unknown format %q, want toml or json", flagShowFormat)
		}
	},
}

func init() {
	showCmd.Flags().StringVar(&flagShowFormat, "format", "toml", "output format: toml or json")
	showCmd.Flags().BoolVar(&flagShowNoRedact, "no-redact", false, "print secrets instead of masking them")
}
