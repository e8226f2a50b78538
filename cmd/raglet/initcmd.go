// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The raglet Authors

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raglet/raglet/internal/config"
	"github.com/raglet/raglet/settings"
)

var (
	flagInitOutput string
	flagInitForce  bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a settings document with the shipped defaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !flagInitForce {
			if _, err := os.Stat(flagInitOutput); err == nil {
				return fmt.Errorf("%s already exists; use --force to overwrite", flagInitOutput)
			}
		}

		if err := config.WriteFile(flagInitOutput, settings.Default()); err != nil {
			return err
		}

		fmt.Printf("wrote %s\n", flagInitOutput)
		return nil
	},
}

func init() {
	initCmd.Flags().StringVarP(&flagInitOutput, "output", "o", "raglet.toml", "path of the document to write")
	initCmd.Flags().BoolVar(&flagInitForce, "force", false, "overwrite an existing file")
}
