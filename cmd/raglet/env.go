// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The raglet Authors

package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/raglet/raglet/internal/config"
)

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List every environment variable override the schema defines",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "VARIABLE\tKEY")
		for _, v := range config.EnvVars() {
			fmt.Fprintf(w, "%s\t%s\n", v.Name, v.Key)
		}

		return w.Flush()
	},
}
