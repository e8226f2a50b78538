// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The raglet Authors

package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/raglet/raglet/internal/doctor"
	"github.com/raglet/raglet/internal/logger"
)

var flagDoctorDSN string

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Run deployment preflight probes",
	Long: `Doctor loads the document and probes the deployment around it:
database connectivity, credential hygiene, and embedding model limits.
The connection string comes from --dsn or RAGLET_DATABASE_DSN; it is
never read from the settings file.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		log := logger.NewConsoleLogger("doctor")

		cfg, err := loadSettings(log)
		if err != nil {
			fmt.Fprintf(os.Stderr, "raglet: %v\n", err)
			os.Exit(exitUnreadable)
		}

		dsn := flagDoctorDSN
		if dsn == "" {
			dsn = os.Getenv("RAGLET_DATABASE_DSN")
		}

		report := doctor.New(log).Run(cmd.Context(), cfg, dsn)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		for _, c := range report {
			detail := c.Detail
			if c.Err != nil {
				detail = fmt.Sprintf("%s: %v", detail, c.Err)
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", c.Name, c.Status, detail)
		}
		_ = w.Flush()

		if report.Failed() {
			os.Exit(exitInvalid)
		}
	},
}

func init() {
	doctorCmd.Flags().StringVar(&flagDoctorDSN, "dsn", "", "postgres connection string for the database probe")
}
