// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The raglet Authors

// Command raglet manages raglet settings documents: validation, effective
// configuration inspection, environment documentation, preflight probes,
// and the admin endpoint.
package main

import "fmt"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	Execute()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
