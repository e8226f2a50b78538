// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The raglet Authors

// Package settings defines the typed schema of the raglet settings
// document: one struct per top-level section (app, agent, auth,
// completion, crypto, database, embedding, file, ingestion, logging,
// orchestration, prompt, email), the shipped defaults, and helpers for
// cloning and redacting a document.
//
// The package holds data only. Loading, merging, validation, and
// serialization live in internal/config.
package settings
