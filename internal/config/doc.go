// Package config assembles, validates, and serializes the raglet settings
// document.
//
// The effective configuration is layered from multiple sources in the
// following priority order (later sources override earlier ones):
//  1. Shipped defaults (settings.Default)
//  2. The TOML settings file, plus any overlay files
//  3. Environment variables (optionally seeded from a .env file)
//
// The main entry point is [Loader]: construct one with [NewLoader] and call
// Load to obtain a validated *settings.Settings. The package also provides
// [Validate] for standalone documents, [Diff] for change classification,
// [Watcher] for hot reload, and [Encode]/[WriteFile] for lossless TOML
// round-trips.
package config
