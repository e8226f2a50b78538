// Package server exposes the effective raglet configuration to operators
// over HTTP: a health probe, the redacted document as JSON or TOML, and
// the resolved per-component generation configs.
//
// The server never serves unredacted secrets. It reads the current
// document through a SettingsSource on every request, so a running
// [config.Watcher] makes responses follow file edits without a restart.
package server
