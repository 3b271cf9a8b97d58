// Package config handles loading the emass client configuration.
//
// # Overview
//
// The client needs two things: where the emass API lives and where to keep
// per-user state (pinned, recent, session). Both come from a small TOML file
// with sensible defaults, so the client works out-of-the-box against a local
// backend without any configuration.
//
// # Resolution order
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/emass/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. A .env file and the EMASS_API_BASE / EMASS_DATA_DIR environment
//     variables override whatever the file said
//
// # Default values
//
//   - Config file: ~/.config/emass/config.toml
//   - API base: 127.0.0.1:8080
//   - Data directory: ~/.local/share/emass
//   - Session file: <data_dir>/session.json
//
// # TOML format
//
// Example config.toml:
//
//	api_base = "https://api.emass.example"
//	data_dir = "~/.local/share/emass"
//
// Both fields are optional. Tilde expansion is performed automatically and
// relative paths are made absolute.
//
// # Error handling
//
// Load returns errors for path expansion failures, unreadable files, and
// TOML parse errors. A missing config file is NOT an error; defaults are
// used instead. The package is read-only and stateless: configuration is
// loaded once at startup into an immutable Config value.
package config
