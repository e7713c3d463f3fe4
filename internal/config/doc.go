// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/plugsmith/config.cue (or XDG equivalent on Linux,
// ~/Library/Application Support/plugsmith/config.cue on macOS, %APPDATA%\plugsmith\config.cue
// on Windows). A config.toml in the same directory is accepted as an alternative and is
// validated against the same CUE schema (config_schema.cue). Environment variables prefixed
// with PLUGSMITH_ override file values.
package config
