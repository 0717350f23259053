// SPDX-License-Identifier: MPL-2.0

// Package config handles tks configuration using Viper with CUE as the file format.
//
// Configuration is loaded from $XDG_CONFIG_HOME/tks/config.cue on Linux
// (~/Library/Application Support/tks/config.cue on macOS, %APPDATA%\tks\config.cue
// on Windows), falling back to ./config.cue. Files are validated against the
// embedded config_schema.cue before being merged over the defaults. Environment
// variables prefixed with TKS_ (e.g. TKS_OUTPUT_FORMAT) override both.
package config
