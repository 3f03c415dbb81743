// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for hexdiff's optional
// user configuration. The configuration is a YAML document located with
// os.UserConfigDir, typically:
//   - Linux: $XDG_CONFIG_HOME/hexdiff.yaml or $HOME/.config/hexdiff.yaml
//   - macOS: $HOME/Library/Application Support/hexdiff.yaml
//   - Windows: %APPDATA%/hexdiff.yaml
//
// HEXDIFF_CFG_FILE overrides the location. Recognized keys are bytes, lines,
// marker, colors.removed, colors.added and cache.clean.
package config
