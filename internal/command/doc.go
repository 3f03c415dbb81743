// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package command defines the hexdiff CLI. It wires flags, validators, the
// comparison action and shell completion.
package command
