// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"github.com/staranto/hexdiff/internal/config"
)

// Meta contains runtime metadata shared by commands. It carries the CLI
// arguments as received, the loaded configuration and the working directory
// at startup.
type Meta struct {
	Args        []string
	Config      config.Type
	StartingDir string
}
