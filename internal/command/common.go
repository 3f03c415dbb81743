// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/staranto/hexdiff/internal/meta"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// streams returns the root command's reader and writers, falling back to the
// process streams when the command has not been run yet.
func streams(cmd *cli.Command) (r io.Reader, w io.Writer, ew io.Writer) {
	r, w, ew = os.Stdin, os.Stdout, os.Stderr
	if cmd == nil {
		return
	}
	root := cmd.Root()
	if root.Reader != nil {
		r = root.Reader
	}
	if root.Writer != nil {
		w = root.Writer
	}
	if root.ErrWriter != nil {
		ew = root.ErrWriter
	}
	return
}
