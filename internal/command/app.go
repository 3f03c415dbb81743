// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/staranto/hexdiff/internal/config"
	"github.com/staranto/hexdiff/internal/log"
	"github.com/staranto/hexdiff/internal/meta"
)

const usageText = "hexdiff [options] file1 file2"

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	sd, _ := os.Getwd()

	// The config file is optional. Without one every flag keeps its built-in
	// default.
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNotFound) {
		log.Debug("no config file, using defaults")
	} else if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	meta := meta.Meta{
		Args:        args,
		Config:      cfg,
		StartingDir: sd,
	}

	app := &cli.Command{
		Name:      "hexdiff",
		Usage:     "side-by-side hex comparison of two files",
		UsageText: usageText,
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: NewGlobalFlags(cfg.Source),
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, cmd)
		},
		Action: diffCommandAction,
	}

	app.Commands = append(app.Commands,
		completionCommandBuilder(meta),
	)

	// Make sure flags are sorted for the --help text.
	sort.Slice(app.Flags, func(i, j int) bool {
		return app.Flags[i].Names()[0] < app.Flags[j].Names()[0]
	})

	return app, nil
}
