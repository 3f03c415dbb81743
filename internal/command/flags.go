// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/staranto/hexdiff/internal/output"
	"github.com/staranto/hexdiff/internal/pager"
)

// NewGlobalFlags constructs the hexdiff flag set. cfgFile, when not empty, is
// the YAML config file consulted for flag defaults after the environment.
func NewGlobalFlags(cfgFile string) (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.IntFlag{
			Name:    "bytes",
			Aliases: []string{"b"},
			Usage:   "bytes per line, one of 2, 4, 8, 16, 32 or 64",
			Value:   16,
			Sources: valueChain("bytes", cfgFile, "HEXDIFF_BYTES"),
			Validator: func(value int) error {
				return FlagValidators(value, BytesValidator)
			},
		},
		&cli.IntFlag{
			Name:    "lines",
			Aliases: []string{"l"},
			Usage:   "lines per page before prompting",
			Value:   pager.DefaultLinesPerPage,
			Sources: valueChain("lines", cfgFile, "HEXDIFF_LINES"),
			Validator: func(value int) error {
				return FlagValidators(value, LinesValidator)
			},
		},
		&cli.StringFlag{
			Name:    "marker",
			Aliases: []string{"m"},
			Usage:   "mismatch marking: auto, color or plain",
			Value:   output.MarkerAuto,
			Sources: valueChain("marker", cfgFile, "HEXDIFF_MARKER"),
			Validator: func(value string) error {
				return FlagValidators(value, MarkerValidator)
			},
		},
		&cli.BoolFlag{
			Name:  "summary",
			Usage: "print a difference summary after the last line",
			Value: false,
		},
		&cli.StringFlag{
			Name:    "aws-profile",
			Usage:   "AWS shared config profile for s3:// sources",
			Sources: cli.NewValueSourceChain(cli.EnvVar("AWS_PROFILE")),
		},
		&cli.StringFlag{
			Name:    "aws-region",
			Usage:   "AWS region for s3:// sources",
			Sources: cli.NewValueSourceChain(cli.EnvVar("AWS_REGION")),
		},
		&cli.StringFlag{
			Name:    "s3-endpoint",
			Usage:   "S3-compatible endpoint URL for s3:// sources",
			Sources: valueChain("s3.endpoint", cfgFile, "HEXDIFF_S3_ENDPOINT"),
		},
		&cli.BoolFlag{
			Name:        "version",
			Aliases:     []string{"v"},
			Usage:       "hexdiff version info",
			HideDefault: true,
		},
	}

	return
}

// valueChain builds the source chain for a flag: environment variables first,
// then key in the config file.
func valueChain(key string, cfgFile string, envVars ...string) cli.ValueSourceChain {
	var srcs []cli.ValueSource
	for _, e := range envVars {
		srcs = append(srcs, cli.EnvVar(e))
	}

	chain := cli.NewValueSourceChain(srcs...)
	if cfgFile != "" {
		chain.Chain = append(chain.Chain, yaml.YAML(key, altsrc.StringSourcer(cfgFile)))
	}

	return chain
}
