// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/staranto/hexdiff/internal/differ"
	"github.com/staranto/hexdiff/internal/loader"
	"github.com/staranto/hexdiff/internal/log"
	"github.com/staranto/hexdiff/internal/output"
	"github.com/staranto/hexdiff/internal/pager"
)

// diffCommandAction loads both sources, aligns them and pages the rendered
// lines to the root writer. Quit and interrupt are normal terminations.
func diffCommandAction(ctx context.Context, cmd *cli.Command) error {
	meta := GetMeta(cmd)
	log.Debugf("Executing action for %v (config=%q)", meta.Args, meta.Config.Source)

	r, w, _ := streams(cmd)
	sources := cmd.Args().Slice()

	ldr := loader.New(
		loader.WithProfile(cmd.String("aws-profile")),
		loader.WithRegion(cmd.String("aws-region")),
		loader.WithEndpoint(cmd.String("s3-endpoint")),
	)

	var data [2][]byte
	for i, src := range sources {
		b, err := ldr.Load(ctx, src)
		if err != nil {
			if ctx.Err() != nil {
				// Interrupted mid-load. Report it like any other interrupt.
				fmt.Fprintln(w, pager.InterruptNotice)
				return nil
			}
			return err
		}
		data[i] = b
	}

	left, right := differ.Align(data[0], data[1])

	marker, err := output.NewMarker(cmd.String("marker"), w)
	if err != nil {
		return err
	}

	formatter, err := output.NewFormatter(cmd.Int("bytes"), marker)
	if err != nil {
		return err
	}

	session, err := pager.NewSession(w, r, formatter, cmd.Int("lines"))
	if err != nil {
		return err
	}

	outcome, err := session.Run(ctx, left, right)
	if cerr := session.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("failed to render comparison: %w", err)
	}
	log.Debugf("session ended: outcome=%d", outcome)

	if outcome == pager.Completed && cmd.Bool("summary") {
		return writeSummary(w, differ.Compare(left, right))
	}

	return nil
}

// writeSummary prints one line describing how the two inputs differ.
func writeSummary(w io.Writer, st differ.Stats) error {
	var line string
	if st.Identical() {
		line = fmt.Sprintf("\nIdentical: %s", humanize.IBytes(uint64(st.SizeA)))
	} else {
		line = fmt.Sprintf("\n%s of %s bytes differ (%s vs %s), first at %08X",
			humanize.Comma(int64(st.Differing)),
			humanize.Comma(int64(st.Length)),
			humanize.IBytes(uint64(st.SizeA)),
			humanize.IBytes(uint64(st.SizeB)),
			st.FirstDiff,
		)
	}

	_, err := fmt.Fprintln(w, line)
	return err
}
