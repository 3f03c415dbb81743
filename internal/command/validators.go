// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/staranto/hexdiff/internal/output"
)

// UsageError is an argument error. Its message carries the usage text so the
// user sees how to invoke hexdiff correctly.
type UsageError struct {
	Err   error
	Usage string
}

func (e *UsageError) Error() string {
	if e.Usage == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v\n\nUsage: %s", e.Err, e.Usage)
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// GlobalFlagsValidator checks the positional arguments and re-checks flag
// values, which may have come from the config file rather than the command
// line. It is a no-op when a subcommand is being dispatched.
func GlobalFlagsValidator(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Present() && cmd.Command(cmd.Args().First()) != nil {
		return nil
	}

	usage := func(err error) error {
		return &UsageError{Err: err, Usage: cmd.UsageText}
	}

	if n := cmd.Args().Len(); n != 2 {
		return usage(fmt.Errorf("expected exactly two files to compare, got %d", n))
	}

	checks := []struct {
		flag  string
		value any
		fn    FlagValidatorType
	}{
		{"bytes", cmd.Int("bytes"), BytesValidator},
		{"lines", cmd.Int("lines"), LinesValidator},
		{"marker", cmd.String("marker"), MarkerValidator},
	}
	for _, c := range checks {
		if err := FlagValidators(c.value, c.fn); err != nil {
			return usage(fmt.Errorf("invalid value %v for flag --%s: %w", c.value, c.flag, err))
		}
	}

	return nil
}

func BytesValidator(value any) error {
	n, ok := value.(int)
	if !ok {
		return errors.New("must be an integer")
	}
	return output.ValidateBytesPerLine(n)
}

func LinesValidator(value any) error {
	n, ok := value.(int)
	if !ok {
		return errors.New("must be an integer")
	}
	if n < 1 {
		return errors.New("must be at least 1")
	}
	return nil
}

func MarkerValidator(value any) error {
	s, ok := value.(string)
	if !ok {
		return errors.New("must be a string")
	}
	return output.ValidateMarkerMode(s)
}
