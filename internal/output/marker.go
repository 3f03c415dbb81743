// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss/v2"
	"golang.org/x/term"

	"github.com/staranto/hexdiff/internal/config"
	"github.com/staranto/hexdiff/internal/log"
)

// Marker decorates hex tokens. Same is applied to tokens that match the other
// side, Removed to a mismatched left token and Added to a mismatched right
// token. Every decoration of a token must have the same display width.
type Marker interface {
	Same(tok string) string
	Removed(tok string) string
	Added(tok string) string
}

// Marker modes accepted by --marker.
const (
	MarkerAuto  = "auto"
	MarkerColor = "color"
	MarkerPlain = "plain"
)

var validMarkerModes = []string{MarkerAuto, MarkerColor, MarkerPlain}

// ValidateMarkerMode returns an error unless mode is a known marker mode.
func ValidateMarkerMode(mode string) error {
	for _, m := range validMarkerModes {
		if m == mode {
			return nil
		}
	}
	return fmt.Errorf("must be one of %v", validMarkerModes)
}

// PlainMarker marks tokens with a one character prefix so the output stays
// readable without a color terminal: ' ' same, '-' removed, '+' added.
type PlainMarker struct{}

func (PlainMarker) Same(tok string) string    { return " " + tok }
func (PlainMarker) Removed(tok string) string { return "-" + tok }
func (PlainMarker) Added(tok string) string   { return "+" + tok }

// ANSIMarker colors mismatched tokens. Matching tokens are left untouched.
type ANSIMarker struct {
	removed lipgloss.Style
	added   lipgloss.Style
}

// NewANSIMarker returns a marker rendering removed and added tokens in the
// given foreground colors.
func NewANSIMarker(removed, added color.Color) *ANSIMarker {
	return &ANSIMarker{
		removed: lipgloss.NewStyle().Foreground(removed),
		added:   lipgloss.NewStyle().Foreground(added),
	}
}

func (m *ANSIMarker) Same(tok string) string    { return tok }
func (m *ANSIMarker) Removed(tok string) string { return m.removed.Render(tok) }
func (m *ANSIMarker) Added(tok string) string   { return m.added.Render(tok) }

// NewMarker resolves a marker mode against the destination writer. Auto picks
// color only when w is a terminal.
func NewMarker(mode string, w io.Writer) (Marker, error) {
	if err := ValidateMarkerMode(mode); err != nil {
		return nil, fmt.Errorf("invalid marker %q: %w", mode, err)
	}

	f, isFile := w.(*os.File)
	tty := isFile && term.IsTerminal(int(f.Fd()))
	log.Debugf("marker mode=%s tty=%v", mode, tty)

	if mode == MarkerPlain || (mode == MarkerAuto && !tty) {
		return PlainMarker{}, nil
	}

	isDark := true
	if tty {
		isDark = lipgloss.HasDarkBackground(os.Stdin, f)
	}
	removed, added := getColors("colors", isDark)
	return NewANSIMarker(removed, added), nil
}

// getColors returns the mismatch colors. Explicit config values win; otherwise
// a red/green pair suited to the terminal background is used.
func getColors(key string, isDark bool) (removed, added color.Color) {
	resolveColor := func(key string, light string, dark string) color.Color {
		colorCfg, err := config.GetString(key)
		if err == nil {
			return lipgloss.Color(colorCfg)
		}

		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	removed = resolveColor(key+".removed", "1", "9")
	added = resolveColor(key+".added", "2", "10")

	return
}
