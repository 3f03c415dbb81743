// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package output

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staranto/hexdiff/internal/config"
)

func TestValidateMarkerMode(t *testing.T) {
	for _, m := range []string{"auto", "color", "plain"} {
		assert.NoError(t, ValidateMarkerMode(m))
	}
	for _, m := range []string{"", "ansi", "PLAIN"} {
		assert.Error(t, ValidateMarkerMode(m), "mode=%q", m)
	}
}

func TestPlainMarker(t *testing.T) {
	m := PlainMarker{}
	assert.Equal(t, " 4A", m.Same("4A"))
	assert.Equal(t, "-4A", m.Removed("4A"))
	assert.Equal(t, "+4A", m.Added("4A"))
	assert.Equal(t, "-  ", m.Removed("  "))
}

func TestANSIMarker(t *testing.T) {
	m := NewANSIMarker(lipgloss.Color("1"), lipgloss.Color("2"))
	assert.Equal(t, "4A", m.Same("4A"))
	assert.Contains(t, m.Removed("4A"), "4A")
	assert.Contains(t, m.Added("4A"), "4A")
	assert.Equal(t, 2, lipgloss.Width(m.Removed("4A")))
	assert.Equal(t, 2, lipgloss.Width(m.Added("4A")))
}

func TestNewMarker(t *testing.T) {
	t.Setenv("HEXDIFF_CFG_FILE", "/nonexistent/hexdiff.yaml")
	config.Config = config.Type{}

	tests := []struct {
		name    string
		mode    string
		wantErr bool
		check   func(*testing.T, Marker)
	}{
		{
			name: "plain",
			mode: MarkerPlain,
			check: func(t *testing.T, m Marker) {
				assert.IsType(t, PlainMarker{}, m)
			},
		},
		{
			name: "auto on a buffer is plain",
			mode: MarkerAuto,
			check: func(t *testing.T, m Marker) {
				assert.IsType(t, PlainMarker{}, m)
			},
		},
		{
			name: "forced color",
			mode: MarkerColor,
			check: func(t *testing.T, m Marker) {
				assert.IsType(t, &ANSIMarker{}, m)
			},
		},
		{
			name:    "unknown",
			mode:    "rainbow",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMarker(tt.mode, &bytes.Buffer{})
			if tt.wantErr {
				assert.ErrorContains(t, err, "invalid marker")
				return
			}
			require.NoError(t, err)
			tt.check(t, m)
		})
	}
}

func TestGetColors(t *testing.T) {
	t.Run("defaults follow background", func(t *testing.T) {
		t.Setenv("HEXDIFF_CFG_FILE", "/nonexistent/hexdiff.yaml")
		config.Config = config.Type{}

		removed, added := getColors("colors", true)
		assert.Equal(t, lipgloss.Color("9"), removed)
		assert.Equal(t, lipgloss.Color("10"), added)

		removed, added = getColors("colors", false)
		assert.Equal(t, lipgloss.Color("1"), removed)
		assert.Equal(t, lipgloss.Color("2"), added)
	})

	t.Run("config overrides", func(t *testing.T) {
		path, err := filepath.Abs(filepath.Join("testdata", "colors.yaml"))
		require.NoError(t, err)
		t.Setenv("HEXDIFF_CFG_FILE", path)
		config.Config = config.Type{}
		t.Cleanup(func() { config.Config = config.Type{} })

		removed, added := getColors("colors", true)
		assert.Equal(t, lipgloss.Color("#ff5f5f"), removed)
		assert.Equal(t, lipgloss.Color("#5fff5f"), added)
	})
}
