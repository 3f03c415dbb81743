// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staranto/hexdiff/internal/config"
)

// useConfig points hexdiff at a config file with the given YAML body and
// keeps the cache inside the test.
func useConfig(t *testing.T, body string) {
	t.Helper()

	p := filepath.Join(t.TempDir(), "hexdiff.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	t.Setenv("HEXDIFF_CFG_FILE", p)
	t.Setenv("HEXDIFF_CACHE_DIR", t.TempDir())
	config.Config = config.Type{}
	t.Cleanup(func() { config.Config = config.Type{} })
}

func TestHandleVersion(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{name: "long", args: []string{"hexdiff", "--version"}, want: true},
		{name: "short", args: []string{"hexdiff", "-b", "8", "-v"}, want: true},
		{name: "absent", args: []string{"hexdiff", "a.bin", "b.bin"}},
		{name: "file after separator", args: []string{"hexdiff", "--", "-v", "b.bin"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, handleVersion(tt.args))
		})
	}
}

func TestHandleNakedCommand(t *testing.T) {
	assert.Equal(t, []string{"hexdiff", "--help"}, handleNakedCommand([]string{"hexdiff"}))
	assert.Equal(t, []string{"hexdiff", "a", "b"}, handleNakedCommand([]string{"hexdiff", "a", "b"}))
}

func TestExpandSets(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile("@shadowed", []byte{1}, 0o600))
	require.NoError(t, os.WriteFile("@a.bin", []byte{1}, 0o600))

	useConfig(t, `
sets:
  review:
    - "--bytes 8"
    - "--marker plain"
  quiet:
    - "--summary"
  shadowed:
    - "--lines 3"
`)

	tests := []struct {
		name     string
		args     []string
		expected []string
	}{
		{
			name:     "no set",
			args:     []string{"hexdiff", "a", "b"},
			expected: []string{"hexdiff", "a", "b"},
		},
		{
			name:     "multi-word entries split",
			args:     []string{"hexdiff", "@review", "a", "b"},
			expected: []string{"hexdiff", "--bytes", "8", "--marker", "plain", "a", "b"},
		},
		{
			name:     "set after flags",
			args:     []string{"hexdiff", "-l", "5", "@quiet", "a", "b"},
			expected: []string{"hexdiff", "-l", "5", "--summary", "a", "b"},
		},
		{
			name:     "unknown set kept as argument",
			args:     []string{"hexdiff", "@nope", "a", "b"},
			expected: []string{"hexdiff", "@nope", "a", "b"},
		},
		{
			name:     "existing file kept",
			args:     []string{"hexdiff", "@a.bin", "b"},
			expected: []string{"hexdiff", "@a.bin", "b"},
		},
		{
			name:     "existing file wins over set",
			args:     []string{"hexdiff", "@shadowed", "b"},
			expected: []string{"hexdiff", "@shadowed", "b"},
		},
		{
			name:     "after separator",
			args:     []string{"hexdiff", "--", "@quiet", "b"},
			expected: []string{"hexdiff", "--", "@quiet", "b"},
		},
		{
			name:     "completion untouched",
			args:     []string{"hexdiff", "completion", "@review"},
			expected: []string{"hexdiff", "completion", "@review"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, expandSets(tt.args))
		})
	}
}

func TestRun_ExitCodes(t *testing.T) {
	dir := t.TempDir()
	a := filepath.Join(dir, "a.bin")
	b := filepath.Join(dir, "b.bin")
	require.NoError(t, os.WriteFile(a, []byte{0x41, 0x42}, 0o600))
	require.NoError(t, os.WriteFile(b, []byte{0x41, 0x43}, 0o600))

	tests := []struct {
		name   string
		config string
		args   []string
		want   int
	}{
		{name: "version", args: []string{"hexdiff", "--version"}, want: 0},
		{name: "comparison", args: []string{"hexdiff", "-m", "plain", a, b}, want: 0},
		{name: "missing file", args: []string{"hexdiff", a, filepath.Join(dir, "missing.bin")}, want: 2},
		{name: "argument error", args: []string{"hexdiff", a}, want: 2},
		{name: "broken config", config: "bytes: [x\n", args: []string{"hexdiff", a, b}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useConfig(t, tt.config)
			assert.Equal(t, tt.want, run(context.Background(), tt.args))
		})
	}
}

func TestRun_InterruptedExitsZero(t *testing.T) {
	useConfig(t, "")

	dir := t.TempDir()
	a := filepath.Join(dir, "a.bin")
	require.NoError(t, os.WriteFile(a, make([]byte, 64), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, 0, run(ctx, []string{"hexdiff", "-b", "2", "-l", "1", a, a}))
}

func TestRun_AtPrefixedFile(t *testing.T) {
	useConfig(t, "")
	t.Chdir(t.TempDir())
	require.NoError(t, os.WriteFile("@a.bin", []byte{0x41, 0x42}, 0o600))
	require.NoError(t, os.WriteFile("b.bin", []byte{0x41, 0x43}, 0o600))

	assert.Equal(t, 0, run(context.Background(), []string{"hexdiff", "-m", "plain", "@a.bin", "b.bin"}))
}

func TestRun_LocalComparisonLeavesNoCache(t *testing.T) {
	useConfig(t, "")
	cacheDir := filepath.Join(t.TempDir(), "cache")
	t.Setenv("HEXDIFF_CACHE_DIR", cacheDir)

	a := filepath.Join(t.TempDir(), "a.bin")
	require.NoError(t, os.WriteFile(a, []byte{1, 2, 3}, 0o600))

	assert.Equal(t, 0, run(context.Background(), []string{"hexdiff", "-m", "plain", a, a}))
	assert.NoDirExists(t, cacheDir)
}
