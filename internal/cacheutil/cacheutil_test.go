// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package cacheutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDir_WithCacheDirEnv verifies Dir() respects HEXDIFF_CACHE_DIR.
func TestDir_WithCacheDirEnv(t *testing.T) {
	customDir := t.TempDir()
	t.Setenv("HEXDIFF_CACHE_DIR", customDir)

	result, ok := Dir()

	assert.True(t, ok)
	assert.Equal(t, customDir, result)
}

// TestDir_FallsBackToUserCacheDir verifies an empty HEXDIFF_CACHE_DIR is
// treated as unset.
func TestDir_FallsBackToUserCacheDir(t *testing.T) {
	t.Setenv("HEXDIFF_CACHE_DIR", "")

	result, ok := Dir()
	if ok {
		assert.True(t, filepath.IsAbs(result))
		assert.Equal(t, "hexdiff", filepath.Base(result))
	}
}

func TestEnabled(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{"empty string", "", true},
		{"1", "1", true},
		{"true", "true", true},
		{"yes", "yes", true},
		{"0", "0", false},
		{"false", "false", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("HEXDIFF_CACHE", tt.value)
			assert.Equal(t, tt.expected, Enabled())
		})
	}
}

func TestEnsureBaseDir(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		t.Setenv("HEXDIFF_CACHE", "0")
		path, ok, err := EnsureBaseDir()
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, path)
	})

	t.Run("creates directory", func(t *testing.T) {
		cacheDir := filepath.Join(t.TempDir(), "nested", "cache")
		t.Setenv("HEXDIFF_CACHE_DIR", cacheDir)
		t.Setenv("HEXDIFF_CACHE", "")

		path, ok, err := EnsureBaseDir()
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, cacheDir, path)
		assert.DirExists(t, cacheDir)
	})
}

func TestWriteRead_RoundTripsBinary(t *testing.T) {
	t.Setenv("HEXDIFF_CACHE_DIR", t.TempDir())
	t.Setenv("HEXDIFF_CACHE", "")

	data := []byte{0x00, 0x20, 0x0a, 0xff, 0x20, 0x0d}
	sub := []string{"s3", "bucket"}
	require.NoError(t, Write(sub, "key@v1", data))

	entry, ok := Read(sub, "key@v1")
	require.True(t, ok)
	assert.Equal(t, data, entry.Data, "whitespace at the edges must survive")
	assert.Equal(t, "key@v1", entry.Key)
	assert.Equal(t, encodeKey("key@v1"), entry.EncodedKey)
	assert.Equal(t, entry.EncodedKey, filepath.Base(entry.Path))

	info, err := os.Stat(entry.Path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(entry.Path), ".partial-*"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestWrite_Overwrites(t *testing.T) {
	t.Setenv("HEXDIFF_CACHE_DIR", t.TempDir())
	t.Setenv("HEXDIFF_CACHE", "")

	require.NoError(t, Write(nil, "k", []byte("first")))
	require.NoError(t, Write(nil, "k", []byte("second")))

	entry, ok := Read(nil, "k")
	require.True(t, ok)
	assert.Equal(t, []byte("second"), entry.Data)
}

func TestReadWrite_Disabled(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("HEXDIFF_CACHE_DIR", dir)
	t.Setenv("HEXDIFF_CACHE", "false")

	assert.NoError(t, Write(nil, "k", []byte("data")))
	_, ok := Read(nil, "k")
	assert.False(t, ok)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRead_Missing(t *testing.T) {
	t.Setenv("HEXDIFF_CACHE_DIR", t.TempDir())
	t.Setenv("HEXDIFF_CACHE", "")

	entry, ok := Read([]string{"s3"}, "nope")
	assert.False(t, ok)
	assert.Nil(t, entry)
}

func TestPurge(t *testing.T) {
	tmpDir := t.TempDir()
	t.Setenv("HEXDIFF_CACHE_DIR", tmpDir)

	oldFile := filepath.Join(tmpDir, "a", "old")
	newFile := filepath.Join(tmpDir, "a", "new")
	require.NoError(t, os.MkdirAll(filepath.Dir(oldFile), 0o755))
	require.NoError(t, os.WriteFile(oldFile, []byte("old"), 0o600))
	require.NoError(t, os.WriteFile(newFile, []byte("new"), 0o600))
	past := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(oldFile, past, past))

	require.NoError(t, Purge(0))
	assert.FileExists(t, oldFile, "zero hours disables purge")

	require.NoError(t, Purge(24))
	assert.NoFileExists(t, oldFile)
	assert.FileExists(t, newFile)
}

func TestPurge_MissingBase(t *testing.T) {
	t.Setenv("HEXDIFF_CACHE_DIR", filepath.Join(t.TempDir(), "absent"))
	assert.NoError(t, Purge(1))
}

func TestEncodeKey(t *testing.T) {
	assert.Equal(t, encodeKey("x"), encodeKey("x"))
	assert.NotEqual(t, encodeKey("x"), encodeKey("y"))
	assert.Len(t, encodeKey("x"), 64)
}
