// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output renders aligned byte sequences as side-by-side hex lines and
// marks differing positions through a pluggable Marker.
package output
