// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package differ aligns two byte streams to a common length and compares them
// position by position. There is no insertion or deletion detection; a byte is
// only ever compared with the byte at the same offset in the other stream.
package differ
