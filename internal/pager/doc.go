// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package pager drives the render loop: it prints formatted lines a page at a
// time and blocks on a prompt between pages. Quitting and interrupts are
// normal outcomes, not errors.
package pager
