// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package loader reads a comparison source fully into memory. A source is a
// local path or an s3://bucket/key URI, optionally pinned with ?versionId=.
package loader
