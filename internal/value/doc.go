// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package value holds the parsed, typed in-memory representation of a JSON
// document. Objects remember their key insertion order so comparisons can
// honor left-document ordering when key order matters.
package value
