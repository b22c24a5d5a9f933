// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package render turns a comparison result and the two raw documents into
// paired, padded, collapsible line sequences for side-by-side display.
//
// Both documents are pretty-printed with deterministic key ordering, lines
// are annotated by matching flattened diff values against line content,
// paired index-by-index with padding on the shorter side, and unchanged
// regions outside a context window collapse into toggleable section markers.
// The output is rebuilt in full whenever an input changes; it is never
// patched incrementally.
package render
