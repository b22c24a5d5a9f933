// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package viewer implements the interactive side-by-side diff UI used by the
// sv command.
package viewer
