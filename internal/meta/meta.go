// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"

	"github.com/jdq/jdq/internal/config"
)

// DocSpec holds the resolved left/right document locations a comparison
// command operates on. A path of "-" means stdin.
type DocSpec struct {
	LeftPath  string
	RightPath string
}

// Meta contains runtime metadata shared by commands. It carries CLI
// arguments, loaded configuration, context, the resolved document
// specification, and the starting working directory.
type Meta struct {
	Args    []string
	Config  config.Type
	Context context.Context
	DocSpec
	StartingDir string
}
