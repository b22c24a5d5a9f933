// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/jdq/jdq/internal/config"
	"github.com/jdq/jdq/internal/meta"
	"github.com/jdq/jdq/internal/util"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {

	// Save the CWD at startup and then defer restoring it so we're tidy.
	sd, _ := os.Getwd()
	defer func() {
		if err := os.Chdir(sd); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to restore directory: %v\n", err)
		}
	}()

	// The arg[1] immediately following the binary (arg[0]) is the jdq
	// subcommand and also represents the namespace key to be used when
	// retrieving config values. arg[1] could be -h/--help, so ignore it if it
	// appears to be a flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}

	cfg, _ := config.Load() //nolint
	cfg.Namespace = ns
	m := meta.Meta{
		Args:        args,
		Config:      cfg,
		Context:     ctx,
		StartingDir: sd,
	}

	// Comparison commands take two positional documents; pp takes one. A "-"
	// reads from stdin. Resolution failures are left to each command's action
	// so --help still works on a bad path.
	if len(args) > 2 {
		positionals := util.Positionals(args[2:])
		if len(positionals) > 0 {
			m.LeftPath = positionals[0]
		}
		if len(positionals) > 1 {
			m.RightPath = positionals[1]
		}
	}

	app := &cli.Command{
		Name:  "jdq",
		Usage: "JSON diff query",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "jdq version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		dqCommandBuilder(m),
		ppCommandBuilder(m),
		svCommandBuilder(m),
		completionCommandBuilder(m),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
