// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/jdq/jdq/internal/meta"
)

// ViewCommandBuilder is a helper that constructs a cli.Command for the
// document-view subcommands (dq, pp, sv) using a consistent pattern.
// It accepts the command name, usage text, optional UsageText, custom flags,
// the action handler, and meta. The builder automatically wires metadata,
// adds the tldr flag, applies global flags, and sets up validators.
type ViewCommandBuilder struct {
	Name      string
	Usage     string
	UsageText string
	Flags     []cli.Flag
	Action    func(context.Context, *cli.Command) error
	Meta      meta.Meta
}

// Build returns a configured cli.Command from the builder.
func (vcb *ViewCommandBuilder) Build() *cli.Command {
	return &cli.Command{
		Name:      vcb.Name,
		Usage:     vcb.Usage,
		UsageText: vcb.UsageText,
		Metadata: map[string]any{
			"meta": vcb.Meta,
		},
		Flags: append(vcb.Flags, append([]cli.Flag{
			tldrFlag,
		}, NewGlobalFlags(vcb.Name)...)...),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, c)
		},
		Action: vcb.Action,
	}
}
