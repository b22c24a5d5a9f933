// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/jdq/jdq/internal/diff"
	"github.com/jdq/jdq/internal/meta"
	"github.com/jdq/jdq/internal/output"
)

// dqCommandAction is the action handler for the "dq" subcommand. It compares
// the two documents and emits one record per differing leaf.
func dqCommandAction(ctx context.Context, cmd *cli.Command) error {
	meta := GetMeta(cmd)
	log.Debugf("Executing action for %v", meta.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "dq") {
		return nil
	}

	left, right, err := LoadComparePair(cmd)
	if err != nil {
		return err
	}

	dr := diff.Compare(left, right, BuildCompareOptions(cmd))

	switch {
	case cmd.Bool("summary"):
		fmt.Fprintf(os.Stdout, "added: %s  removed: %s  modified: %s\n",
			humanize.Comma(int64(dr.AddedCount())),
			humanize.Comma(int64(dr.RemovedCount())),
			humanize.Comma(int64(dr.ModifiedCount())))
	case dr.IsIdentical() && cmd.String("output") == "text":
		fmt.Fprintln(os.Stdout, "The documents are identical.")
	default:
		output.SortSpit(dr.Records(), cmd, os.Stdout)
	}

	if cmd.Bool("exit-code") && !dr.IsIdentical() {
		return cli.Exit("", 1)
	}

	return nil
}

// dqCommandBuilder constructs the cli.Command for "dq", wiring metadata,
// flags, and action handlers.
func dqCommandBuilder(meta meta.Meta) *cli.Command {
	return (&ViewCommandBuilder{
		Name:      "dq",
		Usage:     "diff query",
		UsageText: "jdq dq LEFT RIGHT [options]",
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:    "summary",
				Aliases: []string{"S"},
				Usage:   "print difference counts instead of records",
				Value:   false,
			},
			&cli.BoolFlag{
				Name:  "exit-code",
				Usage: "exit 1 when the documents differ",
				Value: false,
			},
		}, NewCompareFlags()...),
		Action: dqCommandAction,
		Meta:   meta,
	}).Build()
}
