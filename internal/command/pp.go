// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"

	"github.com/jdq/jdq/internal/diff"
	"github.com/jdq/jdq/internal/meta"
	"github.com/jdq/jdq/internal/render"
	"github.com/jdq/jdq/internal/util"
)

// ppCommandAction is the action handler for the "pp" subcommand. It
// pretty-prints a single document with deterministic key order. Input that is
// not valid JSON passes through untouched.
func ppCommandAction(ctx context.Context, cmd *cli.Command) error {
	meta := GetMeta(cmd)
	log.Debugf("Executing action for %v", meta.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "pp") {
		return nil
	}

	path := meta.LeftPath
	if path == "" {
		path = "-"
	}

	raw, err := util.ReadDocument(path)
	if err != nil {
		return err
	}

	text := render.Pretty(string(raw), BuildRenderOptions(cmd).Indent)

	if !cmd.Bool("color") {
		fmt.Fprintln(os.Stdout, text)
		return nil
	}

	th := render.DefaultTheme()
	for _, line := range strings.Split(text, "\n") {
		l := render.Line{Kind: render.LineContent, Diff: diff.Unchanged, Text: line}
		fmt.Fprintln(os.Stdout, th.StyleLine(l, 0))
	}

	return nil
}

// ppCommandBuilder constructs the cli.Command for "pp", wiring metadata,
// flags, and action handlers.
func ppCommandBuilder(meta meta.Meta) *cli.Command {
	return (&ViewCommandBuilder{
		Name:      "pp",
		Usage:     "pretty-print a document",
		UsageText: "jdq pp [DOC] [options]",
		Flags: []cli.Flag{
			NewIndentFlag("pp", meta.Config.Source),
		},
		Action: ppCommandAction,
		Meta:   meta,
	}).Build()
}
