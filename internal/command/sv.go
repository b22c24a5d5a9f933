// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/jdq/jdq/internal/diff"
	"github.com/jdq/jdq/internal/meta"
	"github.com/jdq/jdq/internal/render"
	"github.com/jdq/jdq/internal/viewer"
)

// svCommandAction is the action handler for the "sv" subcommand. It renders
// the two documents side by side with differences highlighted and unchanged
// runs folded away. With --interactive the panes open in a scrollable UI.
func svCommandAction(ctx context.Context, cmd *cli.Command) error {
	meta := GetMeta(cmd)
	log.Debugf("Executing action for %v", meta.Args[1:])

	if ShortCircuitTLDR(ctx, cmd, "sv") {
		return nil
	}

	left, right, err := LoadComparePair(cmd)
	if err != nil {
		return err
	}

	dr := diff.Compare(left, right, BuildCompareOptions(cmd))
	ropts := BuildRenderOptions(cmd)

	if cmd.Bool("interactive") {
		return viewer.Run(meta.LeftPath, meta.RightPath,
			left.Canonical(), right.Canonical(), dr, ropts)
	}

	expanded := map[int]bool{}
	res := render.Render(left.Canonical(), right.Canonical(), dr, expanded, ropts)
	if cmd.Bool("expand-all") {
		for _, s := range res.Sections {
			expanded[s.Index] = true
		}
		res = render.Render(left.Canonical(), right.Canonical(), dr, expanded, ropts)
	}

	paneWidth := svPaneWidth(cmd.Int("width"))

	th := render.DefaultTheme()
	lp := th.StylePane(res.Left, paneWidth)
	rp := th.StylePane(res.Right, paneWidth)
	for i := range lp {
		fmt.Fprintf(os.Stdout, "%s │ %s\n", lp[i], rp[i])
	}

	if res.Truncated {
		fmt.Fprintf(os.Stdout, "(output truncated at %d lines)\n", res.Total)
	}

	return nil
}

// svPaneWidth derives the per-pane width from --width, or from the terminal
// when --width is zero. Output that is not a terminal gets unpadded lines.
func svPaneWidth(flagWidth int) int {
	if flagWidth > 0 {
		return (flagWidth - 3) / 2
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 7 {
		return (w - 3) / 2
	}
	return 0
}

// svCommandBuilder constructs the cli.Command for "sv", wiring metadata,
// flags, and action handlers.
func svCommandBuilder(meta meta.Meta) *cli.Command {
	return (&ViewCommandBuilder{
		Name:      "sv",
		Usage:     "side-by-side view",
		UsageText: "jdq sv LEFT RIGHT [options]",
		Flags: append([]cli.Flag{
			&cli.BoolFlag{
				Name:    "interactive",
				Aliases: []string{"I"},
				Usage:   "open the view in a scrollable UI",
				Value:   false,
			},
			&cli.BoolFlag{
				Name:    "expand-all",
				Aliases: []string{"e"},
				Usage:   "show folded unchanged sections",
				Value:   false,
			},
			&cli.IntFlag{
				Name:  "width",
				Usage: "total display width, 0 to detect",
				Value: 0,
			},
			NewIndentFlag("sv", meta.Config.Source),
			NewContextFlag("sv", meta.Config.Source),
			NewMaxLinesFlag("sv", meta.Config.Source),
		}, NewCompareFlags()...),
		Action: svCommandAction,
		Meta:   meta,
	}).Build()
}
