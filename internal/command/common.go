// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"

	"github.com/urfave/cli/v3"

	"github.com/jdq/jdq/internal/diff"
	"github.com/jdq/jdq/internal/meta"
	"github.com/jdq/jdq/internal/render"
	"github.com/jdq/jdq/internal/util"
	"github.com/jdq/jdq/internal/value"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// BuildCompareOptions maps the comparison flags onto diff.Options.
func BuildCompareOptions(cmd *cli.Command) diff.Options {
	opts := diff.DefaultOptions()
	if cmd.Bool("keep-key-order") {
		opts.IgnoreKeyOrder = false
	}
	if cmd.Bool("ignore-array-order") {
		opts.IgnoreArrayOrder = true
	}
	if cmd.Bool("loose") {
		opts.StrictType = false
	}
	return opts
}

// BuildRenderOptions maps the rendering flags onto render.Options. The flag
// values arrive as strings so they can ride the config file source chain;
// their validators have already rejected non-numeric input.
func BuildRenderOptions(cmd *cli.Command) render.Options {
	opts := render.DefaultOptions()
	if v, err := strconv.Atoi(cmd.String("indent")); err == nil {
		opts.Indent = v
	}
	if v, err := strconv.Atoi(cmd.String("context")); err == nil {
		opts.Context = v
	}
	if v, err := strconv.Atoi(cmd.String("max-lines")); err == nil {
		opts.MaxLines = v
	}
	return opts
}

// LoadComparePair reads and parses the left and right documents named by the
// command's positional arguments. At most one side may be stdin.
func LoadComparePair(cmd *cli.Command) (left, right *value.Value, err error) {
	m := GetMeta(cmd)

	if m.LeftPath == "" || m.RightPath == "" {
		return nil, nil, fmt.Errorf("two documents are required")
	}
	if m.LeftPath == "-" && m.RightPath == "-" {
		return nil, nil, fmt.Errorf("only one document may be stdin")
	}

	left, err = loadDocument(m.LeftPath)
	if err != nil {
		return nil, nil, err
	}

	right, err = loadDocument(m.RightPath)
	if err != nil {
		return nil, nil, err
	}

	return left, right, nil
}

// loadDocument reads and parses a single document.
func loadDocument(path string) (*value.Value, error) {
	raw, err := util.ReadDocument(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	v, err := value.Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return v, nil
}

// ShortCircuitTLDR checks the --tldr flag and, if present and available,
// runs `tldr jdq <subcmd>` and returns true so the caller can exit early.
func ShortCircuitTLDR(ctx context.Context, cmd *cli.Command, subcmd string) bool {
	if cmd.Bool("tldr") {
		if _, err := exec.LookPath("tldr"); err == nil {
			c := exec.CommandContext(ctx, "tldr", "jdq", subcmd)
			c.Stdout = os.Stdout
			c.Stderr = os.Stderr
			_ = c.Run()
		}
		return true
	}
	return false
}
