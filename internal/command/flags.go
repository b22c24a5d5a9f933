// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"os/exec"

	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"
)

var tldrFlag *cli.BoolFlag = &cli.BoolFlag{
	Name:        "tldr",
	Usage:       "show tldr page",
	Hidden:      !pathHas("tldr"),
	HideDefault: true,
}

func NewGlobalFlags(params ...string) (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Value:   false,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Value:   "text",
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.IntFlag{
			Name:  "padding",
			Usage: "extra spaces between table columns",
			Value: 0,
		},
		&cli.StringFlag{
			Name:    "sort",
			Aliases: []string{"s"},
			Usage:   "comma-separated list of record fields to sort the results by",
		},
		&cli.BoolFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Value:   false,
		},
	}

	return
}

// NewCompareFlags returns the flags shared by the commands that run a
// comparison (dq and sv).
func NewCompareFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "keep-key-order",
			Aliases: []string{"k"},
			Usage:   "treat object key order as significant",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("JDQ_KEEP_KEY_ORDER"),
			),
			Value: false,
		},
		&cli.BoolFlag{
			Name:    "ignore-array-order",
			Aliases: []string{"A"},
			Usage:   "match array elements across positions",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("JDQ_IGNORE_ARRAY_ORDER"),
			),
			Value: false,
		},
		&cli.BoolFlag{
			Name:    "loose",
			Aliases: []string{"L"},
			Usage:   "compare primitives of different types by rendered value",
			Sources: cli.NewValueSourceChain(
				cli.EnvVar("JDQ_LOOSE"),
			),
			Value: false,
		},
	}
}

// NewIndentFlag constructs a cli.StringFlag for the "indent" flag, optionally
// namespaced to a command and config file. params[1] is the config file. The
// value is kept as a string so it can ride the same config file source chain
// as the other flags.
func NewIndentFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:    "indent",
		Aliases: []string{"i"},
		Usage:   "spaces per nesting level in rendered documents",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("JDQ_INDENT"),
		),
		Value: "2",
		Validator: func(value string) error {
			return FlagValidators(value, NonNegativeIntValidator)
		},
	}

	if len(params) == 2 {
		flag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], flag)
	}

	return
}

// NewContextFlag constructs a cli.StringFlag for the "context" flag,
// optionally namespaced to a command and config file. params[1] is the config
// file.
func NewContextFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:    "context",
		Aliases: []string{"C"},
		Usage:   "unchanged lines kept around each difference",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("JDQ_CONTEXT"),
		),
		Value: "3",
		Validator: func(value string) error {
			return FlagValidators(value, NonNegativeIntValidator)
		},
	}

	if len(params) == 2 {
		flag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], flag)
	}

	return
}

// NewMaxLinesFlag constructs a cli.StringFlag for the "max-lines" flag,
// optionally namespaced to a command and config file. params[1] is the config
// file.
func NewMaxLinesFlag(params ...string) (flag *cli.StringFlag) {
	flag = &cli.StringFlag{
		Name:  "max-lines",
		Usage: "cap on rendered lines per side",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("JDQ_MAX_LINES"),
		),
		Value: "10000",
		Validator: func(value string) error {
			return FlagValidators(value, PositiveIntValidator)
		},
	}

	if len(params) == 2 {
		flag = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], flag)
	}

	return
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config file
// sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	src := yaml.YAML(ns+"."+flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	src = yaml.YAML(flag.Name, altsrc.StringSourcer(path))
	flag.Sources.Chain = append(flag.Sources.Chain, src)

	return flag
}

// pathHas checks if the given target exists in PATH.
func pathHas(target string) bool {
	_, err := exec.LookPath(target)
	return err == nil
}
