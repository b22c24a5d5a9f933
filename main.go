// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/jdq/jdq/internal/command"
	"github.com/jdq/jdq/internal/config"
	"github.com/jdq/jdq/internal/log"
	"github.com/jdq/jdq/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Println(version.Version)
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// processCommandArgs handles command-specific argument processing.
func processCommandArgs(args []string) []string {
	switch {
	case len(args) > 1 && args[1] == "completion":
		// Short-circuit completion: pass args directly.
		return args
	default:
		// Expand @set arguments first, then let later duplicates win so a
		// set's flags can be overridden on the command line.
		args = processSetOnly(args)
		log.Debugf("args after set processing: args=%v", args)

		args = deduplicateFlags(args)
		log.Debugf("args after dedup: args=%v", args)

		return args
	}
}

// deduplicateFlags removes earlier occurrences of a repeated flag, keeping
// the last one together with its value. Positional arguments keep their
// relative positions. A flag consumes the following argument as its value
// when that argument does not itself look like a flag.
func deduplicateFlags(args []string) []string {
	if len(args) <= 2 {
		return args
	}

	type entry struct {
		name   string // empty for a positional
		tokens []string
	}

	var entries []entry
	for i := 2; i < len(args); i++ {
		a := args[i]
		if !strings.HasPrefix(a, "-") || a == "-" {
			entries = append(entries, entry{tokens: []string{a}})
			continue
		}

		name := a
		tokens := []string{a}
		if eq := strings.Index(a, "="); eq != -1 {
			name = a[:eq]
		} else if i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			tokens = append(tokens, args[i+1])
			i++
		}
		entries = append(entries, entry{name: name, tokens: tokens})
	}

	last := make(map[string]int)
	for i, e := range entries {
		if e.name != "" {
			last[e.name] = i
		}
	}

	result := make([]string, 0, len(args))
	result = append(result, args[:2]...)
	for i, e := range entries {
		if e.name != "" && last[e.name] != i {
			continue
		}
		result = append(result, e.tokens...)
	}

	return result
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args) {
		return 0
	}

	args = handleNakedCommand(args)

	// If --help appears anywhere, skip command processing and let the CLI handle it.
	helpFound := false
	for _, a := range args {
		if a == "--help" || a == "-h" {
			helpFound = true
			break
		}
	}

	if !helpFound {
		args = processCommandArgs(args)
	}

	return initAndRunApp(args)
}

// processSetOnly handles the @set logic for all commands, expanding set arguments at the @set position.
func processSetOnly(args []string) []string {
	// Look for an explicit @set argument starting from index 2.
	idx := 2
	set := "defaults"
	removeIdx := -1
	for i, a := range args[idx:] {
		if strings.HasPrefix(a, "@") {
			set = a[1:]
			removeIdx = idx + i
			break
		}
	}
	if removeIdx != -1 {
		// Remove the @set argument.
		args = append(args[:removeIdx], args[removeIdx+1:]...)
		// Expand the set arguments at the removeIdx position.
		setArgs, _ := config.GetStringSlice(args[1] + "." + set)
		for _, arg := range setArgs {
			parts := strings.Fields(arg)
			args = append(args[:removeIdx], append(parts, args[removeIdx:]...)...)
			removeIdx += len(parts)
		}
	}
	return args
}
