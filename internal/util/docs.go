// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package util

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Positionals returns the arguments that are not flags and not values consumed
// by a flag. Only the leading run of non-flag arguments is returned, so
// "left.json right.json -o json" yields two positionals while
// "-o json left.json" yields none. Flag value consumption is not modeled;
// commands place their documents first by convention.
func Positionals(args []string) []string {
	var out []string
	for _, a := range args {
		// A bare "-" is the stdin marker, not a flag.
		if strings.HasPrefix(a, "-") && a != "-" {
			break
		}
		out = append(out, a)
	}
	return out
}

// ReadDocument reads the document at path. A path of "-" reads stdin. A
// relative path is resolved against the CWD. It returns an error if the fs
// entry does not exist or is a directory.
func ReadDocument(path string) ([]byte, error) {

	if path == "" {
		return nil, os.ErrInvalid
	}

	if path == "-" {
		raw, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return raw, nil
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		path = filepath.Join(cwd, path)
	}

	if r, err := os.Stat(path); err != nil {
		return nil, err
	} else if r.IsDir() {
		return nil, os.ErrInvalid
	}

	return os.ReadFile(path)
}
