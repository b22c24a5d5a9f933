// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"

	"github.com/jdq/jdq/internal/meta"
)

func TestInitApp(t *testing.T) {
	app, err := InitApp(context.Background(), []string{"jdq", "dq"})
	require.NoError(t, err)

	var names []string
	for _, cmd := range app.Commands {
		names = append(names, cmd.Name)
	}
	assert.ElementsMatch(t, []string{"dq", "pp", "sv", "completion"}, names)
}

func TestInitApp_Positionals(t *testing.T) {
	left := writeDoc(t, `{"a":1}`)
	right := writeDoc(t, `{"a":2}`)

	app, err := InitApp(context.Background(), []string{"jdq", "dq", left, right, "--output", "json"})
	require.NoError(t, err)

	var dq *cli.Command
	for _, cmd := range app.Commands {
		if cmd.Name == "dq" {
			dq = cmd
		}
	}
	require.NotNil(t, dq)

	m := GetMeta(dq)
	assert.Equal(t, left, m.LeftPath)
	assert.Equal(t, right, m.RightPath)
}

func TestGetMeta_Missing(t *testing.T) {
	assert.Equal(t, meta.Meta{}, GetMeta(nil))
	assert.Equal(t, meta.Meta{}, GetMeta(&cli.Command{}))
	assert.Equal(t, meta.Meta{}, GetMeta(&cli.Command{
		Metadata: map[string]any{"meta": "wrong type"},
	}))
}

// runFlagged runs fn inside a command carrying the compare and render flags
// so option mapping is exercised through real flag parsing.
func runFlagged(t *testing.T, args []string, fn func(cmd *cli.Command)) {
	t.Helper()

	cmd := &cli.Command{
		Name: "test",
		Flags: append([]cli.Flag{
			NewIndentFlag(),
			NewContextFlag(),
			NewMaxLinesFlag(),
		}, NewCompareFlags()...),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			fn(cmd)
			return nil
		},
	}

	require.NoError(t, cmd.Run(context.Background(), append([]string{"test"}, args...)))
}

func TestBuildCompareOptions(t *testing.T) {
	tests := []struct {
		name                 string
		args                 []string
		wantIgnoreKeyOrder   bool
		wantIgnoreArrayOrder bool
		wantStrictType       bool
	}{
		{
			name:                 "defaults",
			args:                 nil,
			wantIgnoreKeyOrder:   true,
			wantIgnoreArrayOrder: false,
			wantStrictType:       true,
		},
		{
			name:                 "keep key order",
			args:                 []string{"--keep-key-order"},
			wantIgnoreKeyOrder:   false,
			wantIgnoreArrayOrder: false,
			wantStrictType:       true,
		},
		{
			name:                 "ignore array order",
			args:                 []string{"-A"},
			wantIgnoreKeyOrder:   true,
			wantIgnoreArrayOrder: true,
			wantStrictType:       true,
		},
		{
			name:                 "loose",
			args:                 []string{"--loose"},
			wantIgnoreKeyOrder:   true,
			wantIgnoreArrayOrder: false,
			wantStrictType:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runFlagged(t, tt.args, func(cmd *cli.Command) {
				opts := BuildCompareOptions(cmd)
				assert.Equal(t, tt.wantIgnoreKeyOrder, opts.IgnoreKeyOrder)
				assert.Equal(t, tt.wantIgnoreArrayOrder, opts.IgnoreArrayOrder)
				assert.Equal(t, tt.wantStrictType, opts.StrictType)
			})
		})
	}
}

func TestBuildRenderOptions(t *testing.T) {
	runFlagged(t, nil, func(cmd *cli.Command) {
		opts := BuildRenderOptions(cmd)
		assert.Equal(t, 2, opts.Indent)
		assert.Equal(t, 3, opts.Context)
		assert.Equal(t, 10000, opts.MaxLines)
	})

	runFlagged(t, []string{"--indent", "4", "--context", "1", "--max-lines", "50"}, func(cmd *cli.Command) {
		opts := BuildRenderOptions(cmd)
		assert.Equal(t, 4, opts.Indent)
		assert.Equal(t, 1, opts.Context)
		assert.Equal(t, 50, opts.MaxLines)
	})
}

func TestLoadComparePair(t *testing.T) {
	left := writeDoc(t, `{"a":1}`)
	right := writeDoc(t, `{"a":2}`)

	tests := []struct {
		name      string
		leftPath  string
		rightPath string
		wantErr   bool
	}{
		{
			name:      "both documents",
			leftPath:  left,
			rightPath: right,
		},
		{
			name:    "missing right",
			wantErr: true,
		},
		{
			name:      "both stdin",
			leftPath:  "-",
			rightPath: "-",
			wantErr:   true,
		},
		{
			name:      "unreadable left",
			leftPath:  filepath.Join(t.TempDir(), "nope.json"),
			rightPath: right,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cli.Command{
				Metadata: map[string]any{
					"meta": meta.Meta{
						DocSpec: meta.DocSpec{
							LeftPath:  tt.leftPath,
							RightPath: tt.rightPath,
						},
					},
				},
			}

			l, r, err := LoadComparePair(cmd)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, l)
			assert.NotNil(t, r)
		})
	}
}

func TestLoadComparePair_InvalidJSON(t *testing.T) {
	left := writeDoc(t, `{"a":`)
	right := writeDoc(t, `{"a":2}`)

	cmd := &cli.Command{
		Metadata: map[string]any{
			"meta": meta.Meta{
				DocSpec: meta.DocSpec{LeftPath: left, RightPath: right},
			},
		},
	}

	_, _, err := LoadComparePair(cmd)
	assert.Error(t, err)
}

func TestOutputValidator(t *testing.T) {
	assert.NoError(t, OutputValidator("text"))
	assert.NoError(t, OutputValidator("json"))
	assert.NoError(t, OutputValidator("yaml"))
	assert.Error(t, OutputValidator("raw"))
	assert.Error(t, OutputValidator("csv"))
}

func TestIntValidators(t *testing.T) {
	assert.NoError(t, NonNegativeIntValidator("0"))
	assert.NoError(t, NonNegativeIntValidator("3"))
	assert.Error(t, NonNegativeIntValidator("-1"))
	assert.Error(t, NonNegativeIntValidator("abc"))

	assert.NoError(t, PositiveIntValidator("1"))
	assert.Error(t, PositiveIntValidator("0"))
	assert.Error(t, PositiveIntValidator("x"))
}

func writeDoc(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "doc.json")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}
