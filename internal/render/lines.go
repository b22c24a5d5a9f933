// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"fmt"
	"strings"

	"github.com/apex/log"

	"github.com/jdq/jdq/internal/diff"
	"github.com/jdq/jdq/internal/value"
)

// Options shape one render pass.
type Options struct {
	// Indent is the pretty-printer indent width.
	Indent int `yaml:"indent" json:"Indent"`
	// Context is the number of unchanged lines kept visible around each
	// difference.
	Context int `yaml:"context" json:"Context"`
	// MaxLines caps both panes after pairing so huge documents stay cheap to
	// display.
	MaxLines int `yaml:"maxLines" json:"MaxLines"`
}

// DefaultOptions returns the standard render parameters.
func DefaultOptions() Options {
	return Options{
		Indent:   2,
		Context:  3,
		MaxLines: 10000,
	}
}

// LineKind discriminates display line roles.
type LineKind int

const (
	LineContent LineKind = iota
	LinePadding
	LineCollapse
)

// Line is one display line of one pane. Index is the line's position in the
// pretty-printed text; -1 for padding. Section is the collapse section index
// for collapse markers, -1 otherwise.
type Line struct {
	Index   int
	Kind    LineKind
	Diff    diff.Type
	Section int
	Text    string
}

// Marker locates a difference in the final line sequence, for jump-to-next
// navigation.
type Marker struct {
	Position int
	Diff     diff.Type
}

// Section records one contiguous hidden run of unchanged lines. Start is the
// first paired line index of the run, Lines its length, Expanded whether the
// caller had toggled it open for this pass.
type Section struct {
	Index    int
	Start    int
	Lines    int
	Expanded bool
}

// Result bundles both panes plus derived navigation data. Left and Right are
// always the same length.
type Result struct {
	Left      []Line
	Right     []Line
	Markers   []Marker
	Sections  []Section
	Total     int
	Truncated bool
}

// Render builds the side-by-side line sequences for two raw documents and a
// computed diff. expanded holds the section indices the caller has toggled
// open; section indices are assigned in scan order starting at zero,
// incremented once per contiguous hidden run whether or not it is expanded,
// so indices are stable across re-renders with different toggle states.
func Render(leftText, rightText string, dr *diff.Result, expanded map[int]bool, opts Options) *Result {
	if opts.Indent <= 0 {
		opts.Indent = DefaultOptions().Indent
	}
	if opts.Context < 0 {
		opts.Context = 0
	}
	if opts.MaxLines <= 0 {
		opts.MaxLines = DefaultOptions().MaxLines
	}

	leftLines := splitLines(Pretty(leftText, opts.Indent))
	rightLines := splitLines(Pretty(rightText, opts.Indent))

	flat := dr.Flattened()
	leftAnn := annotate(leftLines, flat, false)
	rightAnn := annotate(rightLines, flat, true)

	n := len(leftLines)
	if len(rightLines) > n {
		n = len(rightLines)
	}
	log.Debugf("render pairing: left=%d right=%d paired=%d", len(leftLines), len(rightLines), n)

	// Pair index-by-index, padding the shorter side.
	pairedLeft := make([]Line, 0, n)
	pairedRight := make([]Line, 0, n)
	for i := 0; i < n; i++ {
		pairedLeft = append(pairedLeft, contentLine(leftLines, leftAnn, i))
		pairedRight = append(pairedRight, contentLine(rightLines, rightAnn, i))
	}

	res := collapse(pairedLeft, pairedRight, expanded, opts)

	// The cap applies identically to both sides post-pairing so they stay
	// equal length.
	if len(res.Left) > opts.MaxLines {
		res.Left = res.Left[:opts.MaxLines]
		res.Right = res.Right[:opts.MaxLines]
		res.Truncated = true
	}
	res.Total = len(res.Left)
	res.Markers = markers(res.Left, res.Right)

	return res
}

// annotate derives a per-line diff type by claiming, for each flattened diff
// item, the first unclaimed line containing the item's rendered primitive
// value. Container-valued items are not line-matched.
func annotate(lines []string, flat []*diff.Item, rightSide bool) []diff.Type {
	ann := make([]diff.Type, len(lines))
	claimed := make([]bool, len(lines))

	for _, it := range flat {
		var v *value.Value
		if rightSide {
			if it.Type != diff.Added && it.Type != diff.Modified {
				continue
			}
			v = it.Right
		} else {
			if it.Type != diff.Removed && it.Type != diff.Modified {
				continue
			}
			v = it.Left
		}
		if v == nil || !v.IsPrimitive() {
			continue
		}

		// Substring matching is a heuristic: duplicate values in a document
		// can claim the wrong line.
		token := lineToken(v)
		for i, line := range lines {
			if claimed[i] || !strings.Contains(line, token) {
				continue
			}
			claimed[i] = true
			ann[i] = it.Type
			break
		}
	}
	return ann
}

// lineToken renders a primitive the way the pretty-printer writes it, so
// the substring search sees the exact on-screen form.
func lineToken(v *value.Value) string {
	if v.Kind == value.KindString {
		return value.QuoteString(v.Str)
	}
	return v.PrimitiveString()
}

func contentLine(lines []string, ann []diff.Type, i int) Line {
	if i >= len(lines) {
		return Line{Index: -1, Kind: LinePadding, Section: -1}
	}
	return Line{
		Index:   i,
		Kind:    LineContent,
		Diff:    ann[i],
		Section: -1,
		Text:    lines[i],
	}
}

// collapse hides maximal runs of lines outside the context window of any
// difference, replacing each run with a single section marker unless the
// caller expanded that section.
func collapse(left, right []Line, expanded map[int]bool, opts Options) *Result {
	n := len(left)
	visible := make([]bool, n)
	anyDiff := false
	for i := 0; i < n; i++ {
		if left[i].Diff == diff.Unchanged && right[i].Diff == diff.Unchanged {
			continue
		}
		anyDiff = true
		lo := i - opts.Context
		if lo < 0 {
			lo = 0
		}
		hi := i + opts.Context
		if hi > n-1 {
			hi = n - 1
		}
		for j := lo; j <= hi; j++ {
			visible[j] = true
		}
	}
	log.Debugf("render collapse: lines=%d anyDiff=%v", n, anyDiff)

	res := &Result{}
	section := 0
	i := 0
	for i < n {
		if visible[i] {
			res.Left = append(res.Left, left[i])
			res.Right = append(res.Right, right[i])
			i++
			continue
		}

		j := i
		for j < n && !visible[j] {
			j++
		}
		open := expanded[section]
		res.Sections = append(res.Sections, Section{
			Index:    section,
			Start:    i,
			Lines:    j - i,
			Expanded: open,
		})
		if open {
			for k := i; k < j; k++ {
				l := left[k]
				r := right[k]
				// Expanded lines remember their section so a viewer can fold
				// them back.
				l.Section = section
				r.Section = section
				res.Left = append(res.Left, l)
				res.Right = append(res.Right, r)
			}
		} else {
			marker := Line{
				Index:   i,
				Kind:    LineCollapse,
				Section: section,
				Text:    fmt.Sprintf("… %d unchanged lines", j-i),
			}
			res.Left = append(res.Left, marker)
			res.Right = append(res.Right, marker)
		}
		section++
		i = j
	}

	return res
}

// markers lists every final position whose content differs on either side.
func markers(left, right []Line) []Marker {
	var out []Marker
	for pos := range left {
		t := diff.Unchanged
		if left[pos].Kind == LineContent && left[pos].Diff != diff.Unchanged {
			t = left[pos].Diff
		} else if right[pos].Kind == LineContent && right[pos].Diff != diff.Unchanged {
			t = right[pos].Diff
		}
		if t != diff.Unchanged {
			out = append(out, Marker{Position: pos, Diff: t})
		}
	}
	return out
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n")
}
