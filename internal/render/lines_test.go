// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package render

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdq/jdq/internal/diff"
	"github.com/jdq/jdq/internal/value"
)

func compareTexts(t *testing.T, left, right string) *diff.Result {
	t.Helper()
	lv, err := value.Parse(left)
	require.NoError(t, err)
	rv, err := value.Parse(right)
	require.NoError(t, err)
	return diff.Compare(lv, rv, diff.DefaultOptions())
}

// wideDoc builds an object with n sequential keys, overriding some values.
func wideDoc(n int, overrides map[int]string) string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteByte(',')
		}
		val := fmt.Sprintf("%d", i*10)
		if ov, ok := overrides[i]; ok {
			val = ov
		}
		fmt.Fprintf(&sb, `"k%02d":%s`, i, val)
	}
	sb.WriteByte('}')
	return sb.String()
}

// Both panes are always the same length, for any input shapes.
func TestRender_PairingInvariant(t *testing.T) {
	tests := []struct {
		name  string
		left  string
		right string
	}{
		{name: "left longer", left: `[1,2,3,4,5]`, right: `[1]`},
		{name: "right longer", left: `{}`, right: `{"a":{"b":[1,2,3]}}`},
		{name: "identical", left: `{"a":1}`, right: `{"a":1}`},
		{name: "invalid left", left: "oops", right: `{"a":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lv, _ := value.Parse(tt.left)
			rv, _ := value.Parse(tt.right)
			dr := diff.Compare(lv, rv, diff.DefaultOptions())

			res := Render(tt.left, tt.right, dr, nil, DefaultOptions())
			assert.Equal(t, len(res.Left), len(res.Right))
			assert.Equal(t, res.Total, len(res.Left))
		})
	}
}

func TestRender_PaddingOnShorterSide(t *testing.T) {
	res := Render(`[1,2,3,4,5]`, `[1]`, compareTexts(t, `[1,2,3,4,5]`, `[1]`), nil, DefaultOptions())

	require.Equal(t, len(res.Left), len(res.Right))

	padding := 0
	for _, l := range res.Right {
		if l.Kind == LinePadding {
			padding++
			assert.Equal(t, -1, l.Index)
		}
	}
	assert.Equal(t, 4, padding, "right pane pads the four missing lines")

	for _, l := range res.Left {
		assert.NotEqual(t, LinePadding, l.Kind, "longer side has no padding")
	}
}

func TestRender_AnnotatesModifiedLines(t *testing.T) {
	left := `{"a":1,"b":2}`
	right := `{"a":1,"b":3}`
	res := Render(left, right, compareTexts(t, left, right), nil, DefaultOptions())

	var leftMarked, rightMarked []int
	for i, l := range res.Left {
		if l.Kind == LineContent && l.Diff != diff.Unchanged {
			leftMarked = append(leftMarked, i)
			assert.Equal(t, diff.Modified, l.Diff)
		}
	}
	for i, l := range res.Right {
		if l.Kind == LineContent && l.Diff != diff.Unchanged {
			rightMarked = append(rightMarked, i)
			assert.Equal(t, diff.Modified, l.Diff)
		}
	}
	assert.Equal(t, []int{2}, leftMarked)
	assert.Equal(t, []int{2}, rightMarked)
}

func TestRender_CollapseSections(t *testing.T) {
	left := wideDoc(20, nil)
	right := wideDoc(20, map[int]string{10: `"changed"`})
	res := Render(left, right, compareTexts(t, left, right), nil, DefaultOptions())

	require.Len(t, res.Sections, 2, "runs before and after the context window")
	assert.Equal(t, 0, res.Sections[0].Index)
	assert.Equal(t, 1, res.Sections[1].Index)
	assert.False(t, res.Sections[0].Expanded)

	collapseLines := 0
	for _, l := range res.Left {
		if l.Kind == LineCollapse {
			collapseLines++
			assert.Contains(t, l.Text, "unchanged lines")
		}
	}
	assert.Equal(t, 2, collapseLines)
}

// Expanding a collapsed section restores exactly its hidden lines, with no
// loss or duplication, and keeps section indices stable.
func TestRender_CollapseRoundTrip(t *testing.T) {
	left := wideDoc(30, nil)
	right := wideDoc(30, map[int]string{15: `"changed"`})
	dr := compareTexts(t, left, right)

	folded := Render(left, right, dr, nil, DefaultOptions())
	require.Len(t, folded.Sections, 2)
	hidden := folded.Sections[0].Lines

	open := Render(left, right, dr, map[int]bool{0: true}, DefaultOptions())
	require.Len(t, open.Sections, 2, "section count unchanged by expansion")
	assert.True(t, open.Sections[0].Expanded)
	assert.Equal(t, hidden, open.Sections[0].Lines)

	// One marker line replaced by the hidden run.
	assert.Equal(t, folded.Total-1+hidden, open.Total)

	// Folding back reproduces the original output.
	refolded := Render(left, right, dr, nil, DefaultOptions())
	assert.Equal(t, folded.Total, refolded.Total)

	// Expanded lines are tagged with their section for re-folding.
	section0 := 0
	for _, l := range open.Left {
		if l.Kind == LineContent && l.Section == 0 {
			section0++
		}
	}
	assert.Equal(t, hidden, section0)
}

func TestRender_IdenticalDocumentsCollapseWhole(t *testing.T) {
	doc := wideDoc(12, nil)
	res := Render(doc, doc, compareTexts(t, doc, doc), nil, DefaultOptions())

	require.Len(t, res.Sections, 1)
	assert.Equal(t, 1, res.Total, "everything folds into one marker")
	assert.Empty(t, res.Markers)
}

func TestRender_Truncation(t *testing.T) {
	left := wideDoc(50, nil)
	right := wideDoc(50, map[int]string{0: "true", 20: "true", 49: "true"})
	opts := DefaultOptions()
	opts.MaxLines = 10

	res := Render(left, right, compareTexts(t, left, right), nil, opts)

	assert.True(t, res.Truncated)
	assert.Equal(t, 10, res.Total)
	assert.Len(t, res.Left, 10)
	assert.Len(t, res.Right, 10)

	for _, m := range res.Markers {
		assert.Less(t, m.Position, 10, "markers only reference surviving lines")
	}
}

func TestRender_Markers(t *testing.T) {
	left := `{"a":1,"b":2,"c":3}`
	right := `{"a":1,"b":9,"d":4}`
	res := Render(left, right, compareTexts(t, left, right), nil, DefaultOptions())

	require.NotEmpty(t, res.Markers)
	for _, m := range res.Markers {
		assert.NotEqual(t, diff.Unchanged, m.Diff)
		onLeft := res.Left[m.Position].Kind == LineContent && res.Left[m.Position].Diff != diff.Unchanged
		onRight := res.Right[m.Position].Kind == LineContent && res.Right[m.Position].Diff != diff.Unchanged
		assert.True(t, onLeft || onRight)
	}
}

func TestRender_InvalidInputFallsThrough(t *testing.T) {
	left := "this is not json"
	right := `{"a":1}`
	lv, err := value.Parse(right)
	require.NoError(t, err)
	dr := diff.Compare(lv, lv, diff.DefaultOptions())

	res := Render(left, right, dr, nil, DefaultOptions())
	assert.Equal(t, len(res.Left), len(res.Right))
	assert.Equal(t, "this is not json", res.Left[0].Text, "invalid side passes through raw")
}
