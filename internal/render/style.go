// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package render

import (
	"image/color"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"

	"github.com/jdq/jdq/internal/config"
	"github.com/jdq/jdq/internal/diff"
)

// Theme maps diff types and token spans to terminal styles. It is a plain
// value; build one per session and pass it where styled output is needed.
type Theme struct {
	AddedBG    color.Color
	RemovedBG  color.Color
	ModifiedBG color.Color
	PaddingBG  color.Color
	Collapse   lipgloss.Style
	spans      map[SpanKind]lipgloss.Style
}

// DefaultTheme builds a theme from the config file with fallbacks picked for
// the detected terminal background, the same way table colors are resolved
// for query output.
func DefaultTheme() Theme {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	resolveColor := func(key string, light string, dark string) color.Color {
		colorCfg, err := config.GetString("colors." + key)
		if err == nil {
			return lipgloss.Color(colorCfg)
		}
		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	return Theme{
		AddedBG:    resolveColor("added", "#d8f5d8", "#1c4428"),
		RemovedBG:  resolveColor("removed", "#ffd8d8", "#542426"),
		ModifiedBG: resolveColor("modified", "#fff3c8", "#4d3800"),
		PaddingBG:  resolveColor("padding", "#eeeeee", "#2a2a2a"),
		Collapse: lipgloss.NewStyle().
			Faint(true).
			Foreground(resolveColor("collapse", "#888888", "#666666")),
		spans: map[SpanKind]lipgloss.Style{
			SpanWhitespace: lipgloss.NewStyle(),
			SpanKey:        lipgloss.NewStyle().Foreground(resolveColor("key", "#0550ae", "#79c0ff")),
			SpanString:     lipgloss.NewStyle().Foreground(resolveColor("string", "#0a3069", "#a5d6ff")),
			SpanNumber:     lipgloss.NewStyle().Foreground(resolveColor("number", "#953800", "#ffa657")),
			SpanBool:       lipgloss.NewStyle().Foreground(resolveColor("bool", "#8250df", "#d2a8ff")),
			SpanNull:       lipgloss.NewStyle().Foreground(resolveColor("null", "#6e7781", "#8b949e")),
			SpanPunct:      lipgloss.NewStyle(),
		},
	}
}

// StylePane styles an already-computed line sequence into display strings of
// a fixed width. It recomputes nothing, so a theme change only needs this
// call, not a new diff or render.
func (th Theme) StylePane(lines []Line, width int) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = th.StyleLine(l, width)
	}
	return out
}

// StyleLine renders one display line: content lines get syntax-colored spans
// over the diff's background tint, collapse markers render muted, and
// padding renders as a single blank tinted cell to preserve vertical
// alignment.
func (th Theme) StyleLine(l Line, width int) string {
	switch l.Kind {
	case LinePadding:
		return lipgloss.NewStyle().Background(th.PaddingBG).Render(fit("", width))
	case LineCollapse:
		return th.Collapse.Render(fit(l.Text, width))
	}

	bg, tinted := th.diffBG(l.Diff)
	var sb strings.Builder
	for _, span := range Tokenize(fit(l.Text, width)) {
		st := th.spans[span.Kind]
		if tinted {
			st = st.Background(bg)
		}
		sb.WriteString(st.Render(span.Text))
	}
	return sb.String()
}

func (th Theme) diffBG(t diff.Type) (color.Color, bool) {
	switch t {
	case diff.Added:
		return th.AddedBG, true
	case diff.Removed:
		return th.RemovedBG, true
	case diff.Modified:
		return th.ModifiedBG, true
	default:
		return nil, false
	}
}

// fit pads or trims plain text to an exact display width. Width zero leaves
// the text alone.
func fit(text string, width int) string {
	if width <= 0 {
		return text
	}
	w := lipgloss.Width(text)
	if w == width {
		return text
	}
	if w < width {
		return text + strings.Repeat(" ", width-w)
	}
	runes := []rune(text)
	for len(runes) > 0 && lipgloss.Width(string(runes)) > width-1 {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
