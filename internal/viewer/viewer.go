// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package viewer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/jdq/jdq/internal/diff"
	"github.com/jdq/jdq/internal/render"
)

// svModel represents the Bubble Tea model for the sv command.
type svModel struct {
	leftName  string
	rightName string
	leftText  string
	rightText string
	dr        *diff.Result
	opts      render.Options
	theme     render.Theme

	expanded map[int]bool
	res      *render.Result
	view     viewport.Model
	width    int
	ready    bool
	marker   int
}

func initialSvModel(leftName, rightName, leftText, rightText string, dr *diff.Result, opts render.Options) svModel {
	m := svModel{
		leftName:  leftName,
		rightName: rightName,
		leftText:  leftText,
		rightText: rightText,
		dr:        dr,
		opts:      opts,
		theme:     render.DefaultTheme(),
		expanded:  map[int]bool{},
		marker:    -1,
	}
	m.res = render.Render(leftText, rightText, dr, m.expanded, opts)
	return m
}

func (m svModel) Init() tea.Cmd {
	return nil
}

func (m svModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		headerHeight := 1
		footerHeight := 1
		if !m.ready {
			m.view = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.ready = true
		} else {
			m.view.Width = msg.Width
			m.view.Height = msg.Height - headerHeight - footerHeight
		}
		m.view.SetContent(m.content())
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit

		case "n":
			m.jump(1)
			return m, nil

		case "p":
			m.jump(-1)
			return m, nil

		case "enter", " ":
			m.toggleTopSection()
			return m, nil

		case "e":
			for _, s := range m.res.Sections {
				m.expanded[s.Index] = true
			}
			m.rerender()
			return m, nil

		case "c":
			m.expanded = map[int]bool{}
			m.rerender()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.view, cmd = m.view.Update(msg)
	return m, cmd
}

func (m svModel) View() string {
	if !m.ready {
		return "loading..."
	}
	return m.header() + "\n" + m.view.View() + "\n" + m.footer()
}

// content renders both panes at the current width and joins them line by
// line.
func (m *svModel) content() string {
	paneWidth := (m.width - 3) / 2
	lp := m.theme.StylePane(m.res.Left, paneWidth)
	rp := m.theme.StylePane(m.res.Right, paneWidth)

	var sb strings.Builder
	for i := range lp {
		sb.WriteString(lp[i])
		sb.WriteString(" │ ")
		sb.WriteString(rp[i])
		if i < len(lp)-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// rerender recomputes the line pairing after a fold toggle, keeping the
// scroll position in bounds.
func (m *svModel) rerender() {
	m.res = render.Render(m.leftText, m.rightText, m.dr, m.expanded, m.opts)
	m.view.SetContent(m.content())
	if m.view.YOffset > m.res.Total-1 {
		m.view.GotoBottom()
	}
}

// jump moves the view to the next (dir 1) or previous (dir -1) difference
// marker.
func (m *svModel) jump(dir int) {
	if len(m.res.Markers) == 0 {
		return
	}

	next := m.marker + dir
	if next < 0 {
		next = len(m.res.Markers) - 1
	}
	if next >= len(m.res.Markers) {
		next = 0
	}

	m.marker = next
	m.view.SetYOffset(m.res.Markers[next].Position)
}

// toggleTopSection flips the first fold marker visible at or below the top
// of the view.
func (m *svModel) toggleTopSection() {
	for i := m.view.YOffset; i < len(m.res.Left); i++ {
		l := m.res.Left[i]
		if l.Kind == render.LineCollapse || (l.Kind == render.LineContent && l.Section >= 0) {
			m.expanded[l.Section] = !m.expanded[l.Section]
			m.rerender()
			return
		}
	}
}

func (m svModel) header() string {
	style := lipgloss.NewStyle().Bold(true)
	return style.Render(fmt.Sprintf("%s (%s) | %s (%s)  +%s -%s ~%s",
		m.leftName, humanize.Bytes(uint64(len(m.leftText))),
		m.rightName, humanize.Bytes(uint64(len(m.rightText))),
		humanize.Comma(int64(m.dr.AddedCount())),
		humanize.Comma(int64(m.dr.RemovedCount())),
		humanize.Comma(int64(m.dr.ModifiedCount()))))
}

func (m svModel) footer() string {
	style := lipgloss.NewStyle().Faint(true)
	pos := fmt.Sprintf("%3.f%%", m.view.ScrollPercent()*100)
	return style.Render(fmt.Sprintf(
		"%s  n/p jump  enter fold  e expand all  c collapse all  q quit", pos))
}

// Run opens the interactive viewer and blocks until the user quits.
func Run(leftName, rightName, leftText, rightText string, dr *diff.Result, opts render.Options) error {
	p := tea.NewProgram(initialSvModel(leftName, rightName, leftText, rightText, dr, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
