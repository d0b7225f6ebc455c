package ui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rahulvramesh/diskcanvas/internal/aggregate"
	"github.com/rahulvramesh/diskcanvas/internal/layout"
	"github.com/rahulvramesh/diskcanvas/internal/render"
	"github.com/rahulvramesh/diskcanvas/internal/types"
)

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.state == "view" {
			m.rebuild()
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "D":
			m.detailed = !m.detailed
			if m.state == "view" {
				m.rebuild()
			}
			return m, nil

		case "U":
			m.treemap = !m.treemap
			if m.state == "view" {
				m.rebuild()
			}
			return m, nil

		case "f":
			m.filesOnly = !m.filesOnly
			if m.state == "view" {
				m.rebuild()
			}
			return m, nil

		case "r":
			m.state = "scanning"
			m.err = nil
			return m, tea.Batch(m.spinner.Tick, performScan(m.cfg))
		}

	case types.ScanCompleteMsg:
		m.entries = msg.Entries
		m.stats = msg.Stats
		m.state = "view"
		m.rebuild()
		return m, nil

	case types.ErrMsg:
		m.err = msg.Err
		m.state = "view"
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	if m.state == "view" {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

// rebuild re-aggregates and re-packs the canvas for the current toggles
// and terminal size.
func (m *Model) rebuild() {
	m.agg = aggregate.Aggregate(m.entries, m.cfg.MaxDepth, m.cfg.TopN, m.filesOnly)

	mode := layout.Mosaic
	if m.treemap {
		mode = layout.Treemap
	}
	grid, err := layout.Layout(m.agg.Weights(), m.canvasWidth(), m.canvasHeight(), mode)
	if err != nil {
		m.err = err
		return
	}
	m.canvas = render.Canvas(grid, m.detailed)
	m.table = m.buildTable()
}

func (m Model) canvasWidth() int {
	w := m.width - 6
	if w < 10 {
		w = 10
	}
	return w
}

func (m Model) canvasHeight() int {
	h := m.height / 3
	if h < 4 {
		h = 4
	}
	return h
}

// buildTable fills the bubbles table with the per-depth ranking.
func (m Model) buildTable() table.Model {
	pathWidth := m.width - 44
	if pathWidth < 20 {
		pathWidth = 20
	}
	columns := []table.Column{
		{Title: "Size", Width: 10},
		{Title: "Type", Width: 6},
		{Title: "Depth", Width: 5},
		{Title: "Category", Width: 12},
		{Title: "Path", Width: pathWidth},
	}

	var rows []table.Row
	for d := 0; d < len(m.agg.TopByDepth); d++ {
		for _, e := range m.agg.TopByDepth[d] {
			itemType := "[FILE]"
			if e.IsDir {
				itemType = "[DIR]"
			}
			rows = append(rows, table.Row{
				render.HumanSize(e.Size),
				itemType,
				strconv.Itoa(e.Depth),
				e.Category.String(),
				e.Path,
			})
		}
	}

	height := len(rows) + 1
	if max := m.height / 3; height > max && max > 2 {
		height = max
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}
