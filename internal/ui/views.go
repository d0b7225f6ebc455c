package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/rahulvramesh/diskcanvas/internal/render"
)

// View renders the UI
func (m Model) View() string {
	var s strings.Builder

	header := TitleStyle.Render("🗺  Disk Canvas")
	s.WriteString("\n")
	s.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, header))
	s.WriteString("\n\n")

	var content string
	switch m.state {
	case "scanning":
		content = m.renderScanning()
	case "view":
		content = m.renderView()
	}

	s.WriteString(lipgloss.NewStyle().Padding(0, 2).Render(content))

	if m.err != nil {
		s.WriteString("\n\n")
		s.WriteString(lipgloss.NewStyle().Padding(0, 2).Render(
			ErrorStyle.Render(fmt.Sprintf("Error: %v", m.err))))
	}

	s.WriteString("\n")
	return s.String()
}

func (m Model) renderScanning() string {
	var s strings.Builder

	s.WriteString(HeaderStyle.Render("Scanning " + m.cfg.Root + "..."))
	s.WriteString("\n\n")
	s.WriteString("  " + m.spinner.View() + " Walking the directory tree")
	s.WriteString("\n\n")
	s.WriteString(DimStyle.Render("Please wait, scanning your directories..."))

	return s.String()
}

func (m Model) renderView() string {
	if m.agg == nil {
		return DimStyle.Render("Nothing scanned yet")
	}

	var s strings.Builder

	summary := fmt.Sprintf("%s • %s items ranked • total %s",
		m.cfg.Root,
		humanize.Comma(int64(len(m.entries))),
		render.HumanSize(m.agg.Total))
	s.WriteString(SuccessStyle.Render(summary))
	s.WriteString("\n")
	if skipped := m.stats.Skipped(); skipped > 0 {
		s.WriteString(DimStyle.Render(fmt.Sprintf("%d items skipped during scan", skipped)))
		s.WriteString("\n")
	}
	s.WriteString("\n")

	s.WriteString(m.canvas)
	s.WriteString("\n")
	s.WriteString(m.table.View())
	s.WriteString("\n")
	s.WriteString(render.Legend(m.agg, m.detailed))

	s.WriteString("\n")
	mode := "mosaic"
	if m.treemap {
		mode = "treemap"
	}
	s.WriteString(DimStyle.Render(fmt.Sprintf(
		"[%s] D: detail • U: treemap • f: files only • r: rescan • q: quit", mode)))

	return s.String()
}
