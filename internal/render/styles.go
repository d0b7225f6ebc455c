package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rahulvramesh/diskcanvas/internal/types"
)

// Color returns the fixed hex color for a category. Every category has
// exactly one color, shared by the grid and the legend.
func Color(cat types.Category) lipgloss.Color {
	switch cat {
	case types.Code:
		return lipgloss.Color("#636EFA")
	case types.Notebook:
		return lipgloss.Color("#EF553B")
	case types.Data:
		return lipgloss.Color("#00CC96")
	case types.Compressed:
		return lipgloss.Color("#AB63FA")
	case types.Cache:
		return lipgloss.Color("#FFA15A")
	case types.Image:
		return lipgloss.Color("#19D3F3")
	case types.Video:
		return lipgloss.Color("#FF6692")
	case types.Audio:
		return lipgloss.Color("#B6E880")
	case types.Document:
		return lipgloss.Color("#FF97FF")
	case types.Build:
		return lipgloss.Color("#8C564B")
	case types.Config:
		return lipgloss.Color("#FECB52")
	case types.Dir:
		return lipgloss.Color("#FAFAFA")
	default:
		return lipgloss.Color("#636363")
	}
}

// Glyph returns the cell character for a category. Detailed mode gives
// every category its own texture; simplified mode collapses related
// categories onto a shared one.
func Glyph(cat types.Category, detailed bool) string {
	if detailed {
		switch cat {
		case types.Code:
			return "█"
		case types.Notebook:
			return "▓"
		case types.Data:
			return "▒"
		case types.Compressed:
			return "◆"
		case types.Cache:
			return "·"
		case types.Image:
			return "◐"
		case types.Video:
			return "◢"
		case types.Audio:
			return "◇"
		case types.Document:
			return "○"
		case types.Build:
			return "●"
		case types.Config:
			return "☰"
		case types.Dir:
			return "."
		default:
			return "."
		}
	}
	switch cat {
	case types.Code, types.Notebook:
		return "█"
	case types.Data:
		return "▒"
	case types.Compressed:
		return "◆"
	case types.Cache, types.Build:
		return "·"
	case types.Image, types.Video, types.Audio:
		return "◐"
	case types.Document:
		return "○"
	case types.Config:
		return "☰"
	default:
		return "."
	}
}

// Style returns the lipgloss style used to paint a category's cells.
func Style(cat types.Category) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(Color(cat))
}
