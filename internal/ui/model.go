package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rahulvramesh/diskcanvas/internal/aggregate"
	"github.com/rahulvramesh/diskcanvas/internal/types"
)

// Config carries the scan parameters into the interactive session.
type Config struct {
	Root      string
	MaxDepth  int
	TopN      int
	FilesOnly bool
	Detailed  bool
	Treemap   bool
}

// Model represents the application state
type Model struct {
	cfg     Config
	state   string // "scanning", "view"
	spinner spinner.Model
	table   table.Model

	entries []types.Entry
	stats   types.ScanStats
	agg     *aggregate.Result
	canvas  string

	detailed  bool
	treemap   bool
	filesOnly bool

	width  int
	height int
	err    error
}

// InitialModel builds the model in its scanning state.
func InitialModel(cfg Config) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

	return Model{
		cfg:       cfg,
		state:     "scanning",
		spinner:   s,
		detailed:  cfg.Detailed,
		treemap:   cfg.Treemap,
		filesOnly: cfg.FilesOnly,
		width:     80,
		height:    24,
	}
}

// Init starts the spinner and kicks off the scan
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, performScan(m.cfg))
}
