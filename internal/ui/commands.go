package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rahulvramesh/diskcanvas/internal/scanner"
	"github.com/rahulvramesh/diskcanvas/internal/types"
)

// performScan runs the filesystem walk off the update loop and delivers
// the finished entries as a message.
func performScan(cfg Config) tea.Cmd {
	return func() tea.Msg {
		s, err := scanner.New(cfg.Root, cfg.MaxDepth)
		if err != nil {
			return types.ErrMsg{Err: err}
		}
		entries := s.Scan()
		return types.ScanCompleteMsg{
			Entries: entries,
			Stats:   s.Stats,
		}
	}
}
