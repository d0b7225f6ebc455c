// Package render turns an aggregate result and a packed grid into the
// final terminal output: header, ranking table, glyph canvas, and legend.
package render

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/rahulvramesh/diskcanvas/internal/aggregate"
	"github.com/rahulvramesh/diskcanvas/internal/layout"
	"github.com/rahulvramesh/diskcanvas/internal/types"
)

// Options control the rendered output.
type Options struct {
	Root     string
	TopN     int
	MaxDepth int
	Detailed bool
}

// HumanSize formats a byte count with a 1024 divisor and one decimal
// place: 0 -> "0.0B", 1024 -> "1.0K", 1048576 -> "1.0M".
func HumanSize(size int64) string {
	v := float64(size)
	for _, unit := range []string{"B", "K", "M", "G", "T"} {
		if v < 1024 {
			return fmt.Sprintf("%.1f%s", v, unit)
		}
		v /= 1024
	}
	return fmt.Sprintf("%.1fP", v)
}

// Render emits the complete visualization for one scan.
func Render(res *aggregate.Result, grid layout.Grid, stats types.ScanStats, opts Options) string {
	var s strings.Builder

	s.WriteString(fmt.Sprintf("\nDisk Usage Visualization for: %s\n", opts.Root))
	s.WriteString(fmt.Sprintf("Total size: %s\n", HumanSize(res.Total)))
	s.WriteString(renderScanSummary(stats))
	s.WriteString(renderTopItems(res, opts))
	s.WriteString("\n" + Canvas(grid, opts.Detailed))
	s.WriteString(Legend(res, opts.Detailed))

	return s.String()
}

func renderScanSummary(stats types.ScanStats) string {
	if stats.Skipped() == 0 {
		return ""
	}
	var s strings.Builder
	s.WriteString("\nScan Summary:\n")
	if stats.PermissionDenied > 0 {
		s.WriteString(fmt.Sprintf("- %d items skipped due to permission denied\n", stats.PermissionDenied))
	}
	if stats.OtherErrors > 0 {
		s.WriteString(fmt.Sprintf("- %d items skipped due to other errors\n", stats.OtherErrors))
	}
	return s.String()
}

// renderTopItems prints one table of the largest entries, grouped by depth
// ascending with up to TopN rows per depth.
func renderTopItems(res *aggregate.Result, opts Options) string {
	var rows []types.Entry
	for d := 0; d <= res.MaxDepth && d < len(res.TopByDepth); d++ {
		rows = append(rows, res.TopByDepth[d]...)
	}
	if len(rows) == 0 {
		return fmt.Sprintf("\nNo items found within depth %d.\n", opts.MaxDepth)
	}

	maxPathLen := len("Path")
	paths := make([]string, len(rows))
	for i, e := range rows {
		paths[i] = relPath(opts.Root, e.Path)
		if len(paths[i]) > maxPathLen {
			maxPathLen = len(paths[i])
		}
	}

	var s strings.Builder
	s.WriteString(fmt.Sprintf("\nTop %d largest items per depth (max depth: %d):\n", opts.TopN, opts.MaxDepth))
	s.WriteString(fmt.Sprintf("%10s %-6s %-6s %-12s %-*s\n", "Size", "Type", "Depth", "Category", maxPathLen, "Path"))
	s.WriteString(strings.Repeat("-", 10+6+6+12+maxPathLen+4) + "\n")
	for i, e := range rows {
		itemType := "[FILE]"
		if e.IsDir {
			itemType = "[DIR]"
		}
		s.WriteString(fmt.Sprintf("%10s %-6s %-6d %-12s %s\n",
			HumanSize(e.Size), itemType, e.Depth, e.Category.String(), paths[i]))
	}
	return s.String()
}

func relPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}

// Canvas paints the grid one row at a time, styling runs of equal
// categories together.
func Canvas(grid layout.Grid, detailed bool) string {
	var s strings.Builder
	for y := 0; y < grid.Height; y++ {
		x := 0
		for x < grid.Width {
			cat := grid.At(x, y)
			run := 1
			for x+run < grid.Width && grid.At(x+run, y) == cat {
				run++
			}
			if cat == layout.Background {
				s.WriteString(strings.Repeat(" ", run))
			} else {
				s.WriteString(Style(cat).Render(strings.Repeat(Glyph(cat, detailed), run)))
			}
			x += run
		}
		s.WriteString("\n")
	}
	return s.String()
}

// Legend lists either every (category, extension) bucket or one line per
// nonzero category, depending on the mode.
func Legend(res *aggregate.Result, detailed bool) string {
	weights := res.Weights()
	if len(weights) == 0 {
		return ""
	}

	var s strings.Builder
	if detailed {
		s.WriteString("\nDetailed Extension Legend:\n")
		for _, cat := range types.Categories {
			buckets := res.FileExts[cat]
			if len(buckets) == 0 {
				continue
			}
			s.WriteString(fmt.Sprintf("\n%s files: (%s)\n", cat.String(), HumanSize(res.FileBytes[cat])))
			for _, b := range buckets {
				ext := b.Extension
				if ext != "" {
					ext = "." + ext
				}
				line := fmt.Sprintf("%s %-8s", Glyph(cat, true), ext)
				s.WriteString(fmt.Sprintf("  %s (%s files, %s)\n",
					Style(cat).Render(line), humanize.Comma(int64(b.Count)), HumanSize(b.Size)))
			}
		}
		return s.String()
	}

	s.WriteString("\nLarge Categories:\n")
	for _, w := range weights {
		s.WriteString(fmt.Sprintf("%s - %s (%s)\n",
			Style(w.Category).Render(Glyph(w.Category, false)), w.Category.String(), HumanSize(w.Size)))
	}
	return s.String()
}
