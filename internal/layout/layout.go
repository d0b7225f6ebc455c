// Package layout packs per-category size weights into a fixed-area grid of
// character cells, either as a sorted mosaic or a treemap.
package layout

import (
	"errors"
	"math"
	"sort"

	"github.com/rahulvramesh/diskcanvas/internal/types"
)

// Mode selects the packing algorithm.
type Mode int

const (
	Mosaic Mode = iota
	Treemap
)

// Background marks a cell no category occupies.
const Background types.Category = -1

// ErrCanvasSize reports canvas dimensions below 1x1.
var ErrCanvasSize = errors.New("canvas must be at least 1x1")

// Grid is a row-major canvas of category cells.
type Grid struct {
	Width  int
	Height int
	cells  []types.Category
}

// NewGrid returns an all-background grid.
func NewGrid(width, height int) Grid {
	cells := make([]types.Category, width*height)
	for i := range cells {
		cells[i] = Background
	}
	return Grid{Width: width, Height: height, cells: cells}
}

// At returns the category at column x, row y.
func (g Grid) At(x, y int) types.Category {
	return g.cells[y*g.Width+x]
}

func (g Grid) set(x, y int, cat types.Category) {
	g.cells[y*g.Width+x] = cat
}

// Count returns how many cells cat occupies.
func (g Grid) Count(cat types.Category) int {
	n := 0
	for _, c := range g.cells {
		if c == cat {
			n++
		}
	}
	return n
}

// Layout packs weights into a width x height grid. Zero total weight yields
// an all-background grid; a single nonzero weight fills the whole canvas.
func Layout(weights []types.Weight, width, height int, mode Mode) (Grid, error) {
	if width < 1 || height < 1 {
		return Grid{}, ErrCanvasSize
	}
	grid := NewGrid(width, height)

	sorted := make([]types.Weight, 0, len(weights))
	for _, w := range weights {
		if w.Size > 0 {
			sorted = append(sorted, w)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Size > sorted[j].Size
	})
	if len(sorted) == 0 {
		return grid, nil
	}

	switch mode {
	case Treemap:
		rects := partition(sorted, rect{0, 0, width, height}, 0)
		for _, cr := range rects {
			fillRect(grid, cr.rect, cr.category)
		}
	default:
		quotas := cellQuotas(sorted, width*height)
		idx := 0
		for i, w := range sorted {
			for n := 0; n < quotas[i]; n++ {
				grid.set(idx%width, idx/width, w.Category)
				idx++
			}
		}
	}
	return grid, nil
}

// cellQuotas converts weights into whole-cell counts that sum exactly to
// area. After rounding, leftover cells are given to or taken from the
// largest weights first, one cell at a time.
func cellQuotas(sorted []types.Weight, area int) []int {
	var total int64
	for _, w := range sorted {
		total += w.Size
	}

	quotas := make([]int, len(sorted))
	assigned := 0
	for i, w := range sorted {
		q := int(math.Round(float64(w.Size) / float64(total) * float64(area)))
		quotas[i] = q
		assigned += q
	}

	for i := 0; assigned < area; i = (i + 1) % len(quotas) {
		quotas[i]++
		assigned++
	}
	for i := 0; assigned > area; i = (i + 1) % len(quotas) {
		if quotas[i] > 0 {
			quotas[i]--
			assigned--
		}
	}
	return quotas
}
