package layout

import (
	"math"

	"github.com/rahulvramesh/diskcanvas/internal/types"
)

// rect is a region of the canvas in cell units.
type rect struct {
	x, y, w, h int
}

type categoryRect struct {
	category types.Category
	rect     rect
}

// partition recursively bisects weights into rectangles proportional to
// their share of the total. The split axis alternates with recursion depth
// and each boundary is quantized to whole cells, so the union of the
// returned rectangles always covers r exactly.
func partition(weights []types.Weight, r rect, depth int) []categoryRect {
	if len(weights) == 0 || r.w < 1 || r.h < 1 {
		return nil
	}
	if len(weights) == 1 {
		return []categoryRect{{weights[0].Category, r}}
	}

	split := splitIndex(weights)
	var leftTotal, total int64
	for i, w := range weights {
		total += w.Size
		if i < split {
			leftTotal += w.Size
		}
	}

	vertical := depth%2 == 0
	extent := r.w
	if !vertical {
		extent = r.h
	}
	if extent < 2 {
		// Too narrow to split here; try the other axis, else the
		// largest weight takes the whole region.
		other := r.h
		if !vertical {
			other = r.w
		}
		if other < 2 {
			return []categoryRect{{weights[0].Category, r}}
		}
		vertical = !vertical
		extent = other
	}

	leftExtent := int(math.Round(float64(leftTotal) / float64(total) * float64(extent)))
	if leftExtent < 1 {
		leftExtent = 1
	}
	if leftExtent > extent-1 {
		leftExtent = extent - 1
	}

	var leftRect, rightRect rect
	if vertical {
		leftRect = rect{r.x, r.y, leftExtent, r.h}
		rightRect = rect{r.x + leftExtent, r.y, r.w - leftExtent, r.h}
	} else {
		leftRect = rect{r.x, r.y, r.w, leftExtent}
		rightRect = rect{r.x, r.y + leftExtent, r.w, r.h - leftExtent}
	}

	rects := partition(weights[:split], leftRect, depth+1)
	return append(rects, partition(weights[split:], rightRect, depth+1)...)
}

// splitIndex picks the cut that best balances the two halves by weight.
func splitIndex(weights []types.Weight) int {
	var total int64
	for _, w := range weights {
		total += w.Size
	}
	best, bestDiff := 1, int64(math.MaxInt64)
	var prefix int64
	for i := 1; i < len(weights); i++ {
		prefix += weights[i-1].Size
		diff := prefix - (total - prefix)
		if diff < 0 {
			diff = -diff
		}
		if diff < bestDiff {
			best, bestDiff = i, diff
		}
	}
	return best
}

// fillRect assigns every cell of r to cat, clipping at the grid edges.
func fillRect(g Grid, r rect, cat types.Category) {
	for y := r.y; y < r.y+r.h; y++ {
		if y < 0 || y >= g.Height {
			continue
		}
		for x := r.x; x < r.x+r.w; x++ {
			if x < 0 || x >= g.Width {
				continue
			}
			g.set(x, y, cat)
		}
	}
}
