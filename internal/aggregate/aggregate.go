// Package aggregate reduces scan entries into the totals, buckets, and
// rankings that layout and rendering consume.
package aggregate

import (
	"sort"

	"github.com/rahulvramesh/diskcanvas/internal/types"
)

// ExtBucket is the per-extension breakdown of one category.
type ExtBucket struct {
	Extension string
	Size      int64
	Count     int
}

// Result holds everything derived from a single scan.
type Result struct {
	MaxDepth int
	Total    int64 // size of the scan root

	// CategoryTotals[d] maps category to total entry bytes at depth d.
	// A subdirectory's bytes appear both at its own depth and inside its
	// parent at the shallower depth; that double counting is intentional.
	CategoryTotals []map[types.Category]int64

	// FileBytes and FileExts cover file entries only and drive the
	// mosaic weights and the detailed legend.
	FileBytes map[types.Category]int64
	FileExts  map[types.Category][]ExtBucket

	// TopByDepth[d] holds the ranked largest entries at depth d, size
	// descending with ties broken by path.
	TopByDepth [][]types.Entry
}

// Aggregate reduces entries in one pass. topN bounds each depth's ranking
// and filesOnly drops directories from the rankings (their bytes still
// count toward every total).
func Aggregate(entries []types.Entry, maxDepth, topN int, filesOnly bool) *Result {
	res := &Result{
		MaxDepth:       maxDepth,
		CategoryTotals: make([]map[types.Category]int64, maxDepth+1),
		FileBytes:      make(map[types.Category]int64),
		FileExts:       make(map[types.Category][]ExtBucket),
		TopByDepth:     make([][]types.Entry, maxDepth+1),
	}
	for d := 0; d <= maxDepth; d++ {
		res.CategoryTotals[d] = make(map[types.Category]int64)
	}

	extBuckets := make(map[types.Category]map[string]*ExtBucket)
	perDepth := make([][]types.Entry, maxDepth+1)

	for _, e := range entries {
		if e.Depth > maxDepth {
			continue
		}
		if e.Depth == 0 {
			res.Total = e.Size
		}
		res.CategoryTotals[e.Depth][e.Category] += e.Size

		if !e.IsDir {
			res.FileBytes[e.Category] += e.Size
			byExt := extBuckets[e.Category]
			if byExt == nil {
				byExt = make(map[string]*ExtBucket)
				extBuckets[e.Category] = byExt
			}
			b := byExt[e.Extension]
			if b == nil {
				b = &ExtBucket{Extension: e.Extension}
				byExt[e.Extension] = b
			}
			b.Size += e.Size
			b.Count++
		}

		if filesOnly && e.IsDir {
			continue
		}
		perDepth[e.Depth] = append(perDepth[e.Depth], e)
	}

	for cat, byExt := range extBuckets {
		buckets := make([]ExtBucket, 0, len(byExt))
		for _, b := range byExt {
			buckets = append(buckets, *b)
		}
		sort.Slice(buckets, func(i, j int) bool {
			if buckets[i].Size != buckets[j].Size {
				return buckets[i].Size > buckets[j].Size
			}
			return buckets[i].Extension < buckets[j].Extension
		})
		res.FileExts[cat] = buckets
	}

	for d, items := range perDepth {
		sort.Slice(items, func(i, j int) bool {
			if items[i].Size != items[j].Size {
				return items[i].Size > items[j].Size
			}
			return items[i].Path < items[j].Path
		})
		if len(items) > topN {
			items = items[:topN]
		}
		res.TopByDepth[d] = items
	}

	return res
}

// Weights returns the nonzero per-category file byte totals sorted by size
// descending. Equal sizes order by category declaration.
func (r *Result) Weights() []types.Weight {
	weights := make([]types.Weight, 0, len(r.FileBytes))
	for _, cat := range types.Categories {
		if size := r.FileBytes[cat]; size > 0 {
			weights = append(weights, types.Weight{Category: cat, Size: size})
		}
	}
	sort.SliceStable(weights, func(i, j int) bool {
		return weights[i].Size > weights[j].Size
	})
	return weights
}

// FileTotal returns the total bytes across all counted files.
func (r *Result) FileTotal() int64 {
	var total int64
	for _, size := range r.FileBytes {
		total += size
	}
	return total
}
