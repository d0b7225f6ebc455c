package aggregate

import (
	"testing"

	"github.com/rahulvramesh/diskcanvas/internal/types"
)

func sampleEntries() []types.Entry {
	return []types.Entry{
		{Path: "/r", Size: 1000, Depth: 0, IsDir: true, Category: types.Dir},
		{Path: "/r/a.py", Size: 400, Depth: 1, Category: types.Code, Extension: "py"},
		{Path: "/r/b.py", Size: 100, Depth: 1, Category: types.Code, Extension: "py"},
		{Path: "/r/c.txt", Size: 200, Depth: 1, Category: types.Document, Extension: "txt"},
		{Path: "/r/sub", Size: 300, Depth: 1, IsDir: true, Category: types.Dir},
		{Path: "/r/sub/d.csv", Size: 300, Depth: 2, Category: types.Data, Extension: "csv"},
	}
}

func TestConservationPerDepth(t *testing.T) {
	entries := sampleEntries()
	res := Aggregate(entries, 2, 10, false)

	for d := 0; d <= 2; d++ {
		var wantTotal, gotTotal int64
		for _, e := range entries {
			if e.Depth == d {
				wantTotal += e.Size
			}
		}
		for _, size := range res.CategoryTotals[d] {
			gotTotal += size
		}
		if gotTotal != wantTotal {
			t.Errorf("depth %d: category totals sum to %d, want %d", d, gotTotal, wantTotal)
		}
	}
	if res.Total != 1000 {
		t.Fatalf("Total = %d, want 1000", res.Total)
	}
}

func TestTopRankingOrderAndTieBreak(t *testing.T) {
	entries := []types.Entry{
		{Path: "/r", Size: 300, Depth: 0, IsDir: true, Category: types.Dir},
		{Path: "/r/z.txt", Size: 100, Depth: 1, Category: types.Document, Extension: "txt"},
		{Path: "/r/a.txt", Size: 100, Depth: 1, Category: types.Document, Extension: "txt"},
		{Path: "/r/big.bin", Size: 150, Depth: 1, Category: types.Other, Extension: "bin"},
	}
	res := Aggregate(entries, 1, 10, false)

	top := res.TopByDepth[1]
	if len(top) != 3 {
		t.Fatalf("got %d items at depth 1, want 3", len(top))
	}
	if top[0].Path != "/r/big.bin" {
		t.Fatalf("top[0] = %s, want /r/big.bin", top[0].Path)
	}
	// Equal sizes order by path ascending.
	if top[1].Path != "/r/a.txt" || top[2].Path != "/r/z.txt" {
		t.Fatalf("tie-break wrong: %s, %s", top[1].Path, top[2].Path)
	}
}

func TestTopRankingTruncatesAndFiltersDirs(t *testing.T) {
	res := Aggregate(sampleEntries(), 2, 2, false)
	if len(res.TopByDepth[1]) != 2 {
		t.Fatalf("topN not applied: got %d", len(res.TopByDepth[1]))
	}

	filtered := Aggregate(sampleEntries(), 2, 10, true)
	for d, items := range filtered.TopByDepth {
		for _, e := range items {
			if e.IsDir {
				t.Fatalf("directory %s in files-only ranking at depth %d", e.Path, d)
			}
		}
	}
	// Directory bytes still count toward depth totals.
	if filtered.CategoryTotals[1][types.Dir] != 300 {
		t.Fatal("directory totals dropped by files-only ranking")
	}
}

func TestWeightsSortedWithCategoryTieBreak(t *testing.T) {
	entries := []types.Entry{
		{Path: "/r", Size: 300, Depth: 0, IsDir: true, Category: types.Dir},
		{Path: "/r/a.py", Size: 100, Depth: 1, Category: types.Code, Extension: "py"},
		{Path: "/r/b.txt", Size: 100, Depth: 1, Category: types.Document, Extension: "txt"},
		{Path: "/r/big.csv", Size: 100, Depth: 1, Category: types.Data, Extension: "csv"},
	}
	res := Aggregate(entries, 1, 10, false)

	weights := res.Weights()
	if len(weights) != 3 {
		t.Fatalf("got %d weights, want 3", len(weights))
	}
	// All equal: declaration order CODE, DATA, DOCUMENT.
	want := []types.Category{types.Code, types.Data, types.Document}
	for i, w := range weights {
		if w.Category != want[i] {
			t.Fatalf("weights[%d] = %v, want %v", i, w.Category, want[i])
		}
	}
	if res.FileTotal() != 300 {
		t.Fatalf("FileTotal = %d, want 300", res.FileTotal())
	}
}

func TestExtensionBuckets(t *testing.T) {
	res := Aggregate(sampleEntries(), 2, 10, false)

	code := res.FileExts[types.Code]
	if len(code) != 1 {
		t.Fatalf("got %d CODE buckets, want 1", len(code))
	}
	if code[0].Extension != "py" || code[0].Size != 500 || code[0].Count != 2 {
		t.Fatalf("bad py bucket: %+v", code[0])
	}
	if res.FileBytes[types.Code] != 500 {
		t.Fatalf("CODE bytes = %d, want 500", res.FileBytes[types.Code])
	}
	if len(res.FileExts[types.Dir]) != 0 {
		t.Fatal("directories must not produce extension buckets")
	}
}
