package render

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rahulvramesh/diskcanvas/internal/aggregate"
	"github.com/rahulvramesh/diskcanvas/internal/layout"
	"github.com/rahulvramesh/diskcanvas/internal/scanner"
	"github.com/rahulvramesh/diskcanvas/internal/types"
)

func TestHumanSize(t *testing.T) {
	cases := []struct {
		size int64
		want string
	}{
		{0, "0.0B"},
		{1, "1.0B"},
		{1023, "1023.0B"},
		{1024, "1.0K"},
		{1536, "1.5K"},
		{1048576, "1.0M"},
		{1073741824, "1.0G"},
		{1099511627776, "1.0T"},
	}
	for _, c := range cases {
		if got := HumanSize(c.size); got != c.want {
			t.Errorf("HumanSize(%d) = %q, want %q", c.size, got, c.want)
		}
	}
}

func renderDir(t *testing.T, root string, detailed bool, mode layout.Mode, width, height int) string {
	t.Helper()
	s, err := scanner.New(root, 1)
	if err != nil {
		t.Fatalf("new scanner: %v", err)
	}
	entries := s.Scan()
	agg := aggregate.Aggregate(entries, 1, 10, false)
	grid, err := layout.Layout(agg.Weights(), width, height, mode)
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	return Render(agg, grid, s.Stats, Options{
		Root:     s.Root,
		TopN:     10,
		MaxDepth: 1,
		Detailed: detailed,
	})
}

func TestRenderEmptyDirectory(t *testing.T) {
	out := renderDir(t, t.TempDir(), false, layout.Mosaic, 4, 2)

	if !strings.Contains(out, "Total size: 0.0B") {
		t.Fatalf("missing zero total in output:\n%s", out)
	}
	if strings.Contains(out, "Large Categories:") {
		t.Fatalf("legend should be empty for an empty directory:\n%s", out)
	}
	// The canvas rows must be pure background.
	for _, line := range strings.Split(out, "\n") {
		if strings.TrimSpace(line) == "" && len(line) == 4 {
			return
		}
	}
	t.Fatalf("no all-background canvas row found:\n%s", out)
}

func TestRenderSections(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "a.py"), make([]byte, 100), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "b.txt"), make([]byte, 100), 0o644); err != nil {
		t.Fatal(err)
	}

	out := renderDir(t, root, false, layout.Mosaic, 2, 1)

	if !strings.Contains(out, "Disk Usage Visualization for: ") {
		t.Fatalf("missing header:\n%s", out)
	}
	if !strings.Contains(out, "Total size: 200.0B") {
		t.Fatalf("missing total:\n%s", out)
	}
	if !strings.Contains(out, "[FILE]") || !strings.Contains(out, "[DIR]") {
		t.Fatalf("missing type column values:\n%s", out)
	}
	if !strings.Contains(out, "a.py") || !strings.Contains(out, "b.txt") {
		t.Fatalf("missing ranked paths:\n%s", out)
	}
	if !strings.Contains(out, " - CODE (100.0B)") {
		t.Fatalf("missing CODE legend line:\n%s", out)
	}
	if !strings.Contains(out, " - DOCUMENT (100.0B)") {
		t.Fatalf("missing DOCUMENT legend line:\n%s", out)
	}
}

func TestRenderDetailedLegend(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "a.py"), make([]byte, 2048), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "b.py"), make([]byte, 1024), 0o644); err != nil {
		t.Fatal(err)
	}

	out := renderDir(t, root, true, layout.Mosaic, 4, 2)

	if !strings.Contains(out, "Detailed Extension Legend:") {
		t.Fatalf("missing detailed legend:\n%s", out)
	}
	if !strings.Contains(out, "CODE files: (3.0K)") {
		t.Fatalf("missing CODE bucket header:\n%s", out)
	}
	if !strings.Contains(out, "(2 files, 3.0K)") {
		t.Fatalf("missing py bucket line:\n%s", out)
	}
}

func TestRenderDeterministic(t *testing.T) {
	root := t.TempDir()
	for i, name := range []string{"x.py", "y.csv", "z.png", "w.mp3"} {
		size := (i + 1) * 512
		if err := os.WriteFile(filepath.Join(root, name), make([]byte, size), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	for _, mode := range []layout.Mode{layout.Mosaic, layout.Treemap} {
		first := renderDir(t, root, false, mode, 20, 6)
		second := renderDir(t, root, false, mode, 20, 6)
		if first != second {
			t.Fatalf("mode %v: repeated renders differ", mode)
		}
	}
}

func TestGlyphAndColorTotality(t *testing.T) {
	for _, cat := range types.Categories {
		for _, detailed := range []bool{false, true} {
			if Glyph(cat, detailed) == "" {
				t.Fatalf("no glyph for %v (detailed=%v)", cat, detailed)
			}
		}
		if Color(cat) == "" {
			t.Fatalf("no color for %v", cat)
		}
	}
}
