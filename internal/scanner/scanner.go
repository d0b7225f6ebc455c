package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/rahulvramesh/diskcanvas/internal/types"
)

// ErrInvalidPath reports that the scan root is missing or not a directory.
var ErrInvalidPath = errors.New("not a directory")

// Scanner performs the file system scanning
type Scanner struct {
	Root     string
	MaxDepth int
	Stats    types.ScanStats
}

// New creates a scanner for root. The root must exist and be a directory.
func New(root string, maxDepth int) (*Scanner, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPath, root)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidPath, root)
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}
	return &Scanner{Root: abs, MaxDepth: maxDepth}, nil
}

// node is one visited filesystem object before sizes are rolled up.
type node struct {
	path      string
	depth     int
	isDir     bool
	size      int64
	parent    int
	category  types.Category
	extension string
}

// Scan walks the tree depth-first with children in name order and returns
// every entry down to MaxDepth. Directories deeper than MaxDepth are still
// traversed so ancestor sizes include their bytes. Entries that cannot be
// read are skipped, counted in Stats, and never abort the scan.
func (s *Scanner) Scan() []types.Entry {
	s.Stats = types.ScanStats{}

	nodes := []node{{path: s.Root, depth: 0, isDir: true, parent: -1, category: types.Dir}}
	stack := []int{0}

	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !nodes[idx].isDir {
			continue
		}

		children, err := os.ReadDir(nodes[idx].path)
		if err != nil {
			if errors.Is(err, fs.ErrPermission) {
				s.Stats.PermissionDenied++
			} else {
				s.Stats.OtherErrors++
			}
			continue
		}
		sort.Slice(children, func(i, j int) bool {
			return children[i].Name() < children[j].Name()
		})

		first := len(nodes)
		for _, child := range children {
			path := filepath.Join(nodes[idx].path, child.Name())
			// Symlinks are sized by their own lstat and never
			// traversed, so cycles cannot recurse.
			isDir := child.IsDir() && child.Type()&fs.ModeSymlink == 0

			n := node{
				path:   path,
				depth:  nodes[idx].depth + 1,
				isDir:  isDir,
				parent: idx,
			}
			if isDir {
				n.category = types.Dir
			} else {
				info, err := child.Info()
				if err != nil {
					if errors.Is(err, fs.ErrPermission) {
						s.Stats.PermissionDenied++
					} else {
						s.Stats.OtherErrors++
					}
					continue
				}
				n.size = info.Size()
				n.category, n.extension = Classify(child.Name())
			}
			nodes = append(nodes, n)
		}
		// Push in reverse so the stack pops children in name order.
		for i := len(nodes) - 1; i >= first; i-- {
			stack = append(stack, i)
		}
	}

	// Children always sit after their parent, so one reverse pass folds
	// every byte up into the ancestor directories.
	for i := len(nodes) - 1; i > 0; i-- {
		nodes[nodes[i].parent].size += nodes[i].size
	}

	entries := make([]types.Entry, 0, len(nodes))
	for _, n := range nodes {
		if n.depth > s.MaxDepth {
			continue
		}
		entries = append(entries, types.Entry{
			Path:      n.path,
			Size:      n.size,
			Depth:     n.depth,
			IsDir:     n.isDir,
			Category:  n.category,
			Extension: n.extension,
		})
	}
	return entries
}
