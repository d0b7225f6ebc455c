package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/rahulvramesh/diskcanvas/internal/aggregate"
	"github.com/rahulvramesh/diskcanvas/internal/layout"
	"github.com/rahulvramesh/diskcanvas/internal/render"
	"github.com/rahulvramesh/diskcanvas/internal/scanner"
	"github.com/rahulvramesh/diskcanvas/internal/ui"
)

var (
	topN         int
	maxDepth     int
	filesOnly    bool
	detailed     bool
	unsorted     bool
	canvasWidth  int
	canvasHeight int
	interactive  bool
)

// version is the application version, set via ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "diskcanvas DIR",
	Short: "Visualize disk usage as a terminal mosaic",
	Long: `diskcanvas scans a directory tree, classifies files into categories,
and renders their disk usage as a colored, area-proportional character
grid together with a ranking of the largest items.`,
	Version:      version,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(args[0])
	},
}

func init() {
	f := rootCmd.Flags()
	f.IntVarP(&topN, "top", "t", 10, "number of largest items per depth")
	f.BoolVarP(&filesOnly, "files", "f", false, "show only files in the ranking (exclude directories)")
	f.IntVarP(&maxDepth, "depth", "d", 1, "max directory depth")
	f.BoolVarP(&detailed, "detail", "D", false, "display the detailed per-extension legend")
	f.BoolVarP(&unsorted, "unsort", "U", false, "use the treemap canvas instead of the sorted mosaic")
	f.IntVarP(&canvasWidth, "width", "W", 0, "canvas width in cells (default: terminal width)")
	f.IntVarP(&canvasHeight, "height", "H", 0, "canvas height in cells (default: terminal height minus 2)")
	f.BoolVarP(&interactive, "interactive", "i", false, "interactive mode")

	viper.SetEnvPrefix("DISKCANVAS")
	viper.AutomaticEnv()
	viper.BindPFlag("top", f.Lookup("top"))
	viper.BindPFlag("depth", f.Lookup("depth"))
	viper.BindPFlag("width", f.Lookup("width"))
	viper.BindPFlag("height", f.Lookup("height"))
}

func run(dir string) error {
	top := viper.GetInt("top")
	depth := viper.GetInt("depth")
	if err := validate(top, depth); err != nil {
		return err
	}

	s, err := scanner.New(dir, depth)
	if err != nil {
		return err
	}

	if interactive {
		p := tea.NewProgram(ui.InitialModel(ui.Config{
			Root:      s.Root,
			MaxDepth:  depth,
			TopN:      top,
			FilesOnly: filesOnly,
			Detailed:  detailed,
			Treemap:   unsorted,
		}), tea.WithAltScreen())
		_, err := p.Run()
		return err
	}

	entries := s.Scan()
	agg := aggregate.Aggregate(entries, depth, top, filesOnly)

	mode := layout.Mosaic
	if unsorted {
		mode = layout.Treemap
	}
	width, height := canvasSize()
	grid, err := layout.Layout(agg.Weights(), width, height, mode)
	if err != nil {
		return err
	}

	fmt.Print(render.Render(agg, grid, s.Stats, render.Options{
		Root:     s.Root,
		TopN:     top,
		MaxDepth: depth,
		Detailed: detailed,
	}))
	return nil
}

// validate rejects bad option values before any scanning starts.
func validate(top, depth int) error {
	if top < 1 {
		return fmt.Errorf("--top must be at least 1, got %d", top)
	}
	if depth < 0 {
		return fmt.Errorf("--depth must be non-negative, got %d", depth)
	}
	return nil
}

// canvasSize resolves the grid dimensions, preferring explicit flags and
// falling back to the terminal size, then to 80x24.
func canvasSize() (int, int) {
	width := viper.GetInt("width")
	height := viper.GetInt("height")
	if width > 0 && height > 0 {
		return width, height
	}

	tw, th, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || tw < 1 || th < 3 {
		tw, th = 80, 26
	}
	if width < 1 {
		width = tw
	}
	if height < 1 {
		height = th - 2
	}
	return width, height
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
