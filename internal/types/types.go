package types

// Category classifies a scanned filesystem entry. The declaration order is
// the fixed tie-break order wherever equal sizes must be ordered.
type Category int

const (
	Code Category = iota
	Notebook
	Data
	Compressed
	Cache
	Image
	Video
	Audio
	Document
	Build
	Config
	Dir
	Other
)

// Categories lists every category in declaration order.
var Categories = []Category{
	Code, Notebook, Data, Compressed, Cache, Image, Video,
	Audio, Document, Build, Config, Dir, Other,
}

// String returns the category name as shown in tables and legends.
func (c Category) String() string {
	switch c {
	case Code:
		return "CODE"
	case Notebook:
		return "NOTEBOOK"
	case Data:
		return "DATA"
	case Compressed:
		return "COMPRESSED"
	case Cache:
		return "CACHE"
	case Image:
		return "IMAGE"
	case Video:
		return "VIDEO"
	case Audio:
		return "AUDIO"
	case Document:
		return "DOCUMENT"
	case Build:
		return "BUILD"
	case Config:
		return "CONFIG"
	case Dir:
		return "DIR"
	default:
		return "OTHER"
	}
}

// Entry represents a single filesystem object observed during a scan.
// Directories carry the summed size of everything beneath them.
type Entry struct {
	Path      string
	Size      int64
	Depth     int
	IsDir     bool
	Category  Category
	Extension string // lowercased, without the dot; empty if none
}

// Weight is one category's share of the layout input.
type Weight struct {
	Category Category
	Size     int64
}

// ScanStats counts entries that were skipped during a scan.
type ScanStats struct {
	PermissionDenied int
	OtherErrors      int
}

// Skipped returns the total number of skipped entries.
func (s ScanStats) Skipped() int {
	return s.PermissionDenied + s.OtherErrors
}

// Messages
type ScanCompleteMsg struct {
	Entries []Entry
	Stats   ScanStats
}

type ErrMsg struct{ Err error }

func (e ErrMsg) Error() string { return e.Err.Error() }
