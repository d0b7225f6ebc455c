package scanner

import (
	"strings"

	"github.com/rahulvramesh/diskcanvas/internal/types"
)

// extensionCategories maps a lowercased extension (without the dot) to its
// category. Unknown extensions fall back to types.Other.
var extensionCategories = map[string]types.Category{
	// Code
	"py": types.Code, "js": types.Code, "ts": types.Code, "java": types.Code,
	"cpp": types.Code, "c": types.Code, "h": types.Code, "rs": types.Code,
	"go": types.Code, "rb": types.Code, "php": types.Code, "cs": types.Code,
	"swift": types.Code, "kt": types.Code, "scala": types.Code, "r": types.Code,
	"sh": types.Code, "bash": types.Code, "zsh": types.Code, "fish": types.Code,
	"vim": types.Code, "lua": types.Code, "pl": types.Code, "pm": types.Code,
	"t": types.Code, "sql": types.Code,

	// Notebooks
	"ipynb": types.Notebook, "rmd": types.Notebook, "qmd": types.Notebook,

	// Data
	"csv": types.Data, "tsv": types.Data, "json": types.Data,
	"yaml": types.Data, "yml": types.Data, "xml": types.Data,
	"sqlite": types.Data, "db": types.Data, "parquet": types.Data,
	"avro": types.Data, "orc": types.Data, "feather": types.Data,
	"arrow": types.Data, "hdf5": types.Data, "h5": types.Data,
	"nc": types.Data, "mat": types.Data, "pkl": types.Data,
	"pickle": types.Data, "npy": types.Data, "npz": types.Data,

	// Compressed
	"zip": types.Compressed, "tar": types.Compressed, "gz": types.Compressed,
	"bz2": types.Compressed, "xz": types.Compressed, "7z": types.Compressed,
	"rar": types.Compressed, "tgz": types.Compressed, "tbz2": types.Compressed,

	// Cache and intermediate artifacts
	"pyc": types.Cache, "pyo": types.Cache, "pyd": types.Cache,
	"class": types.Cache, "o": types.Cache, "so": types.Cache,
	"dll": types.Cache, "dylib": types.Cache, "cache": types.Cache,
	"swp": types.Cache, "swo": types.Cache, "swn": types.Cache,

	// Images
	"jpg": types.Image, "jpeg": types.Image, "png": types.Image,
	"gif": types.Image, "bmp": types.Image, "tiff": types.Image,
	"webp": types.Image, "svg": types.Image, "ico": types.Image,
	"eps": types.Image, "raw": types.Image, "cr2": types.Image,
	"nef": types.Image, "heic": types.Image,

	// Video
	"mp4": types.Video, "avi": types.Video, "mkv": types.Video,
	"mov": types.Video, "wmv": types.Video, "flv": types.Video,
	"webm": types.Video, "m4v": types.Video, "mpg": types.Video,
	"mpeg": types.Video, "3gp": types.Video,

	// Audio
	"mp3": types.Audio, "wav": types.Audio, "flac": types.Audio,
	"m4a": types.Audio, "ogg": types.Audio, "aac": types.Audio,
	"wma": types.Audio, "aiff": types.Audio, "opus": types.Audio,

	// Documents
	"pdf": types.Document, "doc": types.Document, "docx": types.Document,
	"xls": types.Document, "xlsx": types.Document, "ppt": types.Document,
	"pptx": types.Document, "odt": types.Document, "ods": types.Document,
	"odp": types.Document, "pages": types.Document, "numbers": types.Document,
	"keynote": types.Document, "txt": types.Document, "rtf": types.Document,
	"md": types.Document, "rst": types.Document, "tex": types.Document,
	"html": types.Document, "htm": types.Document, "epub": types.Document,
	"mobi": types.Document, "azw3": types.Document,

	// Packaged build outputs
	"jar": types.Build, "war": types.Build, "whl": types.Build,
	"egg": types.Build, "deb": types.Build, "rpm": types.Build,
	"dmg": types.Build, "msi": types.Build, "apk": types.Build,
	"a": types.Build, "exe": types.Build, "lib": types.Build,

	// Config
	"toml": types.Config, "ini": types.Config, "conf": types.Config,
	"cfg": types.Config, "properties": types.Config, "env": types.Config,
}

// filenameCategories matches well-known extensionless or conventional
// filenames before the extension lookup runs.
var filenameCategories = map[string]types.Category{
	"Makefile":           types.Config,
	"Dockerfile":         types.Config,
	"CMakeLists.txt":     types.Config,
	"docker-compose.yml": types.Config,
	"requirements.txt":   types.Config,
	"setup.py":           types.Config,
	"setup.cfg":          types.Config,
	"pyproject.toml":     types.Config,
	"package.json":       types.Config,
	"tsconfig.json":      types.Config,
	"tox.ini":            types.Config,
}

// Classify maps a file name to its category and lowercased extension.
// The extension is the suffix after the final dot; a dotfile with no
// further dot has no extension. Classify never fails, unknown names
// degrade to types.Other.
func Classify(name string) (types.Category, string) {
	ext := ""
	if idx := strings.LastIndex(name, "."); idx > 0 {
		ext = strings.ToLower(name[idx+1:])
	}
	if cat, ok := filenameCategories[name]; ok {
		return cat, ext
	}
	if ext == "" {
		return types.Other, ""
	}
	if cat, ok := extensionCategories[ext]; ok {
		return cat, ext
	}
	return types.Other, ext
}
