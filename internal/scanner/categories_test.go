package scanner

import (
	"testing"

	"github.com/rahulvramesh/diskcanvas/internal/types"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		cat  types.Category
		ext  string
	}{
		{"main.py", types.Code, "py"},
		{"MAIN.PY", types.Code, "py"},
		{"notes.txt", types.Document, "txt"},
		{"analysis.ipynb", types.Notebook, "ipynb"},
		{"archive.tar.gz", types.Compressed, "gz"},
		{"photo.JPEG", types.Image, "jpeg"},
		{"app.jar", types.Build, "jar"},
		{"settings.toml", types.Config, "toml"},
		{"module.pyc", types.Cache, "pyc"},
		{"data.parquet", types.Data, "parquet"},
		{"mystery.xyz", types.Other, "xyz"},
		{"README", types.Other, ""},
	}
	for _, c := range cases {
		cat, ext := Classify(c.name)
		if cat != c.cat || ext != c.ext {
			t.Errorf("Classify(%q) = (%v, %q), want (%v, %q)", c.name, cat, ext, c.cat, c.ext)
		}
	}
}

func TestClassifyDotfiles(t *testing.T) {
	// A dotfile with no secondary extension has no extension at all.
	if cat, ext := Classify(".gitignore"); cat != types.Other || ext != "" {
		t.Fatalf("Classify(.gitignore) = (%v, %q), want (OTHER, \"\")", cat, ext)
	}
	if cat, ext := Classify(".config.yaml"); cat != types.Data || ext != "yaml" {
		t.Fatalf("Classify(.config.yaml) = (%v, %q), want (DATA, \"yaml\")", cat, ext)
	}
}

func TestClassifyWellKnownFilenames(t *testing.T) {
	cases := []struct {
		name string
		cat  types.Category
	}{
		{"Makefile", types.Config},
		{"Dockerfile", types.Config},
		{"package.json", types.Config},
		{"pyproject.toml", types.Config},
	}
	for _, c := range cases {
		if cat, _ := Classify(c.name); cat != c.cat {
			t.Errorf("Classify(%q) = %v, want %v", c.name, cat, c.cat)
		}
	}
}
