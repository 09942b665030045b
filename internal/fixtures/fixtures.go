// Package fixtures holds the static JSON payloads served by the mock routes.
//
// The default payloads are embedded in the binary. A directory holding files
// with the same names can be supplied to replace them without rebuilding.
package fixtures

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"bookmock/internal/common/fsutil"
)

//go:embed data/*.json
var embedded embed.FS

var (
	ErrDuplicatePath = errors.New("duplicate fixture path")
	ErrInvalidPath   = errors.New("fixture path must start with /")
)

// Source binds a URL path to the fixture file that backs it.
type Source struct {
	Path string
	File string
}

// Route is a loaded fixture: a URL path and the decoded JSON payload.
type Route struct {
	Path    string
	Name    string
	Payload any
}

var table = []Source{
	{Path: "/book/home", File: "bookHome.json"},
	{Path: "/book/shelf", File: "bookShelf.json"},
	{Path: "/book/list", File: "bookCategoryList.json"},
	{Path: "/book/flat-list", File: "bookFlatList.json"},
}

// Table returns a copy of the fixed (path, file) table.
func Table() []Source { return append([]Source(nil), table...) }

// Load decodes every fixture in the table. An empty dir selects the
// embedded defaults; otherwise each file is read from dir.
func Load(dir string) ([]Route, error) {
	if dir == "" {
		sub, err := fs.Sub(embedded, "data")
		if err != nil {
			return nil, err
		}
		return LoadFS(sub, table)
	}
	abs, err := fsutil.ResolveDir(dir)
	if err != nil {
		return nil, fmt.Errorf("fixtures dir: %w", err)
	}
	return LoadFS(os.DirFS(abs), table)
}

// LoadFS decodes the files named by sources from fsys.
func LoadFS(fsys fs.FS, sources []Source) ([]Route, error) {
	if err := Validate(sources); err != nil {
		return nil, err
	}
	routes := make([]Route, 0, len(sources))
	for _, s := range sources {
		b, err := fs.ReadFile(fsys, s.File)
		if err != nil {
			return nil, fmt.Errorf("read fixture %s: %w", s.File, err)
		}
		var payload any
		if err := json.Unmarshal(b, &payload); err != nil {
			return nil, fmt.Errorf("decode fixture %s: %w", s.File, err)
		}
		routes = append(routes, Route{Path: s.Path, Name: strings.TrimSuffix(s.File, ".json"), Payload: payload})
	}
	return routes, nil
}

// Validate checks that every path is absolute and appears once.
func Validate(sources []Source) error {
	seen := make(map[string]struct{}, len(sources))
	for _, s := range sources {
		if !strings.HasPrefix(s.Path, "/") {
			return fmt.Errorf("%q: %w", s.Path, ErrInvalidPath)
		}
		if _, dup := seen[s.Path]; dup {
			return fmt.Errorf("%q: %w", s.Path, ErrDuplicatePath)
		}
		seen[s.Path] = struct{}{}
	}
	return nil
}
