// Package manifest evaluates a Starlark file listing the segment files of a
// database in document order.
//
//	segments = [
//	    "set/constants.json",
//	] + glob(["set/theorems/**/*.yaml"], exclude = ["**/draft-*"])
package manifest

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"go.starlark.net/starlark"
)

// Manifest is the evaluated content of a manifest file.
type Manifest struct {
	// Dir is the directory of the manifest file.  Relative paths are resolved
	// against it.
	Dir string
	// Segments is the list of segment files in document order.
	Segments []string
}

// LoadFile evaluates the manifest at the given filename.
func LoadFile(filename string, reporter Reporter) (*Manifest, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("open manifest: %w", err)
	}
	defer f.Close()

	dir := filepath.Dir(filename)
	interp := newInterpreter(reporter, starlark.StringDict{
		"glob": starlark.NewBuiltin("glob", globBuiltin(os.DirFS(dir))),
	})
	if err := interp.exec(filename, f); err != nil {
		return nil, fmt.Errorf("eval manifest %s: %w", filename, err)
	}

	value, ok := interp.global("segments")
	if !ok {
		return nil, fmt.Errorf("manifest %s: missing global 'segments'", filename)
	}
	names, err := stringList("segments", value)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", filename, err)
	}

	m := &Manifest{Dir: dir}
	for _, name := range names {
		if !filepath.IsAbs(name) {
			name = filepath.Join(dir, filepath.FromSlash(name))
		}
		m.Segments = append(m.Segments, name)
	}
	return m, nil
}

// globBuiltin implements glob(include, exclude = []) over fsys.  Matches of
// each include pattern are sorted; patterns are expanded in the order given.
func globBuiltin(fsys fs.FS) func(*starlark.Thread, *starlark.Builtin, starlark.Tuple, []starlark.Tuple) (starlark.Value, error) {
	return func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		var include *starlark.List
		exclude := starlark.NewList(nil)
		if err := starlark.UnpackArgs(b.Name(), args, kwargs, "include", &include, "exclude?", &exclude); err != nil {
			return nil, err
		}
		patterns, err := stringList("include", include)
		if err != nil {
			return nil, err
		}
		excludes, err := stringList("exclude", exclude)
		if err != nil {
			return nil, err
		}
		names, err := Glob(fsys, patterns, excludes)
		if err != nil {
			return nil, err
		}
		values := make([]starlark.Value, len(names))
		for i, name := range names {
			values[i] = starlark.String(name)
		}
		return starlark.NewList(values), nil
	}
}

// Glob expands the patterns against fsys, dropping names matched by any of
// the excludes.  A name matched by several patterns is listed once, at its
// first match.
func Glob(fsys fs.FS, patterns, excludes []string) ([]string, error) {
	seen := make(map[string]bool)
	var srcs []string
	for _, pattern := range patterns {
		names, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, fmt.Errorf("glob %q: %w", pattern, err)
		}
		sort.Strings(names)
	loop:
		for _, name := range names {
			if seen[name] {
				continue
			}
			for _, exclude := range excludes {
				if ok, _ := doublestar.Match(exclude, name); ok {
					continue loop
				}
			}
			seen[name] = true
			srcs = append(srcs, name)
		}
	}
	return srcs, nil
}
