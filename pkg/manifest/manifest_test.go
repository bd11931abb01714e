package manifest

import (
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/bazelbuild/bazel-gazelle/testtools"
	"github.com/google/go-cmp/cmp"

	"github.com/stackb/nameset/pkg/testutil"
)

func TestLoadFile(t *testing.T) {
	for name, tc := range map[string]struct {
		files   []testtools.FileSpec
		want    []string
		wantErr string
	}{
		"literal list": {
			files: []testtools.FileSpec{
				{Path: "MANIFEST.star", Content: `segments = ["b.json", "a.json"]`},
			},
			want: []string{"b.json", "a.json"},
		},
		"glob with exclude": {
			files: []testtools.FileSpec{
				{Path: "MANIFEST.star", Content: `
segments = ["head.json"] + glob(["set/**/*.yaml"], exclude = ["**/draft-*"])
`},
				{Path: "set/b/two.yaml"},
				{Path: "set/a/one.yaml"},
				{Path: "set/a/draft-three.yaml"},
			},
			want: []string{"head.json", "set/a/one.yaml", "set/b/two.yaml"},
		},
		"nested lists are flattened": {
			files: []testtools.FileSpec{
				{Path: "MANIFEST.star", Content: `segments = ["x.json", glob(["*.yml"])]`},
				{Path: "y.yml"},
			},
			want: []string{"x.json", "y.yml"},
		},
		"missing segments": {
			files: []testtools.FileSpec{
				{Path: "MANIFEST.star", Content: `other = []`},
			},
			wantErr: "missing global 'segments'",
		},
		"wrong type": {
			files: []testtools.FileSpec{
				{Path: "MANIFEST.star", Content: `segments = [1]`},
			},
			wantErr: "segments[0] must be a string (got int)",
		},
	} {
		t.Run(name, func(t *testing.T) {
			dir, _, cleanup := testutil.MustPrepareTestFiles(t, tc.files)
			defer cleanup()

			got, err := LoadFile(filepath.Join(dir, "MANIFEST.star"), t.Logf)
			if tc.wantErr != "" {
				if err == nil {
					t.Fatalf("want error containing %q", tc.wantErr)
				}
				if !strings.Contains(err.Error(), tc.wantErr) {
					t.Errorf("want error containing %q, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			var want []string
			for _, name := range tc.want {
				want = append(want, filepath.Join(dir, name))
			}
			if diff := cmp.Diff(want, got.Segments); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestGlob(t *testing.T) {
	fsys := fstest.MapFS{
		"a.json":      {},
		"b.json":      {},
		"sub/c.json":  {},
		"sub/d.yaml":  {},
		"sub/e.draft": {},
	}
	for name, tc := range map[string]struct {
		patterns []string
		excludes []string
		want     []string
	}{
		"degenerate": {},
		"top level": {
			patterns: []string{"*.json"},
			want:     []string{"a.json", "b.json"},
		},
		"pattern order then sorted": {
			patterns: []string{"sub/*", "*.json"},
			excludes: []string{"**/*.draft"},
			want:     []string{"sub/c.json", "sub/d.yaml", "a.json", "b.json"},
		},
		"duplicates listed once": {
			patterns: []string{"b.json", "*.json"},
			want:     []string{"b.json", "a.json"},
		},
	} {
		t.Run(name, func(t *testing.T) {
			got, err := Glob(fsys, tc.patterns, tc.excludes)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}
