package segspec

import (
	"path/filepath"
	"testing"

	"github.com/bazelbuild/bazel-gazelle/testtools"
	"github.com/google/go-cmp/cmp"

	"github.com/stackb/nameset/pkg/segment"
	"github.com/stackb/nameset/pkg/testutil"
)

const constantsJSON = `{
  "segments": [
    {
      "id": 1,
      "symbols": [
        {"name": "(", "type": "constant"},
        {"name": ")", "type": "constant", "ordinal": 1},
        {"name": "wff", "type": "constant", "index": 1}
      ]
    }
  ]
}`

const variablesYAML = `
id: 2
symbols:
  - {name: ph, type: variable}
labels:
  - {label: wph, index: 1}
floats:
  - {name: ph, label: wph, typecode: wff, index: 1}
globalDvs:
  - {vars: [ph, ps], index: 2}
localVars:
  - {name: x, index: 3}
`

func TestReadSegmentSpecs(t *testing.T) {
	dir, filenames, cleanup := testutil.MustPrepareTestFiles(t, []testtools.FileSpec{
		{Path: "constants.json", Content: constantsJSON},
		{Path: "variables.yaml", Content: variablesYAML},
	})
	defer cleanup()

	got, err := ReadSegmentSpecs(filenames)
	if err != nil {
		t.Fatal(err)
	}

	want := []*SegmentSpec{
		{
			ID:     1,
			Source: filepath.Join(dir, "constants.json"),
			Symbols: []*SymbolSpec{
				{Name: "(", Type: "constant"},
				{Name: ")", Type: "constant", Ordinal: 1},
				{Name: "wff", Type: "constant", Index: 1},
			},
		},
		{
			ID:        2,
			Source:    filepath.Join(dir, "variables.yaml"),
			Symbols:   []*SymbolSpec{{Name: "ph", Type: "variable"}},
			Labels:    []*LabelSpec{{Label: "wph", Index: 1}},
			Floats:    []*FloatSpec{{Name: "ph", Label: "wph", Typecode: "wff", Index: 1}},
			GlobalDvs: []*GlobalDvSpec{{Vars: []string{"ph", "ps"}, Index: 2}},
			LocalVars: []*LocalVarSpec{{Name: "x", Index: 3}},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestReadSegmentSpecsEmptySet(t *testing.T) {
	dir, _, cleanup := testutil.MustPrepareTestFiles(t, []testtools.FileSpec{
		{Path: "empty.json", Content: `{"segments": []}`},
		{Path: "empty.yaml", Content: "segments: []\n"},
		{Path: "seg0.json", Content: `{"id": 0, "symbols": [{"name": "wff", "type": "constant"}]}`},
	})
	defer cleanup()

	filenames := []string{
		filepath.Join(dir, "empty.json"),
		filepath.Join(dir, "empty.yaml"),
	}
	for _, ext := range []string{".json", ".yaml"} {
		filename := filepath.Join(dir, "written"+ext)
		if err := WriteSetSpecFile(filename, &SetSpec{}); err != nil {
			t.Fatal(err)
		}
		filenames = append(filenames, filename)
	}
	filenames = append(filenames, filepath.Join(dir, "seg0.json"))

	got, err := ReadSegmentSpecs(filenames)
	if err != nil {
		t.Fatal(err)
	}
	want := []*SegmentSpec{
		{
			ID:      0,
			Source:  filepath.Join(dir, "seg0.json"),
			Symbols: []*SymbolSpec{{Name: "wff", Type: "constant"}},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}

	set, err := NewSet(got)
	if err != nil {
		t.Fatal(err)
	}
	if len(set.Segments) != 1 {
		t.Errorf("want 1 segment, got %d", len(set.Segments))
	}
}

func TestReadSegmentSpecsErrors(t *testing.T) {
	dir, _, cleanup := testutil.MustPrepareTestFiles(t, []testtools.FileSpec{
		{Path: "bad.json", Content: "{"},
	})
	defer cleanup()

	for name, tc := range map[string]struct {
		filename string
	}{
		"missing file": {filename: filepath.Join(dir, "missing.json")},
		"bad json":     {filename: filepath.Join(dir, "bad.json")},
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := ReadSegmentSpecs([]string{tc.filename}); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestNewSet(t *testing.T) {
	specs := []*SegmentSpec{
		{ID: 7, Symbols: []*SymbolSpec{{Name: "wff", Type: "constant"}}},
		{ID: 3, Labels: []*LabelSpec{{Label: "ax-1", Index: 2}}},
	}
	set, err := NewSet(specs)
	if err != nil {
		t.Fatal(err)
	}
	if got := segment.CompareStatements(set.Order, segment.NewStatementAddress(7, 9), segment.NewStatementAddress(3, 0)); got >= 0 {
		t.Errorf("segment 7 is listed first and should sort first, got %d", got)
	}
	want := map[segment.SegmentID]*segment.Segment{
		7: {Symbols: []segment.SymbolDef{{Name: "wff", Type: segment.Constant}}},
		3: {Labels: []segment.LabelDef{{Label: "ax-1", Index: 2}}},
	}
	if diff := cmp.Diff(want, set.Segments); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestNewSetErrors(t *testing.T) {
	for name, tc := range map[string]struct {
		specs []*SegmentSpec
		want  string
	}{
		"duplicate id": {
			specs: []*SegmentSpec{{ID: 1, Source: "a"}, {ID: 1, Source: "b"}},
			want:  "duplicate segment id 1 (b)",
		},
		"bad symbol type": {
			specs: []*SegmentSpec{{ID: 2, Symbols: []*SymbolSpec{{Name: "x", Type: "hyp"}}}},
			want:  `segment 2: symbol "x": unknown symbol type "hyp"`,
		},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := NewSet(tc.specs)
			if err == nil {
				t.Fatal("expected error")
			}
			if err.Error() != tc.want {
				t.Errorf("want %q, got %q", tc.want, err.Error())
			}
		})
	}
}

func TestWriteReadSetSpecFile(t *testing.T) {
	seg := &segment.Segment{
		Symbols:   []segment.SymbolDef{{Name: "A", Type: segment.Variable, Index: 1, Ordinal: 2}},
		Floats:    []segment.FloatDef{{Name: "A", Label: "cA", Typecode: "class", Index: 3}},
		GlobalDvs: []segment.GlobalDvDef{{Vars: []string{"x", "y"}}},
	}
	spec := &SetSpec{Segments: []*SegmentSpec{FromSegment(4, seg)}}

	dir, _, cleanup := testutil.MustPrepareTestFiles(t, nil)
	defer cleanup()

	for _, ext := range []string{".json", ".yaml"} {
		t.Run(ext, func(t *testing.T) {
			filename := filepath.Join(dir, "set"+ext)
			if err := WriteSetSpecFile(filename, spec); err != nil {
				t.Fatal(err)
			}
			got, err := ReadSetSpecFile(filename)
			if err != nil {
				t.Fatal(err)
			}
			roundTrip, err := got.Segments[0].ToSegment()
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(seg, roundTrip); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}
