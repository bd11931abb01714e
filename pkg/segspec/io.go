package segspec

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ReadSetSpecFile reads a SetSpec from a .json, .yaml or .yml file.
func ReadSetSpecFile(filename string) (*SetSpec, error) {
	var spec SetSpec
	if err := readFile(filename, &spec); err != nil {
		return nil, err
	}
	return &spec, nil
}

// fileSpec is the union of the two file layouts: a SetSpec or a bare
// SegmentSpec.  Segments is nil when the file carries no segments list.
type fileSpec struct {
	SegmentSpec `yaml:",inline"`
	Segments    *[]*SegmentSpec `json:"segments" yaml:"segments"`
}

// ReadSegmentSpecs reads every file and flattens the result into a list of
// segments.  A file may hold either a SetSpec or a single SegmentSpec.
func ReadSegmentSpecs(filenames []string) ([]*SegmentSpec, error) {
	var specs []*SegmentSpec
	for _, filename := range filenames {
		var file fileSpec
		if err := readFile(filename, &file); err != nil {
			return nil, err
		}
		var segments []*SegmentSpec
		if file.Segments != nil {
			segments = *file.Segments
		} else {
			seg := file.SegmentSpec
			segments = []*SegmentSpec{&seg}
		}
		for _, seg := range segments {
			if seg.Source == "" {
				seg.Source = filename
			}
		}
		specs = append(specs, segments...)
	}
	return specs, nil
}

// WriteSetSpecFile writes the spec as json or yaml depending on the file
// extension.
func WriteSetSpecFile(filename string, spec *SetSpec) error {
	if spec.Segments == nil {
		spec = &SetSpec{Segments: []*SegmentSpec{}}
	}
	var data []byte
	var err error
	if isYAML(filename) {
		data, err = yaml.Marshal(spec)
	} else {
		data, err = json.MarshalIndent(spec, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filename, err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filename, err)
	}
	return nil
}

func readFile(filename string, v any) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}
	if isYAML(filename) {
		if err := yaml.Unmarshal(data, v); err != nil {
			return fmt.Errorf("unmarshal yaml %s: %w", filename, err)
		}
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("unmarshal json %s: %w", filename, err)
	}
	return nil
}

func isYAML(filename string) bool {
	switch filepath.Ext(filename) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}
