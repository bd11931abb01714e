package segspec

import (
	"fmt"
	"slices"

	"github.com/stackb/nameset/pkg/segment"
)

// ToSegment converts the spec into a new segment value.
func (s *SegmentSpec) ToSegment() (*segment.Segment, error) {
	seg := &segment.Segment{}
	for _, sym := range s.Symbols {
		typ, err := segment.ParseSymbolType(sym.Type)
		if err != nil {
			return nil, fmt.Errorf("segment %d: symbol %q: %w", s.ID, sym.Name, err)
		}
		seg.Symbols = append(seg.Symbols, segment.SymbolDef{
			Name:    sym.Name,
			Type:    typ,
			Index:   sym.Index,
			Ordinal: sym.Ordinal,
		})
	}
	for _, v := range s.LocalVars {
		seg.LocalVars = append(seg.LocalVars, segment.LocalVarDef{
			Name:    v.Name,
			Index:   v.Index,
			Ordinal: v.Ordinal,
		})
	}
	for _, l := range s.Labels {
		seg.Labels = append(seg.Labels, segment.LabelDef{
			Label: l.Label,
			Index: l.Index,
		})
	}
	for _, f := range s.Floats {
		seg.Floats = append(seg.Floats, segment.FloatDef{
			Name:     f.Name,
			Label:    f.Label,
			Typecode: f.Typecode,
			Index:    f.Index,
		})
	}
	for _, dv := range s.GlobalDvs {
		seg.GlobalDvs = append(seg.GlobalDvs, segment.GlobalDvDef{
			Vars:  slices.Clone(dv.Vars),
			Index: dv.Index,
		})
	}
	return seg, nil
}

// FromSegment describes an existing segment.
func FromSegment(id segment.SegmentID, seg *segment.Segment) *SegmentSpec {
	spec := &SegmentSpec{ID: uint32(id)}
	for _, sym := range seg.Symbols {
		spec.Symbols = append(spec.Symbols, &SymbolSpec{
			Name:    sym.Name,
			Type:    sym.Type.String(),
			Index:   sym.Index,
			Ordinal: sym.Ordinal,
		})
	}
	for _, v := range seg.LocalVars {
		spec.LocalVars = append(spec.LocalVars, &LocalVarSpec{Name: v.Name, Index: v.Index, Ordinal: v.Ordinal})
	}
	for _, l := range seg.Labels {
		spec.Labels = append(spec.Labels, &LabelSpec{Label: l.Label, Index: l.Index})
	}
	for _, f := range seg.Floats {
		spec.Floats = append(spec.Floats, &FloatSpec{Name: f.Name, Label: f.Label, Typecode: f.Typecode, Index: f.Index})
	}
	for _, dv := range seg.GlobalDvs {
		spec.GlobalDvs = append(spec.GlobalDvs, &GlobalDvSpec{Vars: slices.Clone(dv.Vars), Index: dv.Index})
	}
	return spec
}

// NewSet builds a segment set from specs listed in document order.  Segment
// ids must be unique.
func NewSet(specs []*SegmentSpec) (*segment.Set, error) {
	ids := make([]segment.SegmentID, 0, len(specs))
	segments := make(map[segment.SegmentID]*segment.Segment, len(specs))
	for _, spec := range specs {
		id := segment.SegmentID(spec.ID)
		if _, dup := segments[id]; dup {
			return nil, fmt.Errorf("duplicate segment id %d (%s)", id, spec.Source)
		}
		seg, err := spec.ToSegment()
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
		segments[id] = seg
	}
	return &segment.Set{
		Order:    segment.NewListOrder(ids...),
		Segments: segments,
	}, nil
}
