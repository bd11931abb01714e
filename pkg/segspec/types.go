package segspec

// SetSpec describes a collection of segments.  The list order is the document
// order.
type SetSpec struct {
	// Segments is the list of segments in document order.  The key is always
	// written so that an empty set is not read back as a bare segment.
	Segments []*SegmentSpec `json:"segments" yaml:"segments"`
}

// SegmentSpec describes the declarations of one segment.
type SegmentSpec struct {
	// ID is the stable segment id.
	ID uint32 `json:"id" yaml:"id"`
	// Source is an optional description of where the segment came from, such
	// as a filename.
	Source string `json:"source,omitempty" yaml:"source,omitempty"`
	// Symbols is the list of $c / $v declarations.
	Symbols []*SymbolSpec `json:"symbols,omitempty" yaml:"symbols,omitempty"`
	// LocalVars is the list of variables bound by a single statement.
	LocalVars []*LocalVarSpec `json:"localVars,omitempty" yaml:"localVars,omitempty"`
	// Labels is the list of labelled statements.
	Labels []*LabelSpec `json:"labels,omitempty" yaml:"labels,omitempty"`
	// Floats is the list of floating hypotheses.
	Floats []*FloatSpec `json:"floats,omitempty" yaml:"floats,omitempty"`
	// GlobalDvs is the list of global disjoint variable statements.
	GlobalDvs []*GlobalDvSpec `json:"globalDvs,omitempty" yaml:"globalDvs,omitempty"`
}

type SymbolSpec struct {
	Name string `json:"name" yaml:"name"`
	// Type is "constant" or "variable"
	Type    string `json:"type" yaml:"type"`
	Index   int32  `json:"index,omitempty" yaml:"index,omitempty"`
	Ordinal int32  `json:"ordinal,omitempty" yaml:"ordinal,omitempty"`
}

type LocalVarSpec struct {
	Name    string `json:"name" yaml:"name"`
	Index   int32  `json:"index,omitempty" yaml:"index,omitempty"`
	Ordinal int32  `json:"ordinal,omitempty" yaml:"ordinal,omitempty"`
}

type LabelSpec struct {
	Label string `json:"label" yaml:"label"`
	Index int32  `json:"index,omitempty" yaml:"index,omitempty"`
}

type FloatSpec struct {
	Name     string `json:"name" yaml:"name"`
	Label    string `json:"label" yaml:"label"`
	Typecode string `json:"typecode" yaml:"typecode"`
	Index    int32  `json:"index,omitempty" yaml:"index,omitempty"`
}

type GlobalDvSpec struct {
	Vars  []string `json:"vars" yaml:"vars,flow"`
	Index int32    `json:"index,omitempty" yaml:"index,omitempty"`
}
