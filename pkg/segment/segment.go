package segment

import "fmt"

// SymbolType classifies a math symbol declaration.
type SymbolType int

const (
	Variable SymbolType = iota
	Constant
)

// String implements fmt.Stringer
func (t SymbolType) String() string {
	switch t {
	case Variable:
		return "variable"
	case Constant:
		return "constant"
	default:
		return fmt.Sprintf("SymbolType(%d)", int(t))
	}
}

// ParseSymbolType is the inverse of SymbolType.String.
func ParseSymbolType(s string) (SymbolType, error) {
	switch s {
	case "variable":
		return Variable, nil
	case "constant":
		return Constant, nil
	default:
		return Variable, fmt.Errorf("unknown symbol type %q", s)
	}
}

// SymbolDef is a global constant or variable declaration.
type SymbolDef struct {
	Name    string
	Type    SymbolType
	Index   int32
	Ordinal int32
}

// LocalVarDef is a variable declared for the scope of a single statement.
type LocalVarDef struct {
	Name    string
	Index   int32
	Ordinal int32
}

// LabelDef is a labelled statement.
type LabelDef struct {
	Label string
	Index int32
}

// FloatDef is a floating hypothesis binding a variable to a typecode.
type FloatDef struct {
	Name     string
	Label    string
	Typecode string
	Index    int32
}

// GlobalDvDef is a disjoint variable constraint in force globally.  Vars are
// kept in declaration order.
type GlobalDvDef struct {
	Vars  []string
	Index int32
}

// Segment is the set of declarations extracted from one chunk of source.  A
// Segment must not be modified once it has been handed to a consumer; edits
// are expressed by replacing it with a new value.
type Segment struct {
	Symbols   []SymbolDef
	LocalVars []LocalVarDef
	Labels    []LabelDef
	Floats    []FloatDef
	GlobalDvs []GlobalDvDef
}
