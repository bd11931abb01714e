package nameset

import (
	"slices"

	"github.com/RoaringBitmap/roaring"

	"github.com/stackb/nameset/pkg/atom"
	"github.com/stackb/nameset/pkg/segment"
)

// Reader answers name lookups against a Nameset.  It never modifies the
// Nameset.
type Reader struct {
	nameset *Nameset
}

// NewReader constructs a new Reader.
func NewReader(ns *Nameset) *Reader {
	return &Reader{nameset: ns}
}

// LookupLabel is the result of a label lookup.
type LookupLabel struct {
	// Address of the topmost statement with this label
	Address segment.StatementAddress
}

// LookupSymbol is the result of a math symbol lookup.
type LookupSymbol struct {
	Type segment.SymbolType
	Atom atom.Atom
	// Address of the topmost global constant or variable declaration
	Address segment.TokenAddress
	// ConstAddress is the topmost constant declaration, if any.  It can differ
	// from Address when a variable declaration comes first.
	ConstAddress *segment.TokenAddress
}

// LookupFloat is the result of a floating hypothesis lookup.
type LookupFloat struct {
	// Address of the topmost floating hypothesis for the variable
	Address      segment.StatementAddress
	Label        string
	Typecode     string
	TypecodeAtom atom.Atom
}

// LookupGlobalDv is one global disjoint variable statement.
type LookupGlobalDv struct {
	Address segment.StatementAddress
	// Vars in declaration order
	Vars []atom.Atom
}

// LookupLabel finds the topmost statement carrying the label.
func (r *Reader) LookupLabel(label string) (*LookupLabel, bool) {
	labels, ok := r.nameset.labels[label]
	if !ok {
		return nil, false
	}
	top, ok := labels.Top()
	if !ok {
		return nil, false
	}
	return &LookupLabel{Address: top.Address}, true
}

// LookupSymbol finds the topmost constant or variable declaration of the
// symbol.
func (r *Reader) LookupSymbol(symbol string) (*LookupSymbol, bool) {
	info, ok := r.nameset.symbols[symbol]
	if !ok {
		return nil, false
	}
	top, ok := info.all.Top()
	if !ok {
		return nil, false
	}
	result := &LookupSymbol{
		Type:    top.Value,
		Atom:    info.atom,
		Address: top.Address,
	}
	if c, ok := info.constant.Top(); ok {
		address := c.Address
		result.ConstAddress = &address
	}
	return result, true
}

// LookupFloat finds the topmost floating hypothesis for the variable.
func (r *Reader) LookupFloat(symbol string) (*LookupFloat, bool) {
	info, ok := r.nameset.symbols[symbol]
	if !ok {
		return nil, false
	}
	top, ok := info.float.Top()
	if !ok {
		return nil, false
	}
	return &LookupFloat{
		Address:      top.Address,
		Label:        top.Value.label,
		Typecode:     top.Value.typecode,
		TypecodeAtom: top.Value.typecodeAtom,
	}, true
}

// LookupGlobalDv lists every global disjoint variable statement in document
// order.  All of them are in force at once.
func (r *Reader) LookupGlobalDv() []*LookupGlobalDv {
	entries := r.nameset.dvInfo.Entries()
	result := make([]*LookupGlobalDv, len(entries))
	for i, e := range entries {
		result[i] = &LookupGlobalDv{
			Address: e.Address,
			Vars:    slices.Clone(e.Value.vars),
		}
	}
	return result
}

// IsDisjoint reports whether some global disjoint variable statement lists
// both a and b.  A variable is never disjoint from itself.
func (r *Reader) IsDisjoint(a, b atom.Atom) bool {
	if a == b {
		return false
	}
	for _, e := range r.nameset.dvInfo.Entries() {
		if e.Value.set.Contains(uint32(a)) && e.Value.set.Contains(uint32(b)) {
			return true
		}
	}
	return false
}

// DisjointFrom lists, in handle order, every variable that some global
// disjoint variable statement pairs with a.
func (r *Reader) DisjointFrom(a atom.Atom) []atom.Atom {
	union := roaring.New()
	for _, e := range r.nameset.dvInfo.Entries() {
		if e.Value.set.Contains(uint32(a)) {
			union.Or(e.Value.set)
		}
	}
	union.Remove(uint32(a))
	return atom.FromBitmap(union)
}
