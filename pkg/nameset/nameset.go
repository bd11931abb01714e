// Package nameset maintains the name lookup tables of a database that is
// split into independently reparsed segments.  The tables are updated
// incrementally: only segments whose content changed are rescanned.
package nameset

import (
	"fmt"
	"log"
	"slices"

	"github.com/rs/zerolog"

	"github.com/stackb/nameset/pkg/atom"
	"github.com/stackb/nameset/pkg/segment"
	"github.com/stackb/nameset/pkg/slot"
)

// Nameset tracks, for every label and math symbol, the declarations currently
// present in the segment collection ordered by position in the document.
//
// A Nameset is not safe for concurrent mutation.  Readers may be used
// concurrently as long as no mutation runs at the same time.
type Nameset struct {
	logger zerolog.Logger
	atoms  *atom.Table
	order  segment.Order

	segments map[segment.SegmentID]*segment.Segment
	dvInfo   slot.Slot[segment.StatementAddress, dvInfo]
	labels   map[string]*slot.Slot[segment.StatementAddress, struct{}]
	symbols  map[string]*symbolInfo
}

// New constructs an empty Nameset.
func New(options ...Option) *Nameset {
	ns := &Nameset{
		logger:   zerolog.Nop(),
		atoms:    atom.NewTable(),
		order:    segment.NewListOrder(),
		segments: make(map[segment.SegmentID]*segment.Segment),
		labels:   make(map[string]*slot.Slot[segment.StatementAddress, struct{}]),
		symbols:  make(map[string]*symbolInfo),
	}
	for _, opt := range options {
		opt(ns)
	}
	return ns
}

// Order returns the order that was last adopted.
func (ns *Nameset) Order() segment.Order {
	return ns.order
}

// Contains reports whether the segment is currently reflected in the index.
func (ns *Nameset) Contains(id segment.SegmentID) bool {
	_, ok := ns.segments[id]
	return ok
}

// Update brings the index into correspondence with the given set.  Segments
// are compared by identity: a tracked segment is rescanned only if the set
// holds a different *Segment under its id.
//
// Slots that are not touched by a changed segment keep the order they were
// sorted in, even when set.Order arranges their segments differently.
func (ns *Nameset) Update(set *segment.Set) {
	ns.order = set.Order

	var stale []segment.SegmentID
	for id, seg := range ns.segments {
		if next, ok := set.Segments[id]; !ok || next != seg {
			stale = append(stale, id)
		}
	}
	for _, id := range stale {
		ns.RemoveSegment(id)
	}

	var added []segment.SegmentID
	for id := range set.Segments {
		if !ns.Contains(id) {
			added = append(added, id)
		}
	}
	// new handles are handed out in document order
	slices.SortFunc(added, set.Order.CompareSegments)
	for _, id := range added {
		ns.AddSegment(id, set.Segments[id])
	}

	ns.logger.Debug().
		Int("removed", len(stale)).
		Int("added", len(added)).
		Int("segments", len(ns.segments)).
		Msg("nameset updated")
}

func (ns *Nameset) compareStatements(a, b segment.StatementAddress) int {
	return segment.CompareStatements(ns.order, a, b)
}

func (ns *Nameset) compareTokens(a, b segment.TokenAddress) int {
	return segment.CompareTokens(ns.order, a, b)
}

// symbol returns the record for the name, creating it and assigning its atom
// if needed.
func (ns *Nameset) symbol(name string) *symbolInfo {
	info, ok := ns.symbols[name]
	if !ok {
		info = &symbolInfo{}
		ns.symbols[name] = info
	}
	if info.atom == atom.None {
		info.atom = ns.atoms.Intern(name)
	}
	return info
}

// AddSegment indexes every declaration of the segment under the given id.  It
// does nothing if the id is already tracked.
func (ns *Nameset) AddSegment(id segment.SegmentID, seg *segment.Segment) {
	if ns.Contains(id) {
		return
	}
	ns.segments[id] = seg

	for _, def := range seg.Symbols {
		info := ns.symbol(def.Name)
		address := segment.NewTokenAddress(id, def.Index, def.Ordinal)
		info.all.Insert(ns.compareTokens, address, def.Type)
		if def.Type == segment.Constant {
			info.constant.Insert(ns.compareTokens, address, struct{}{})
		}
	}

	// local variables are only ever resolved from within their own statement,
	// so they need a handle but no address.
	for _, def := range seg.LocalVars {
		ns.atoms.Intern(def.Name)
	}

	for _, def := range seg.Labels {
		labels, ok := ns.labels[def.Label]
		if !ok {
			labels = &slot.Slot[segment.StatementAddress, struct{}]{}
			ns.labels[def.Label] = labels
		}
		labels.Insert(ns.compareStatements, segment.NewStatementAddress(id, def.Index), struct{}{})
	}

	for _, def := range seg.Floats {
		info := ns.symbol(def.Name)
		info.float.Insert(ns.compareStatements, segment.NewStatementAddress(id, def.Index), floatInfo{
			label:        def.Label,
			typecode:     def.Typecode,
			typecodeAtom: ns.atoms.Intern(def.Typecode),
		})
	}

	for _, def := range seg.GlobalDvs {
		vars := make([]atom.Atom, len(def.Vars))
		for i, v := range def.Vars {
			vars[i] = ns.atoms.Intern(v)
		}
		ns.dvInfo.Insert(ns.compareStatements, segment.NewStatementAddress(id, def.Index), dvInfo{
			vars: vars,
			set:  atom.NewBitmap(vars...),
		})
	}

	ns.logger.Debug().
		Uint32("segment", uint32(id)).
		Int("symbols", len(seg.Symbols)).
		Int("labels", len(seg.Labels)).
		Int("floats", len(seg.Floats)).
		Int("dvs", len(seg.GlobalDvs)).
		Msg("segment added")
}

// RemoveSegment withdraws every declaration indexed for the id.  It does
// nothing if the id is not tracked.  Interned handles are kept.
func (ns *Nameset) RemoveSegment(id segment.SegmentID) {
	seg, ok := ns.segments[id]
	if !ok {
		return
	}
	delete(ns.segments, id)

	for _, def := range seg.Symbols {
		address := segment.NewTokenAddress(id, def.Index, def.Ordinal)
		ns.updateSymbol(def.Name, func(info *symbolInfo) {
			info.all.Remove(address)
			info.constant.Remove(address)
		})
	}

	for _, def := range seg.Labels {
		labels, ok := ns.labels[def.Label]
		if !ok {
			continue
		}
		labels.Remove(segment.NewStatementAddress(id, def.Index))
		if labels.IsEmpty() {
			delete(ns.labels, def.Label)
		}
	}

	for _, def := range seg.Floats {
		address := segment.NewStatementAddress(id, def.Index)
		ns.updateSymbol(def.Name, func(info *symbolInfo) {
			info.float.Remove(address)
		})
	}

	for _, def := range seg.GlobalDvs {
		ns.dvInfo.Remove(segment.NewStatementAddress(id, def.Index))
	}

	ns.logger.Debug().
		Uint32("segment", uint32(id)).
		Msg("segment removed")
}

// updateSymbol applies fn to an existing record and drops the record if it
// ends up empty.
func (ns *Nameset) updateSymbol(name string, fn func(*symbolInfo)) {
	info, ok := ns.symbols[name]
	if !ok {
		return
	}
	fn(info)
	if info.isEmpty() {
		delete(ns.symbols, name)
	}
}

// Atom returns the handle of a name that is known to be interned, such as a
// local variable being resolved from its own statement.
func (ns *Nameset) Atom(name string) (atom.Atom, error) {
	if a, ok := ns.atoms.Lookup(name); ok {
		return a, nil
	}
	return atom.None, fmt.Errorf("%w: %q", ErrNotInterned, name)
}

// MustAtom is like Atom but panics if the name was never interned.
func (ns *Nameset) MustAtom(name string) atom.Atom {
	a, err := ns.Atom(name)
	if err != nil {
		log.Panicf("only use MustAtom for names registered by a segment: %v", err)
	}
	return a
}

// AtomName returns the name of a handle produced by this Nameset.  It panics
// for any other value.
func (ns *Nameset) AtomName(a atom.Atom) string {
	return ns.atoms.Name(a)
}

// Stats summarizes the size of the index.
type Stats struct {
	Segments  int
	Labels    int
	Symbols   int
	GlobalDvs int
	Atoms     int
}

// Stats returns the current size of the index.
func (ns *Nameset) Stats() Stats {
	return Stats{
		Segments:  len(ns.segments),
		Labels:    len(ns.labels),
		Symbols:   len(ns.symbols),
		GlobalDvs: ns.dvInfo.Len(),
		Atoms:     ns.atoms.Len(),
	}
}
