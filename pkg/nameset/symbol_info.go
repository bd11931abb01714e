package nameset

import (
	"github.com/RoaringBitmap/roaring"

	"github.com/stackb/nameset/pkg/atom"
	"github.com/stackb/nameset/pkg/segment"
	"github.com/stackb/nameset/pkg/slot"
)

// floatInfo is the payload of a floating hypothesis entry.
type floatInfo struct {
	label        string
	typecode     string
	typecodeAtom atom.Atom
}

// dvInfo is the payload of a global disjoint variable entry.
type dvInfo struct {
	vars []atom.Atom
	set  *roaring.Bitmap
}

// symbolInfo aggregates every global declaration of one math symbol.
type symbolInfo struct {
	atom     atom.Atom
	all      slot.Slot[segment.TokenAddress, segment.SymbolType]
	constant slot.Slot[segment.TokenAddress, struct{}]
	float    slot.Slot[segment.StatementAddress, floatInfo]
}

// isEmpty reports whether the record carries no information at all and can be
// dropped.
func (s *symbolInfo) isEmpty() bool {
	return s.atom == atom.None &&
		s.all.IsEmpty() &&
		s.constant.IsEmpty() &&
		s.float.IsEmpty()
}
