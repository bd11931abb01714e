package atom

import "github.com/RoaringBitmap/roaring"

// NewBitmap returns a bitmap containing the given handles.
func NewBitmap(atoms ...Atom) *roaring.Bitmap {
	b := roaring.New()
	for _, a := range atoms {
		b.Add(uint32(a))
	}
	return b
}

// FromBitmap lists the handles in the bitmap in ascending order.
func FromBitmap(b *roaring.Bitmap) []Atom {
	atoms := make([]Atom, 0, b.GetCardinality())
	it := b.Iterator()
	for it.HasNext() {
		atoms = append(atoms, Atom(it.Next()))
	}
	return atoms
}
