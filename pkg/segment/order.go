package segment

import (
	"cmp"
	"log"
	"slices"
)

// Order is a total order over the segments currently in use.
type Order interface {
	// CompareSegments returns a negative number when a precedes b, a positive
	// number when b precedes a and zero when they are the same segment.
	CompareSegments(a, b SegmentID) int
}

// ListOrder implements Order as an explicit list of segment ids.  A ListOrder
// is never modified: the edit methods return a new value.
type ListOrder struct {
	ids []SegmentID
	pos map[SegmentID]int
}

// NewListOrder constructs a new ListOrder with the ids in document order.
func NewListOrder(ids ...SegmentID) *ListOrder {
	o := &ListOrder{
		ids: slices.Clone(ids),
		pos: make(map[SegmentID]int, len(ids)),
	}
	for i, id := range o.ids {
		if _, dup := o.pos[id]; dup {
			log.Panicf("duplicate segment id in order: %d", id)
		}
		o.pos[id] = i
	}
	return o
}

// CompareSegments implements the Order interface.  Comparing an id that is
// not part of the order is a contract violation and panics.
func (o *ListOrder) CompareSegments(a, b SegmentID) int {
	return cmp.Compare(o.position(a), o.position(b))
}

func (o *ListOrder) position(id SegmentID) int {
	i, ok := o.pos[id]
	if !ok {
		log.Panicf("segment %d is not in the order", id)
	}
	return i
}

// IDs returns the segment ids in document order.
func (o *ListOrder) IDs() []SegmentID {
	return slices.Clone(o.ids)
}

// Contains reports whether the id is part of the order.
func (o *ListOrder) Contains(id SegmentID) bool {
	_, ok := o.pos[id]
	return ok
}

// Append returns a new order with id placed last.
func (o *ListOrder) Append(id SegmentID) *ListOrder {
	return NewListOrder(append(o.IDs(), id)...)
}

// InsertBefore returns a new order with id placed just before the given
// segment.
func (o *ListOrder) InsertBefore(before, id SegmentID) *ListOrder {
	ids := o.IDs()
	i := o.position(before)
	return NewListOrder(slices.Insert(ids, i, id)...)
}

// Remove returns a new order without the given id.
func (o *ListOrder) Remove(id SegmentID) *ListOrder {
	ids := o.IDs()
	if i, ok := o.pos[id]; ok {
		ids = slices.Delete(ids, i, i+1)
	}
	return NewListOrder(ids...)
}
