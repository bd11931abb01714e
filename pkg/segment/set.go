package segment

// Set is a snapshot of the segment collection along with the order that
// arranges it.
type Set struct {
	Order    Order
	Segments map[SegmentID]*Segment
}

// NewSet constructs a new Set with the given order.
func NewSet(order Order) *Set {
	return &Set{
		Order:    order,
		Segments: make(map[SegmentID]*Segment),
	}
}

// Put adds or replaces the segment under the given id.
func (s *Set) Put(id SegmentID, seg *Segment) {
	s.Segments[id] = seg
}

// Without returns a shallow copy of the set lacking the given id.  Segment
// values are shared with the receiver.
func (s *Set) Without(id SegmentID) *Set {
	next := &Set{
		Order:    s.Order,
		Segments: make(map[SegmentID]*Segment, len(s.Segments)),
	}
	for k, v := range s.Segments {
		if k != id {
			next.Segments[k] = v
		}
	}
	return next
}
