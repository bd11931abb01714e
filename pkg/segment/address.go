package segment

import (
	"cmp"
	"fmt"
)

// SegmentID is the stable identity of a segment across edits.
type SegmentID uint32

// StatementAddress identifies a statement within a segment.
type StatementAddress struct {
	Segment SegmentID
	Index   int32
}

// NewStatementAddress constructs a new StatementAddress.
func NewStatementAddress(id SegmentID, index int32) StatementAddress {
	return StatementAddress{Segment: id, Index: index}
}

// String implements fmt.Stringer
func (a StatementAddress) String() string {
	return fmt.Sprintf("%d:%d", a.Segment, a.Index)
}

// TokenAddress identifies a single token occurrence within a statement.  The
// ordinal distinguishes several names declared by the same statement.
type TokenAddress struct {
	Statement StatementAddress
	Ordinal   int32
}

// NewTokenAddress constructs a new TokenAddress.
func NewTokenAddress(id SegmentID, index, ordinal int32) TokenAddress {
	return TokenAddress{
		Statement: NewStatementAddress(id, index),
		Ordinal:   ordinal,
	}
}

// String implements fmt.Stringer
func (a TokenAddress) String() string {
	return fmt.Sprintf("%s.%d", a.Statement, a.Ordinal)
}

// CompareStatements orders statement addresses by segment position under the
// given order, then by statement index.
func CompareStatements(order Order, a, b StatementAddress) int {
	if a.Segment != b.Segment {
		if c := order.CompareSegments(a.Segment, b.Segment); c != 0 {
			return c
		}
	}
	return cmp.Compare(a.Index, b.Index)
}

// CompareTokens orders token addresses by statement, then ordinal.
func CompareTokens(order Order, a, b TokenAddress) int {
	if c := CompareStatements(order, a.Statement, b.Statement); c != 0 {
		return c
	}
	return cmp.Compare(a.Ordinal, b.Ordinal)
}
