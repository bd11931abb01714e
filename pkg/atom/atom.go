package atom

import (
	"fmt"
	"log"
)

// Atom is a compact integer handle for an interned name.
type Atom uint32

// None is the reserved zero handle.  No name is ever assigned to it.
const None Atom = 0

// String implements fmt.Stringer
func (a Atom) String() string {
	return fmt.Sprintf("#%d", uint32(a))
}

// Table is an append-only, unsynchronized intern table.  Handles are assigned
// sequentially starting at 1 and are never reclaimed.
type Table struct {
	ids     map[string]Atom
	reverse []string
}

func NewTable() *Table {
	return &Table{
		ids: make(map[string]Atom),
		// slot 0 holds the name of None
		reverse: []string{""},
	}
}

// Intern returns the handle for the given name, assigning the next one if the
// name has not been seen before.
func (t *Table) Intern(name string) Atom {
	if id, ok := t.ids[name]; ok {
		return id
	}
	id := Atom(len(t.reverse))
	t.reverse = append(t.reverse, name)
	t.ids[name] = id
	return id
}

// Lookup returns the handle of a previously interned name.
func (t *Table) Lookup(name string) (Atom, bool) {
	id, ok := t.ids[name]
	return id, ok
}

// Name returns the name bound to the given handle.  It panics if the handle
// was not produced by this table.
func (t *Table) Name(a Atom) string {
	if a == None || int(a) >= len(t.reverse) {
		log.Panicf("atom out of bounds: %d (table has %d names)", a, t.Len())
	}
	return t.reverse[a]
}

// Len returns the number of interned names.
func (t *Table) Len() int {
	return len(t.reverse) - 1
}
