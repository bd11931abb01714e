package atom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTableIntern(t *testing.T) {
	for name, tc := range map[string]struct {
		names []string
		want  []Atom
	}{
		"degenerate": {},
		"sequential from one": {
			names: []string{"x", "y", "z"},
			want:  []Atom{1, 2, 3},
		},
		"repeated names keep their handle": {
			names: []string{"x", "x", "y", "x"},
			want:  []Atom{1, 1, 2, 1},
		},
		"empty name is a name": {
			names: []string{"", "a"},
			want:  []Atom{1, 2},
		},
	} {
		t.Run(name, func(t *testing.T) {
			table := NewTable()
			var got []Atom
			for _, n := range tc.names {
				got = append(got, table.Intern(n))
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestTableName(t *testing.T) {
	table := NewTable()
	x := table.Intern("x")
	y := table.Intern("y")

	if got := table.Name(x); got != "x" {
		t.Errorf("Name(%v): want x, got %q", x, got)
	}
	if got := table.Name(y); got != "y" {
		t.Errorf("Name(%v): want y, got %q", y, got)
	}
	if y <= x {
		t.Errorf("want strictly increasing handles, got %v then %v", x, y)
	}
	if table.Len() != 2 {
		t.Errorf("Len: want 2, got %d", table.Len())
	}
}

func TestTableNamePanics(t *testing.T) {
	for name, a := range map[string]Atom{
		"none":    None,
		"foreign": 42,
	} {
		t.Run(name, func(t *testing.T) {
			table := NewTable()
			table.Intern("x")
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("expected panic for %v", a)
				}
			}()
			table.Name(a)
		})
	}
}

func TestTableLookup(t *testing.T) {
	table := NewTable()
	want := table.Intern("wff")

	if got, ok := table.Lookup("wff"); !ok || got != want {
		t.Errorf("Lookup(wff): want (%v, true), got (%v, %t)", want, got, ok)
	}
	if got, ok := table.Lookup("class"); ok {
		t.Errorf("Lookup(class): want miss, got %v", got)
	}
}

func TestBitmap(t *testing.T) {
	b := NewBitmap(5, 2, 9, 2)
	if diff := cmp.Diff([]Atom{2, 5, 9}, FromBitmap(b)); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if !b.Contains(uint32(Atom(5))) {
		t.Error("want bitmap to contain 5")
	}
}
