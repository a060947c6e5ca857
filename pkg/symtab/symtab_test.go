package symtab

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTable(t *testing.T) {
	t.Run("InsertAndLookup", func(t *testing.T) {
		tab := New[int]()
		if !tab.Insert("x", 1) {
			t.Fatalf("insert x: expected true, got false")
		}

		v, ok := tab.Lookup("x")
		if !ok || v != 1 {
			t.Errorf("lookup x: expected (1, true), got (%d, %v)", v, ok)
		}

		if _, ok := tab.Lookup("y"); ok {
			t.Errorf("lookup y: expected miss")
		}
	})

	t.Run("DuplicateKeepsFirst", func(t *testing.T) {
		tab := New[string]()
		tab.Insert("x", "int")
		if tab.Insert("x", "float") {
			t.Errorf("duplicate insert: expected false, got true")
		}

		v, _ := tab.Lookup("x")
		if v != "int" {
			t.Errorf("lookup x: expected 'int', got '%s'", v)
		}
		if tab.Len() != 1 {
			t.Errorf("len: expected 1, got %d", tab.Len())
		}
	})

	t.Run("NamesSorted", func(t *testing.T) {
		tab := New[bool]()
		for _, n := range []string{"zeta", "alpha", "mid"} {
			tab.Insert(n, true)
		}

		if diff := cmp.Diff([]string{"alpha", "mid", "zeta"}, tab.Names()); diff != "" {
			t.Errorf("names mismatch (-want +got):\n%s", diff)
		}
	})
}
