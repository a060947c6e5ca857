package codegen

import (
	"strings"
	"testing"
)

func TestTemporaries(t *testing.T) {
	c := NewCodegen()

	if first := c.NewTemporary(); first != "$t01" {
		t.Errorf("first temporary: expected '$t01', got '%s'", first)
	}

	seen := map[string]bool{"$t01": true}
	for i := 0; i < 199; i++ {
		name := c.NewTemporary()
		if seen[name] {
			t.Fatalf("temporary %s issued twice", name)
		}
		seen[name] = true
	}

	if len(seen) != 200 {
		t.Errorf("distinct temporaries: expected 200, got %d", len(seen))
	}

	sym := c.NewTemporarySymbol(Real)
	if sym.Symbol.Name != "$t201" || sym.Type() != Real {
		t.Errorf("temporary symbol: expected $t201 of type float, got %s of type %s", sym.Symbol.Name, sym.Type())
	}
}

func TestLiteral(t *testing.T) {
	c := NewCodegen()
	lit := c.Literal("2.5", Real)

	if c.CurrentIndex() != 1 {
		t.Errorf("literal emitted an instruction")
	}
	if lit.Symbol.Name != "2.5" || !lit.Symbol.IsLiteral || lit.Symbol.Value != 2.5 {
		t.Errorf("literal: expected 2.5, got %+v", *lit.Symbol)
	}
	if lit.TrueList != nil || lit.FalseList != nil || lit.NextList != nil {
		t.Errorf("literal carries jump lists: %+v", lit)
	}
}

func TestLookup(t *testing.T) {
	t.Run("Declared", func(t *testing.T) {
		c := NewCodegen()
		c.Declare(Real, "x")

		got := c.Lookup("x")
		if got.Symbol.Name != "x" || got.Type() != Real {
			t.Errorf("lookup x: expected float x, got %+v", *got.Symbol)
		}
		if len(c.Errors()) != 0 {
			t.Errorf("unexpected errors: %v", c.Errors())
		}
	})

	t.Run("UndeclaredYieldsPlaceholder", func(t *testing.T) {
		c := NewCodegen()
		got := c.Lookup("ghost")

		if got.Symbol.Name != ErrorName || got.Type() != Error {
			t.Errorf("placeholder: expected err of type error, got %+v", *got.Symbol)
		}
		if len(c.Errors()) != 1 || !strings.Contains(c.Errors()[0], "Undefined variable") || !strings.Contains(c.Errors()[0], "ghost") {
			t.Errorf("errors: expected one undefined-variable error for ghost, got %v", c.Errors())
		}
	})

	t.Run("CopiesAreIndependent", func(t *testing.T) {
		c := NewCodegen()
		c.Declare(Integer, "x")

		first := c.Lookup("x")
		first.Symbol.Name = "$t09"

		if again := c.Lookup("x"); again.Symbol.Name != "x" {
			t.Errorf("table entry changed through a lookup result: got %s", again.Symbol.Name)
		}
	})
}

func TestDeclare(t *testing.T) {
	c := NewCodegen()
	c.Declare(Integer, "x")
	c.Declare(Real, "x")
	c.DeclareArray(Real, "v", 8)

	if len(c.Errors()) != 1 || !strings.Contains(c.Errors()[0], "Redeclaration of variable") {
		t.Fatalf("errors: expected one redeclaration error, got %v", c.Errors())
	}
	if got := c.Lookup("x"); got.Type() != Integer {
		t.Errorf("x: expected first declaration (int) to win, got %s", got.Type())
	}
	if got := c.Lookup("v"); got.Symbol.Size != 8 || got.Type() != Real {
		t.Errorf("v: expected float array of 8, got %+v", *got.Symbol)
	}
	if c.CurrentIndex() != 1 {
		t.Errorf("declarations emitted instructions")
	}
}
