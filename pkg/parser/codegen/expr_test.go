package codegen

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func newTestCodegen(decls map[string]Type) *Codegen {
	c := NewCodegen()
	for name, t := range decls {
		c.Declare(t, name)
	}
	return c
}

func TestBinaryOp(t *testing.T) {
	t.Run("IntegerOperands", func(t *testing.T) {
		c := newTestCodegen(map[string]Type{"a": Integer, "b": Integer})
		res := c.BinaryOp(c.Lookup("a"), c.Lookup("b"), OpAdd.Int(), OpAdd.Real())

		if diff := cmp.Diff([]string{"$t01 := a ADDI b"}, texts(c)); diff != "" {
			t.Errorf("code mismatch (-want +got):\n%s", diff)
		}
		if res.Symbol.Name != "$t01" || res.Type() != Integer {
			t.Errorf("result: expected int $t01, got %+v", *res.Symbol)
		}
	})

	t.Run("PromotesLeftInteger", func(t *testing.T) {
		c := newTestCodegen(map[string]Type{"a": Integer, "b": Real})
		a := c.Lookup("a")
		res := c.BinaryOp(a, c.Lookup("b"), "ADDI", "ADDF")

		want := []string{
			"$t02 := I2F a",
			"$t01 := $t02 ADDF b",
		}
		if diff := cmp.Diff(want, texts(c)); diff != "" {
			t.Errorf("code mismatch (-want +got):\n%s", diff)
		}
		if res.Type() != Real {
			t.Errorf("result type: expected float, got %s", res.Type())
		}
		if a.Symbol.Name != "a" {
			t.Errorf("caller's operand was rebound to %s", a.Symbol.Name)
		}

		casts := 0
		for _, text := range texts(c) {
			if strings.Contains(text, "I2F") {
				casts++
			}
		}
		if casts != 1 {
			t.Errorf("casts: expected exactly 1, got %d", casts)
		}
	})

	t.Run("PromotesRightInteger", func(t *testing.T) {
		c := NewCodegen()
		res := c.BinaryOp(c.Literal("1.5", Real), c.Literal("2", Integer), OpMul.Int(), OpMul.Real())

		want := []string{
			"$t02 := I2F 2",
			"$t01 := 1.5 MULF $t02",
		}
		if diff := cmp.Diff(want, texts(c)); diff != "" {
			t.Errorf("code mismatch (-want +got):\n%s", diff)
		}
		if res.Type() != Real {
			t.Errorf("result type: expected float, got %s", res.Type())
		}
	})

	t.Run("BothReal", func(t *testing.T) {
		c := NewCodegen()
		c.BinaryOp(c.Literal("1.5", Real), c.Literal("2.5", Real), OpSub.Int(), OpSub.Real())

		if diff := cmp.Diff([]string{"$t01 := 1.5 SUBF 2.5"}, texts(c)); diff != "" {
			t.Errorf("code mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestAssign(t *testing.T) {
	c := newTestCodegen(map[string]Type{"i": Integer, "f": Real})

	c.Assign(c.Lookup("i").operand(), c.Literal("3", Integer))
	c.Assign(c.Lookup("f").operand(), c.Literal("3", Integer))
	c.Assign(c.Lookup("f").operand(), c.Literal("0.5", Real))
	c.Assign(c.Lookup("i").operand(), Attributes{})

	want := []string{
		"i := 3",
		"$t01 := I2F 3",
		"f := $t01",
		"f := 0.5",
	}
	if diff := cmp.Diff(want, texts(c)); diff != "" {
		t.Errorf("code mismatch (-want +got):\n%s", diff)
	}
}

func TestArrays(t *testing.T) {
	t.Run("Read", func(t *testing.T) {
		c := NewCodegen()
		c.DeclareArray(Real, "v", 4)
		c.Declare(Integer, "i")

		res := c.ArrayRead("v", c.Lookup("i"))
		want := []string{
			"$t01 := i MULI 4",
			"$t02 := v[$t01]",
		}
		if diff := cmp.Diff(want, texts(c)); diff != "" {
			t.Errorf("code mismatch (-want +got):\n%s", diff)
		}
		// element type is not recovered from the declaration
		if res.Symbol.Name != "$t02" || res.Type() != Integer {
			t.Errorf("result: expected int $t02, got %+v", *res.Symbol)
		}
	})

	t.Run("Write", func(t *testing.T) {
		c := NewCodegen()
		c.ArrayWrite("v", c.Literal("2", Integer), c.Literal("7", Integer))

		want := []string{
			"$t01 := 2 MULI 4",
			"v[$t01] := 7",
		}
		if diff := cmp.Diff(want, texts(c)); diff != "" {
			t.Errorf("code mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestPrint(t *testing.T) {
	c := NewCodegen()
	c.Print(c.Literal("4", Integer))
	c.Print(c.Literal("4.5", Real))

	want := []string{
		"PARAM 4",
		"CALL PUTI, 1",
		"PARAM 4.5",
		"CALL PUTF, 1",
	}
	if diff := cmp.Diff(want, texts(c)); diff != "" {
		t.Errorf("code mismatch (-want +got):\n%s", diff)
	}
}
