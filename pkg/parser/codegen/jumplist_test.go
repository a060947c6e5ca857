package codegen

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func emitJumps(c *Codegen, n int) {
	for range n {
		c.EmitJump()
	}
}

func TestMergeResolvesLikeSeparateBackpatches(t *testing.T) {
	l1 := JumpList{1, 3}
	l2 := JumpList{2, 4}

	merged := NewCodegen()
	emitJumps(merged, 4)
	merged.Backpatch(Merge(l1, l2), 9)

	separate := NewCodegen()
	emitJumps(separate, 4)
	separate.Backpatch(l1, 9)
	separate.Backpatch(l2, 9)

	if diff := cmp.Diff(texts(separate), texts(merged)); diff != "" {
		t.Errorf("merged backpatch differs (-separate +merged):\n%s", diff)
	}

	reversed := NewCodegen()
	emitJumps(reversed, 4)
	reversed.Backpatch(Merge(l2, l1), 9)
	if diff := cmp.Diff(texts(merged), texts(reversed)); diff != "" {
		t.Errorf("merge order changed the result (-ab +ba):\n%s", diff)
	}
}

func TestMerge(t *testing.T) {
	tests := []struct {
		name     string
		a, b     JumpList
		expected JumpList
	}{
		{"BothEmpty", nil, nil, nil},
		{"LeftEmpty", nil, JumpList{2}, JumpList{2}},
		{"RightEmpty", JumpList{1}, nil, JumpList{1}},
		{"Concatenates", JumpList{1, 5}, JumpList{2}, JumpList{1, 5, 2}},
		{"SelfMerge", JumpList{3, 4}, JumpList{3, 4}, JumpList{3, 4}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if diff := cmp.Diff(test.expected, Merge(test.a, test.b)); diff != "" {
				t.Errorf("merge mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("InputsUntouched", func(t *testing.T) {
		a, b := JumpList{1}, JumpList{2}
		m := Merge(a, b)
		m[0] = 99

		if a[0] != 1 || b[0] != 2 {
			t.Errorf("inputs changed: a=%v b=%v", a, b)
		}
	})
}

func TestBackpatch(t *testing.T) {
	t.Run("AppendsLabel", func(t *testing.T) {
		c := NewCodegen()
		j := c.EmitJump()
		c.Backpatch(MakeList(j), 7)

		if diff := cmp.Diff([]string{"GOTO 7"}, texts(c)); diff != "" {
			t.Errorf("text mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("SecondBackpatchAppendsAgain", func(t *testing.T) {
		c := NewCodegen()
		j := c.EmitJump()
		c.Backpatch(MakeList(j), 5)
		c.Backpatch(MakeList(j), 6)

		if diff := cmp.Diff([]string{"GOTO 5 6"}, texts(c)); diff != "" {
			t.Errorf("text mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("SelfMergedListPatchesOnce", func(t *testing.T) {
		c := NewCodegen()
		l := MakeList(c.EmitJump())
		c.Backpatch(Merge(l, l), 4)

		if diff := cmp.Diff([]string{"GOTO 4"}, texts(c)); diff != "" {
			t.Errorf("text mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("MissingIndicesIgnored", func(t *testing.T) {
		c := NewCodegen()
		c.EmitJump()
		c.Backpatch(JumpList{NoIndex, -3, 42}, 3)

		if diff := cmp.Diff([]string{"GOTO"}, texts(c)); diff != "" {
			t.Errorf("text mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("EmptyList", func(t *testing.T) {
		c := NewCodegen()
		c.EmitJump()
		c.Backpatch(nil, 3)

		if diff := cmp.Diff([]string{"GOTO"}, texts(c)); diff != "" {
			t.Errorf("text mismatch (-want +got):\n%s", diff)
		}
	})
}
