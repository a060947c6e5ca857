package stack_test

import (
	"tacgen/pkg/parser/stack"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStack(t *testing.T) {
	t.Run("LIFO", func(t *testing.T) {
		s := stack.NewStack("$", "Program")
		s.Push("StmtList")

		if s.Size() != 3 {
			t.Fatalf("size: expected 3, got %d", s.Size())
		}
		if top := s.Peek(); top != "StmtList" {
			t.Errorf("peek: expected 'StmtList', got '%s'", top)
		}
		if got := s.Pop(); got != "StmtList" {
			t.Errorf("pop: expected 'StmtList', got '%s'", got)
		}
		if diff := cmp.Diff([]string{"$", "Program"}, s.Array()); diff != "" {
			t.Errorf("array mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("EmptyPopYieldsZero", func(t *testing.T) {
		s := stack.NewStack[[]int]()
		if got := s.Pop(); got != nil {
			t.Errorf("pop on empty: expected nil, got %v", got)
		}
		if got := s.Peek(); got != nil {
			t.Errorf("peek on empty: expected nil, got %v", got)
		}
		if s.Size() != 0 {
			t.Errorf("size: expected 0, got %d", s.Size())
		}
	})

	t.Run("IndependentLayers", func(t *testing.T) {
		s := stack.NewStack[[]int]()
		s.Push(nil)
		s.Push([]int{4})
		inner := s.Pop()
		outer := s.Pop()

		if diff := cmp.Diff([]int{4}, inner); diff != "" {
			t.Errorf("inner layer mismatch (-want +got):\n%s", diff)
		}
		if outer != nil {
			t.Errorf("outer layer: expected nil, got %v", outer)
		}
	})
}
