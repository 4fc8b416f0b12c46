package stack_test

import (
	"blockly/pkg/stack"
	"testing"
)

func TestPushPopOrder(t *testing.T) {
	s := stack.NewStack("if", "while")
	s.Push("repeat")

	expected := []string{"repeat", "while", "if"}
	for i, want := range expected {
		got, ok := s.Pop()
		if !ok {
			t.Fatalf("Pop %d: stack unexpectedly empty", i)
		}
		if got != want {
			t.Errorf("Pop %d: expected %s, got %s", i, want, got)
		}
	}

	if _, ok := s.Pop(); ok {
		t.Errorf("Pop on empty stack should report ok=false")
	}
}

func TestPeekAndClear(t *testing.T) {
	var s stack.Stack[int]
	if _, ok := s.Peek(); ok {
		t.Fatalf("Peek on zero stack should report ok=false")
	}

	s.Push(1)
	s.Push(2)
	if top, _ := s.Peek(); top != 2 {
		t.Errorf("expected top 2, got %d", top)
	}
	if s.Size() != 2 {
		t.Errorf("expected size 2, got %d", s.Size())
	}
	if arr := s.Array(); len(arr) != 2 || arr[0] != 1 {
		t.Errorf("expected bottom-first array [1 2], got %v", arr)
	}

	s.Clear()
	if !s.Empty() {
		t.Errorf("expected empty stack after Clear, size %d", s.Size())
	}
}
