package interpreter

import (
	"fmt"
	"strings"
)

type ValueKind int

const (
	KindScalar ValueKind = iota
	KindArray
)

// String names the kind the way fault messages refer to it
func (k ValueKind) String() string {
	switch k {
	case KindScalar:
		return "int"
	case KindArray:
		return "int[]"
	default:
		return "<unknown>"
	}
}

// Variable is a named integer or fixed-length integer array
type Variable struct {
	Kind   ValueKind
	Scalar int
	Array  []int
}

// String renders the value as a string.
func (v Variable) String() string {
	switch v.Kind {
	case KindScalar:
		return fmt.Sprintf("%d", v.Scalar)
	case KindArray:
		parts := make([]string, len(v.Array))
		for i, n := range v.Array {
			parts[i] = fmt.Sprintf("%d", n)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	default:
		return "<nil>"
	}
}

// clone returns a copy that shares no storage with v
func (v Variable) clone() Variable {
	if v.Kind == KindArray {
		v.Array = append([]int(nil), v.Array...)
	}
	return v
}

func newScalar(n int) *Variable {
	return &Variable{Kind: KindScalar, Scalar: n}
}

// newArray creates a zero-filled array of the given length
func newArray(length int) *Variable {
	return &Variable{Kind: KindArray, Array: make([]int, length)}
}
