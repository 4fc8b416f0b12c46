package parser_test

import (
	"blockly/pkg/parser"
	"errors"
	"fmt"
	"strings"
	"testing"
)

var errNotFound = errors.New("not found")

type mapEnv map[string]int

func (m mapEnv) Operand(text string) (int, error) {
	if v, ok := m[text]; ok {
		return v, nil
	}
	var n int
	if _, err := fmt.Sscanf(text, "%d", &n); err == nil && fmt.Sprint(n) == text {
		return n, nil
	}
	return 0, fmt.Errorf("%w: %s", errNotFound, text)
}

func TestEvaluate(t *testing.T) {
	env := mapEnv{"x": 3, "y": 5, "a[1]": 7, "a.length": 4}
	wall := true
	preds := map[string]parser.Predicate{
		"WandOben": func() bool { return wall },
		"naheWand": func() bool { return !wall },
	}

	tests := []struct {
		cond     string
		expected bool
	}{
		{"x < y", true},
		{"x >= y", false},
		{"x == 3", true},
		{"x != 3", false},
		{"-1 < x", true},
		{"a[1] > a.length", true},
		{"a.length <= 4", true},
		{"true", true},
		{"false || x > 2", true},
		{"x > 2 && y < 5", false},
		{"!(x > 2 && y < 5)", true},
		{"WandOben()", true},
		{"!naheWand() && WandOben()", true},
		{"(x < y) || (y < x)", true},
		{"x < y && (false || !false)", true},
	}

	for _, test := range tests {
		got, err := parser.Evaluate(test.cond, env, preds)
		if err != nil {
			t.Errorf("Condition %q: unexpected error %v", test.cond, err)
			continue
		}
		if got != test.expected {
			t.Errorf("Condition %q: expected %v, got %v", test.cond, test.expected, got)
		}
	}
}

func TestShortCircuitSkipsLookups(t *testing.T) {
	env := mapEnv{"x": 1}

	got, err := parser.Evaluate("x == 1 || missing > 0", env, nil)
	if err != nil || !got {
		t.Errorf("expected true without lookup error, got %v, %v", got, err)
	}

	got, err = parser.Evaluate("x == 2 && missing > 0", env, nil)
	if err != nil || got {
		t.Errorf("expected false without lookup error, got %v, %v", got, err)
	}
}

func TestLookupError(t *testing.T) {
	_, err := parser.Evaluate("missing > 0", mapEnv{}, nil)
	if !errors.Is(err, errNotFound) {
		t.Fatalf("expected lookup error to propagate, got %v", err)
	}
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		cond    string
		message string
	}{
		{"", "Empty condition"},
		{"x <", "Missing operand"},
		{"x", "Missing comparison operator"},
		{"(x < 1", "Missing closing parenthesis"},
		{"a[i] < 1", "Array index must be an integer literal"},
		{"a.size < 1", "Expected 'length' after '.'"},
		{"x < 1 y", "Unexpected token 'y'"},
		{"fliegen()", "Unknown predicate 'fliegen'"},
		{"x & 1", "Illegal character '&'"},
	}

	for _, test := range tests {
		_, err := parser.Evaluate(test.cond, mapEnv{"x": 0}, nil)
		if !errors.Is(err, parser.ErrSyntax) {
			t.Errorf("Condition %q: expected syntax error, got %v", test.cond, err)
			continue
		}
		if want := test.message; !strings.Contains(err.Error(), want) {
			t.Errorf("Condition %q: expected message containing %q, got %q", test.cond, want, err.Error())
		}
	}
}
