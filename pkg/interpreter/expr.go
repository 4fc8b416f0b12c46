package interpreter

import (
	"errors"
	"regexp"
	"strconv"
)

const (
	identPattern   = `[A-Za-z_]\w*`
	operandPattern = `-?\w+(?:\[-?\d+\])?(?:\.length)?`
	opPattern      = `[-+*/]`

	// MaxArrayLength bounds array creation
	MaxArrayLength = 1 << 20
)

var (
	elementOperandRegex = regexp.MustCompile(`^(` + identPattern + `)\[(-?\d+)\]$`)
	lengthOperandRegex  = regexp.MustCompile(`^(` + identPattern + `)\.length$`)
	identOperandRegex   = regexp.MustCompile(`^` + identPattern + `$`)

	arrayCreateRegex  = regexp.MustCompile(`^int\[\]\s+(` + identPattern + `)\s*=\s*new\s+int\[(\d+)\]\s*;?$`)
	elementBinaryRegex = regexp.MustCompile(`^(` + identPattern + `)\[(-?\d+)\]\s*=\s*(` + operandPattern + `)\s*(` + opPattern + `)\s*(` + operandPattern + `)\s*;?$`)
	elementSingleRegex = regexp.MustCompile(`^(` + identPattern + `)\[(-?\d+)\]\s*=\s*(` + operandPattern + `)\s*;?$`)
	scalarBinaryRegex  = regexp.MustCompile(`^(?:int\s+)?(` + identPattern + `)\s*=\s*(` + operandPattern + `)\s*(` + opPattern + `)\s*(` + operandPattern + `)\s*;?$`)
	scalarSingleRegex  = regexp.MustCompile(`^(?:int\s+)?(` + identPattern + `)\s*=\s*(` + operandPattern + `)\s*;?$`)
)

// Operand resolves a literal, scalar variable, a[i] or a.length to its value
func (i *Interpreter) Operand(text string) (int, error) {
	if m := elementOperandRegex.FindStringSubmatch(text); m != nil {
		arr, err := i.arrayVariable(m[1])
		if err != nil {
			return 0, err
		}
		idx, err := parseIndex(m[2], len(arr.Array), m[1])
		if err != nil {
			return 0, err
		}
		return arr.Array[idx], nil
	}

	if m := lengthOperandRegex.FindStringSubmatch(text); m != nil {
		arr, err := i.arrayVariable(m[1])
		if err != nil {
			return 0, err
		}
		return len(arr.Array), nil
	}

	if identOperandRegex.MatchString(text) {
		v, ok := i.variables[text]
		if !ok {
			return 0, newError(UndefinedVariable, "Variable not found %s", text)
		}
		if v.Kind != KindScalar {
			return 0, newError(TypeMismatch, "Expected base variable. Got %s for variable %s", v.Kind, text)
		}
		return v.Scalar, nil
	}

	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, newError(MalformedLiteral, "%s is not a number or variable", text)
	}

	return n, nil
}

// arrayVariable looks up name and requires it to be an array
func (i *Interpreter) arrayVariable(name string) (*Variable, error) {
	v, ok := i.variables[name]
	if !ok {
		return nil, newError(UndefinedVariable, "Variable not found %s", name)
	}
	if v.Kind != KindArray {
		return nil, newError(TypeMismatch, "Expected array variable. Got %s for variable %s", v.Kind, name)
	}
	return v, nil
}

func parseIndex(text string, length int, name string) (int, error) {
	idx, err := strconv.Atoi(text)
	if err != nil {
		return 0, newError(MalformedLiteral, "%s is not a valid index", text)
	}
	if idx < 0 || idx >= length {
		return 0, newError(IndexOutOfBounds, "Index %d out of bounds for length %d of array %s", idx, length, name)
	}
	return idx, nil
}

// binary resolves both operands and applies op
func (i *Interpreter) binary(left, op, right string) (int, error) {
	lv, err := i.Operand(left)
	if err != nil {
		return 0, err
	}
	rv, err := i.Operand(right)
	if err != nil {
		return 0, err
	}

	switch op {
	case "+":
		return lv + rv, nil
	case "-":
		return lv - rv, nil
	case "*":
		return lv * rv, nil
	case "/":
		if rv == 0 {
			return 0, newError(DivisionByZero, "Division by zero is not allowed.")
		}
		return lv / rv, nil
	default:
		return 0, newError(MalformedLiteral, "unknown operator %s", op)
	}
}

var errNoAssignment = errors.New("not an assignment")

// assign executes an assignment line. It returns errNoAssignment if the line is not one.
// The target is only written once the value has been computed.
func (i *Interpreter) assign(line string) error {
	if m := arrayCreateRegex.FindStringSubmatch(line); m != nil {
		length, err := strconv.Atoi(m[2])
		if err != nil || length > MaxArrayLength {
			return newError(MalformedLiteral, "%s is not a valid array length (at most %d)", m[2], MaxArrayLength)
		}
		i.setArray(m[1], newArray(length))
		return nil
	}

	if m := elementBinaryRegex.FindStringSubmatch(line); m != nil {
		value, err := i.binary(m[3], m[4], m[5])
		if err != nil {
			return err
		}
		return i.setElement(m[1], m[2], value)
	}

	if m := elementSingleRegex.FindStringSubmatch(line); m != nil {
		value, err := i.Operand(m[3])
		if err != nil {
			return err
		}
		return i.setElement(m[1], m[2], value)
	}

	if m := scalarBinaryRegex.FindStringSubmatch(line); m != nil {
		value, err := i.binary(m[2], m[3], m[4])
		if err != nil {
			return err
		}
		i.setScalar(m[1], value)
		return nil
	}

	if m := scalarSingleRegex.FindStringSubmatch(line); m != nil {
		value, err := i.Operand(m[2])
		if err != nil {
			return err
		}
		i.setScalar(m[1], value)
		return nil
	}

	return errNoAssignment
}

// setScalar creates or replaces name as a scalar
func (i *Interpreter) setScalar(name string, value int) {
	i.variables[name] = newScalar(value)
	i.log.Debug("Variable set", "name", name, "value", value)

	if i.hud != nil {
		i.hud.ScalarSet(name, value)
	}
}

// setArray creates or replaces name as an array
func (i *Interpreter) setArray(name string, v *Variable) {
	i.variables[name] = v
	i.log.Debug("Array set", "name", name, "length", len(v.Array))

	if i.hud != nil {
		i.hud.ArraySet(name, append([]int(nil), v.Array...))
	}
}

func (i *Interpreter) setElement(name, index string, value int) error {
	arr, err := i.arrayVariable(name)
	if err != nil {
		return err
	}
	idx, err := parseIndex(index, len(arr.Array), name)
	if err != nil {
		return err
	}

	arr.Array[idx] = value
	i.log.Debug("Array element set", "name", name, "index", idx, "value", value)

	if i.hud != nil {
		i.hud.ArraySet(name, append([]int(nil), arr.Array...))
	}

	return nil
}
