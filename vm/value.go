package vm

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	IntType   = "int"
	FloatType = "float"
	BoolType  = "bool"
)

type Value struct {
	Type  string
	Int   int64
	Float float64
	Bool  bool
}

func Zero(typ string) (Value, error) {
	switch typ {
	case IntType, FloatType, BoolType:
		return Value{Type: typ}, nil
	}
	return Value{}, fmt.Errorf("%w %q", ErrUnknownType, typ)
}

func (v Value) String() string {
	switch v.Type {
	case IntType:
		return strconv.FormatInt(v.Int, 10)
	case FloatType:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case BoolType:
		return strconv.FormatBool(v.Bool)
	}
	return "<invalid>"
}

func (v Value) truthy() bool {
	switch v.Type {
	case IntType:
		return v.Int != 0
	case FloatType:
		return v.Float != 0
	}
	return v.Bool
}

func (v Value) asFloat() float64 {
	if v.Type == IntType {
		return float64(v.Int)
	}
	return v.Float
}

// parseLiteral reads lit as a value of type typ.
func parseLiteral(typ, lit string) (Value, error) {
	switch typ {
	case IntType:
		i, err := strconv.ParseInt(lit, 10, 64)
		if err != nil {
			return Value{}, fmt.Errorf("%w %q for %s", ErrBadLiteral, lit, typ)
		}
		return Value{Type: IntType, Int: i}, nil
	case FloatType:
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil || lit == "true" || lit == "false" {
			return Value{}, fmt.Errorf("%w %q for %s", ErrBadLiteral, lit, typ)
		}
		return Value{Type: FloatType, Float: f}, nil
	case BoolType:
		b, err := strconv.ParseBool(lit)
		if err != nil || (lit != "true" && lit != "false") {
			return Value{}, fmt.Errorf("%w %q for %s", ErrBadLiteral, lit, typ)
		}
		return Value{Type: BoolType, Bool: b}, nil
	}
	return Value{}, fmt.Errorf("%w %q", ErrUnknownType, typ)
}

// inferLiteral reads an untyped literal as found in a condition head.
func inferLiteral(lit string) (Value, bool) {
	switch {
	case lit == "true" || lit == "false":
		return Value{Type: BoolType, Bool: lit == "true"}, true
	case strings.Contains(lit, "."):
		if f, err := strconv.ParseFloat(lit, 64); err == nil {
			return Value{Type: FloatType, Float: f}, true
		}
	default:
		if i, err := strconv.ParseInt(lit, 10, 64); err == nil {
			return Value{Type: IntType, Int: i}, true
		}
	}
	return Value{}, false
}

// convert coerces v to typ. Only int widens to float.
func convert(v Value, typ string) (Value, error) {
	switch {
	case v.Type == typ:
		return v, nil
	case v.Type == IntType && typ == FloatType:
		return Value{Type: FloatType, Float: float64(v.Int)}, nil
	}
	return Value{}, fmt.Errorf("%w: cannot use %s as %s", ErrTypeMismatch, v.Type, typ)
}

func combine(op string, acc, operand Value) (Value, error) {
	switch acc.Type {
	case IntType:
		a, b := acc.Int, operand.Int
		switch op {
		case "+":
			return Value{Type: IntType, Int: a + b}, nil
		case "-":
			return Value{Type: IntType, Int: a - b}, nil
		case "*":
			return Value{Type: IntType, Int: a * b}, nil
		case "/", "%":
			if b == 0 {
				return Value{}, ErrDivisionByZero
			}
			if op == "/" {
				return Value{Type: IntType, Int: a / b}, nil
			}
			return Value{Type: IntType, Int: a % b}, nil
		}
	case FloatType:
		a, b := acc.Float, operand.Float
		switch op {
		case "+":
			return Value{Type: FloatType, Float: a + b}, nil
		case "-":
			return Value{Type: FloatType, Float: a - b}, nil
		case "*":
			return Value{Type: FloatType, Float: a * b}, nil
		case "/":
			if b == 0 {
				return Value{}, ErrDivisionByZero
			}
			return Value{Type: FloatType, Float: a / b}, nil
		}
	case BoolType:
		switch op {
		case "+", "||":
			return Value{Type: BoolType, Bool: acc.Bool || operand.Bool}, nil
		case "*", "&&":
			return Value{Type: BoolType, Bool: acc.Bool && operand.Bool}, nil
		}
	}
	return Value{}, fmt.Errorf("%w %q for %s", ErrUnsupportedOperator, op, acc.Type)
}

func compare(op string, lhs, rhs Value) (bool, error) {
	if lhs.Type == BoolType || rhs.Type == BoolType {
		if lhs.Type != rhs.Type {
			return false, fmt.Errorf("%w: cannot compare %s with %s", ErrTypeMismatch, lhs.Type, rhs.Type)
		}
		switch op {
		case "==":
			return lhs.Bool == rhs.Bool, nil
		case "!=":
			return lhs.Bool != rhs.Bool, nil
		}
		return false, fmt.Errorf("%w %q for %s", ErrUnsupportedOperator, op, BoolType)
	}
	if lhs.Type == IntType && rhs.Type == IntType {
		return ordered(op, lhs.Int, rhs.Int)
	}
	return ordered(op, lhs.asFloat(), rhs.asFloat())
}

func ordered[T int64 | float64](op string, a, b T) (bool, error) {
	switch op {
	case "==":
		return a == b, nil
	case "!=":
		return a != b, nil
	case "<":
		return a < b, nil
	case "<=":
		return a <= b, nil
	case ">":
		return a > b, nil
	case ">=":
		return a >= b, nil
	}
	return false, fmt.Errorf("%w %q", ErrUnsupportedOperator, op)
}
