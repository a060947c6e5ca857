package interpreter

import (
	"fmt"
	"strconv"
)

type ValueKind int

const (
	KindUnknown ValueKind = iota
	KindInt
	KindFloat
)

// Value represents a dynamically-typed value in the interpreter.
type Value struct {
	Kind ValueKind
	I64  int64
	F64  float64
}

// String renders the value as a string.
func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.I64, 10)
	case KindFloat:
		return strconv.FormatFloat(v.F64, 'g', -1, 64)
	default:
		return "<nil>"
	}
}

// AsFloat64 converts the value to float64.
func (v Value) AsFloat64() float64 {
	if v.Kind == KindFloat {
		return v.F64
	}

	return float64(v.I64)
}

// AsInt64 converts the value to int64, truncating reals.
func (v Value) AsInt64() int64 {
	if v.Kind == KindFloat {
		return int64(v.F64)
	}

	return v.I64
}

func newInt(i int64) Value {
	return Value{Kind: KindInt, I64: i}
}

func newFloat(f float64) Value {
	return Value{Kind: KindFloat, F64: f}
}

// parseImmediate parses a numeric literal operand such as "3", "-2" or "1.5e3"
func parseImmediate(s string) (Value, bool) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return newInt(i), true
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return newFloat(f), true
	}

	return Value{}, false
}

func (k ValueKind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	default:
		return fmt.Sprintf("ValueKind(%d)", int(k))
	}
}
