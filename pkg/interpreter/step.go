package interpreter

import (
	"cmp"
	"fmt"
	"math"
	"strings"
	"tacgen/pkg/parser/codegen"
)

// exec runs the instruction at position n of the decoded program
func (i *Interpreter) exec(n int) error {
	in := i.code[n]
	next := i.ip + 1

	switch in.kind {
	case opCopy:
		i.vars[in.dst] = i.load(in.a)

	case opCast:
		i.vars[in.dst] = newFloat(i.load(in.a).AsFloat64())

	case opBinary:
		res, err := evalBinary(in.opcode, i.load(in.a), i.load(in.b))
		if err != nil {
			return fmt.Errorf("instruction %d: %w", i.ip, err)
		}
		i.vars[in.dst] = res

	case opLoad:
		i.vars[in.dst] = i.cells[in.arr][i.load(in.a).AsInt64()]

	case opStore:
		row, ok := i.cells[in.arr]
		if !ok {
			row = make(map[int64]Value)
			i.cells[in.arr] = row
		}
		row[i.load(in.a).AsInt64()] = i.load(in.b)

	case opParam:
		i.params = append(i.params, i.load(in.a))

	case opCall:
		if err := i.call(in.opcode, in.argc); err != nil {
			return fmt.Errorf("instruction %d: %w", i.ip, err)
		}

	case opIf:
		taken, err := compare(in.opcode, i.load(in.a), i.load(in.b))
		if err != nil {
			return fmt.Errorf("instruction %d: %w", i.ip, err)
		}
		if taken {
			next = in.target
		}

	case opGoto:
		next = in.target
	}

	i.ip = next
	return nil
}

// load reads an operand: a numeric literal or a variable. Unset variables read as integer zero.
func (i *Interpreter) load(operand string) Value {
	if v, ok := parseImmediate(operand); ok {
		return v
	}

	v, ok := i.vars[operand]
	if !ok {
		return newInt(0)
	}

	return v
}

// call runs a runtime routine with the last argc staged parameters
func (i *Interpreter) call(fn string, argc int) error {
	if argc > len(i.params) {
		return fmt.Errorf("%s: %w", fn, ErrMissingParam)
	}

	args := i.params[len(i.params)-argc:]
	i.params = i.params[:len(i.params)-argc]

	switch fn {
	case codegen.CallPutI:
		for _, a := range args {
			fmt.Fprintf(i.out, "%d\n", a.AsInt64())
		}
	case codegen.CallPutF:
		for _, a := range args {
			fmt.Fprintf(i.out, "%g\n", a.AsFloat64())
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCall, fn)
	}

	return nil
}

// splitOpcode splits "ADDI" into "ADD" and whether the real variant is meant
func splitOpcode(opcode string) (string, bool, error) {
	switch {
	case strings.HasSuffix(opcode, "I"):
		return strings.TrimSuffix(opcode, "I"), false, nil
	case strings.HasSuffix(opcode, "F"):
		return strings.TrimSuffix(opcode, "F"), true, nil
	default:
		return "", false, fmt.Errorf("%w: %s", ErrUnknownOpcode, opcode)
	}
}

func evalBinary(opcode string, a, b Value) (Value, error) {
	base, isReal, err := splitOpcode(opcode)
	if err != nil {
		return Value{}, err
	}

	if isReal {
		x, y := a.AsFloat64(), b.AsFloat64()
		switch codegen.Operation(base) {
		case codegen.OpAdd:
			return newFloat(x + y), nil
		case codegen.OpSub:
			return newFloat(x - y), nil
		case codegen.OpMul:
			return newFloat(x * y), nil
		case codegen.OpDiv:
			if y == 0 {
				return Value{}, ErrDivisionByZero
			}
			return newFloat(x / y), nil
		case codegen.OpMod:
			if y == 0 {
				return Value{}, ErrDivisionByZero
			}
			return newFloat(math.Mod(x, y)), nil
		}

		return Value{}, fmt.Errorf("%w: %s", ErrUnknownOpcode, opcode)
	}

	x, y := a.AsInt64(), b.AsInt64()
	switch codegen.Operation(base) {
	case codegen.OpAdd:
		return newInt(x + y), nil
	case codegen.OpSub:
		return newInt(x - y), nil
	case codegen.OpMul:
		return newInt(x * y), nil
	case codegen.OpDiv:
		if y == 0 {
			return Value{}, ErrDivisionByZero
		}
		return newInt(x / y), nil
	case codegen.OpMod:
		if y == 0 {
			return Value{}, ErrDivisionByZero
		}
		return newInt(x % y), nil
	}

	return Value{}, fmt.Errorf("%w: %s", ErrUnknownOpcode, opcode)
}

func compare(opcode string, a, b Value) (bool, error) {
	base, isReal, err := splitOpcode(opcode)
	if err != nil {
		return false, err
	}

	c := cmp.Compare(a.AsInt64(), b.AsInt64())
	if isReal {
		c = cmp.Compare(a.AsFloat64(), b.AsFloat64())
	}

	switch base {
	case codegen.RelLt:
		return c < 0, nil
	case codegen.RelGt:
		return c > 0, nil
	case codegen.RelLe:
		return c <= 0, nil
	case codegen.RelGe:
		return c >= 0, nil
	case codegen.RelEq:
		return c == 0, nil
	case codegen.RelNe:
		return c != 0, nil
	}

	return false, fmt.Errorf("%w: %s", ErrUnknownOpcode, opcode)
}
