package interpreter

import (
	"fmt"
	"strconv"
	"strings"
	"tacgen/pkg/parser/codegen"
)

type opKind int

const (
	opCopy   opKind = iota // dst := a
	opCast                 // dst := I2F a
	opBinary               // dst := a OP b
	opLoad                 // dst := arr[a]
	opStore                // arr[a] := b
	opParam                // PARAM a
	opCall                 // CALL fn, n
	opIf                   // IF a REL b GOTO target
	opGoto                 // GOTO target
)

// instr is a decoded instruction
type instr struct {
	kind   opKind
	dst    string
	arr    string
	a, b   string
	opcode string // arithmetic or relational opcode, or the called routine
	argc   int
	target int
}

// decode parses the text of one instruction
func decode(ins codegen.Instruction) (instr, error) {
	f := strings.Fields(ins.Text)
	if len(f) == 0 {
		return instr{}, fmt.Errorf("instruction %d: %w", ins.Index, ErrEmptyInstruction)
	}

	switch f[0] {
	case "GOTO":
		target, err := jumpTarget(ins, f, 2)
		return instr{kind: opGoto, target: target}, err

	case "IF":
		// IF a REL b GOTO [target]
		if len(f) < 5 || f[4] != "GOTO" {
			return instr{}, malformed(ins)
		}
		target, err := jumpTarget(ins, f, 6)
		return instr{kind: opIf, a: f[1], opcode: f[2], b: f[3], target: target}, err

	case "PARAM":
		if len(f) != 2 {
			return instr{}, malformed(ins)
		}
		return instr{kind: opParam, a: f[1]}, nil

	case "CALL":
		// CALL fn, n
		if len(f) != 3 || !strings.HasSuffix(f[1], ",") {
			return instr{}, malformed(ins)
		}
		argc, err := strconv.Atoi(f[2])
		if err != nil {
			return instr{}, malformed(ins)
		}
		return instr{kind: opCall, opcode: strings.TrimSuffix(f[1], ","), argc: argc}, nil
	}

	if len(f) < 3 || f[1] != ":=" {
		return instr{}, malformed(ins)
	}

	if arr, idx, ok := splitElement(f[0]); ok {
		if len(f) != 3 {
			return instr{}, malformed(ins)
		}
		return instr{kind: opStore, arr: arr, a: idx, b: f[2]}, nil
	}

	dst := f[0]
	switch len(f) {
	case 3:
		if arr, idx, ok := splitElement(f[2]); ok {
			return instr{kind: opLoad, dst: dst, arr: arr, a: idx}, nil
		}
		return instr{kind: opCopy, dst: dst, a: f[2]}, nil

	case 4:
		if f[2] != codegen.OpI2F {
			return instr{}, malformed(ins)
		}
		return instr{kind: opCast, dst: dst, a: f[3]}, nil

	case 5:
		return instr{kind: opBinary, dst: dst, a: f[2], opcode: f[3], b: f[4]}, nil
	}

	return instr{}, malformed(ins)
}

// jumpTarget reads the label of a jump whose complete form has n fields
func jumpTarget(ins codegen.Instruction, f []string, n int) (int, error) {
	switch {
	case len(f) == n-1:
		return 0, fmt.Errorf("instruction %d: %w", ins.Index, ErrIncompleteJump)
	case len(f) != n:
		return 0, malformed(ins)
	}

	target, err := strconv.Atoi(f[n-1])
	if err != nil {
		return 0, malformed(ins)
	}

	return target, nil
}

// splitElement splits "arr[off]" into its array name and offset operand
func splitElement(s string) (string, string, bool) {
	open := strings.IndexByte(s, '[')
	if open <= 0 || !strings.HasSuffix(s, "]") {
		return "", "", false
	}

	return s[:open], s[open+1 : len(s)-1], true
}

func malformed(ins codegen.Instruction) error {
	return fmt.Errorf("instruction %d %q: %w", ins.Index, ins.Text, ErrMalformedInstruction)
}
