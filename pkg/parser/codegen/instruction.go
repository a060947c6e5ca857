package codegen

import (
	"fmt"
)

type Operation string

// Arithmetic operation families; the I/F suffix picks the integer or real variant
const (
	OpAdd Operation = "ADD"
	OpSub Operation = "SUB"
	OpMul Operation = "MUL"
	OpDiv Operation = "DIV"
	OpMod Operation = "MOD"
)

// Relational operators
const (
	RelLt = "LT"
	RelGt = "GT"
	RelLe = "LE"
	RelGe = "GE"
	RelEq = "EQ"
	RelNe = "NE"
)

// Conversion and output opcodes
const (
	OpI2F    = "I2F"
	CallPutI = "PUTI"
	CallPutF = "PUTF"
)

// Int returns the integer opcode of the family
func (o Operation) Int() string {
	return string(o) + Integer.Suffix()
}

// Real returns the real opcode of the family
func (o Operation) Real() string {
	return string(o) + Real.Suffix()
}

// Instruction is one numbered line of three-address code
type Instruction struct {
	Index int
	Text  string
}

// String returns the listing form "<index>: <text>"
func (i Instruction) String() string {
	return fmt.Sprintf("%d: %s", i.Index, i.Text)
}
