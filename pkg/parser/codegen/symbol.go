package codegen

import "fmt"

type Type int

const (
	Integer Type = iota
	Real
	Error
)

// ErrorName is the placeholder name of symbols that stand in for something missing
const ErrorName = "err"

// String returns the source-level name of the type
func (t Type) String() string {
	switch t {
	case Integer:
		return "int"
	case Real:
		return "float"
	case Error:
		return "error"
	default:
		return fmt.Sprintf("Type(%d)", int(t))
	}
}

// Suffix returns the opcode suffix selecting the integer or real variant of an operation
func (t Type) Suffix() string {
	if t == Real {
		return "F"
	}

	return "I"
}

// Symbol describes a declared variable, a literal or a temporary.
// Symbols are passed by value; changing a copy never affects another holder.
type Symbol struct {
	Name      string
	Type      Type
	Value     float64 // Numeric value when IsLiteral is set
	IsLiteral bool
	Size      int // Declared element count for arrays, 0 for scalars
}

// Attributes is the value threaded through every semantic action.
// Arithmetic expressions carry a Symbol; boolean expressions carry only jump lists.
type Attributes struct {
	Symbol    *Symbol
	TrueList  JumpList
	FalseList JumpList
	NextList  JumpList
	Quad      int // Captured instruction index, 0 when unset
}

// Type returns the type of the carried symbol, or Error for boolean attributes
func (a Attributes) Type() Type {
	if a.Symbol == nil {
		return Error
	}

	return a.Symbol.Type
}

// operand returns a copy of the carried symbol, or the error placeholder when there is none
func (a Attributes) operand() Symbol {
	if a.Symbol == nil {
		return Symbol{Name: ErrorName, Type: Error}
	}

	return *a.Symbol
}

// newAttributes wraps a symbol as an expression result
func newAttributes(s Symbol) Attributes {
	return Attributes{Symbol: &s}
}
