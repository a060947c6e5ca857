package codegen

import (
	"strings"
	"tacgen/pkg/lexer"
	"tacgen/pkg/parser/stack"
	"tacgen/pkg/symtab"
)

// ElementSize is the byte width of one array element
const ElementSize = 4

// Limits are the resource ceilings of one compilation. Exceeding either is fatal.
type Limits struct {
	MaxInstructions int // most instructions the store may hold
	MaxRecording    int // most bytes the unrolling recorder may buffer
}

// DefaultLimits returns the ceilings used when nothing else is configured
func DefaultLimits() Limits {
	return Limits{
		MaxInstructions: 10000,
		MaxRecording:    4096,
	}
}

// SymbolTable is the storage the codegen declares names in and resolves them from
type SymbolTable interface {
	Lookup(name string) (Symbol, bool)
	Insert(name string, sym Symbol) bool
}

// Codegen is the state of one compilation: instruction store, counters, control-flow stacks and recorder.
// It must not be reused across compilations.
type Codegen struct {
	pb           []Instruction          // Program block; pb[i-1] holds index i
	next         int                    // Index the next emitted instruction receives
	finalized    bool                   // Set once Finalize has released the store
	tempCounter  int                    // Temporary variable counter
	symbols      SymbolTable            // Declared variables
	switches     *stack.Stack[string]   // Discriminants of the enclosing switch statements
	breaks       *stack.Stack[JumpList] // Pending break jumps, one layer per loop or switch
	recording    bool                   // Emission goes to recorded instead of pb
	recorded     strings.Builder        // Instruction text captured for unrolling
	limits       Limits                 // Resource ceilings
	currentToken lexer.Token            // Token the parser matched last, for diagnostics
	errors       []string               // List of semantic errors
}

type Option func(*Codegen)

// WithSymbolTable replaces the default in-memory symbol table
func WithSymbolTable(t SymbolTable) Option {
	return func(c *Codegen) { c.symbols = t }
}

// WithLimits sets the resource ceilings
func WithLimits(l Limits) Option {
	return func(c *Codegen) { c.limits = l }
}

// NewCodegen creates a new Codegen instance
func NewCodegen(opts ...Option) *Codegen {
	c := &Codegen{
		pb:          make([]Instruction, 0, 64),
		next:        1,
		tempCounter: 1,
		symbols:     symtab.New[Symbol](),
		switches:    stack.NewStack[string](),
		breaks:      stack.NewStack[JumpList](),
		limits:      DefaultLimits(),
	}

	for _, o := range opts {
		o(c)
	}

	return c
}

// SetCurrentToken sets the token diagnostics are reported against
func (c *Codegen) SetCurrentToken(token lexer.Token) {
	c.currentToken = token
}

// Symbols returns the symbol table in use
func (c *Codegen) Symbols() SymbolTable {
	return c.symbols
}

// Limits returns the resource ceilings in use
func (c *Codegen) Limits() Limits {
	return c.limits
}
