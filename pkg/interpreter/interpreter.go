package interpreter

import (
	"errors"
	"fmt"
	"io"
	"os"
	"tacgen/pkg/parser/codegen"

	"github.com/charmbracelet/log"
)

// Interpreter executes a three-address code listing produced by codegen
type Interpreter struct {
	pb   []codegen.Instruction // program block (list of instructions)
	code []instr               // decoded program block, filled on the first step
	pos  map[int]int           // instruction index -> position in code
	ip   int                   // index of the next instruction

	vars   map[string]Value           // scalar variables and temporaries
	cells  map[string]map[int64]Value // array name -> byte offset -> value
	params []Value                    // staged call parameters

	out io.Writer // output writer for PUTI and PUTF

	maxSteps int // maximum steps (0 = unlimited)
	steps    int // steps executed
}

type Option func(*Interpreter)

// WithWriter sets the output writer for print statements
func WithWriter(w io.Writer) Option {
	return func(i *Interpreter) { i.out = w }
}

// WithMaxSteps sets a maximum number of interpreter steps before returning ErrMaxStepsExceeded
func WithMaxSteps(n int) Option {
	return func(i *Interpreter) { i.maxSteps = n }
}

// NewInterpreter creates a new Interpreter instance
func NewInterpreter(pb []codegen.Instruction, opts ...Option) *Interpreter {
	it := &Interpreter{
		out:      os.Stdout,
		maxSteps: 0, // 0 => unlimited
	}

	for _, o := range opts {
		o(it)
	}

	it.Load(pb)
	return it
}

// Load replaces the current program block with a new one, resetting state
func (i *Interpreter) Load(pb []codegen.Instruction) {
	i.pb = append([]codegen.Instruction(nil), pb...)
	i.code = nil
	i.Reset()
}

// Reset clears runtime state (variables, parameters, IP, counters)
func (i *Interpreter) Reset() {
	i.ip = 1
	if len(i.pb) > 0 {
		i.ip = i.pb[0].Index
	}

	i.vars = make(map[string]Value)
	i.cells = make(map[string]map[int64]Value)
	i.params = i.params[:0]
	i.steps = 0
}

// Program returns the active PB
func (i *Interpreter) Program() []codegen.Instruction {
	return i.pb
}

// Var returns the current value of a scalar variable or temporary
func (i *Interpreter) Var(name string) (Value, bool) {
	v, ok := i.vars[name]
	return v, ok
}

// Steps returns the number of instructions executed so far
func (i *Interpreter) Steps() int {
	return i.steps
}

// Step executes a single instruction, returning (halted, error)
func (i *Interpreter) Step() (bool, error) {
	if i.code == nil {
		if err := i.decodeProgram(); err != nil {
			return false, err
		}
	}

	n, ok := i.pos[i.ip]
	if !ok {
		// decodeProgram leaves only one target outside the program: just past its end
		return true, nil
	}

	if i.maxSteps > 0 && i.steps >= i.maxSteps {
		return false, ErrMaxStepsExceeded
	}

	i.steps++
	return false, i.exec(n)
}

// Run executes until halt or error
func (i *Interpreter) Run() error {
	for {
		halted, err := i.Step()
		if err != nil {
			return err
		}

		if halted {
			log.Debug("program halted", "steps", i.steps)
			return nil
		}
	}
}

// decodeProgram decodes every instruction and indexes the jump targets
func (i *Interpreter) decodeProgram() error {
	code := make([]instr, 0, len(i.pb))
	pos := make(map[int]int, len(i.pb))

	for n, ins := range i.pb {
		d, err := decode(ins)
		if err != nil {
			return err
		}

		code = append(code, d)
		pos[ins.Index] = n
	}

	// a jump just past the last instruction halts
	end := 1
	if len(i.pb) > 0 {
		end = i.pb[len(i.pb)-1].Index + 1
	}
	for n, d := range code {
		if d.kind != opIf && d.kind != opGoto {
			continue
		}

		if _, ok := pos[d.target]; !ok && d.target != end {
			return fmt.Errorf("instruction %d: %w %d", i.pb[n].Index, ErrBadJumpTarget, d.target)
		}
	}

	i.code, i.pos = code, pos
	return nil
}

var (
	ErrMaxStepsExceeded     = errors.New("maximum steps exceeded")
	ErrEmptyInstruction     = errors.New("empty instruction")
	ErrMalformedInstruction = errors.New("malformed instruction")
	ErrIncompleteJump       = errors.New("jump without a target")
	ErrBadJumpTarget        = errors.New("jump to unknown instruction")
	ErrUnknownOpcode        = errors.New("unknown opcode")
	ErrUnknownCall          = errors.New("unknown call")
	ErrDivisionByZero       = errors.New("division by zero")
	ErrMissingParam         = errors.New("call without enough parameters")
)
