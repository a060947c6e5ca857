package codegen

import (
	"errors"
	"fmt"
	"tacgen/pkg/color"

	"github.com/charmbracelet/log"
)

var (
	ErrInstructionLimit = errors.New("instruction limit exceeded")
	ErrRecordingLimit   = errors.New("recording buffer limit exceeded")
)

// FatalError aborts the whole compilation. It is raised as a panic by the codegen and turned back into an error by Recover.
type FatalError struct {
	Err   error
	Limit int
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("%v (limit %d)", e.Err, e.Limit)
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// fatal unwinds the compilation; nothing emitted after a resource ceiling is reached can be trusted
func (c *Codegen) fatal(err error, limit int) {
	log.Error("Fatal code generation error", "error", err, "limit", limit)
	panic(&FatalError{Err: err, Limit: limit})
}

// Recover stores a pending *FatalError in errp. Any other panic is re-raised.
// It must be called directly by a deferred statement.
func Recover(errp *error) {
	r := recover()
	if r == nil {
		return
	}

	if fe, ok := r.(*FatalError); ok {
		*errp = fe
		return
	}

	panic(r)
}

func (c *Codegen) addError(e string) {
	log.Warn("Semantic error", "error", color.Strip(e))
	c.errors = append(c.errors, e)
}

func (c *Codegen) location() string {
	pos := c.currentToken.Pos
	return " at " + color.YellowText(fmt.Sprintf("Line: %d, Column %d", pos.Line, pos.Column))
}

func (c *Codegen) addUndefinedVariableError(varName string) {
	c.addError(color.RedText("Undefined variable") + " `" + color.BlueText(varName) + "`" + c.location())
}

func (c *Codegen) addRedeclarationError(varName string) {
	c.addError(color.RedText("Redeclaration of variable") + " `" + color.BlueText(varName) + "`" + c.location())
}

func (c *Codegen) addUnrolledJumpError() {
	c.addError(color.RedText("Control flow is not allowed inside an unrolled body") + c.location())
}

// AddSemanticError records a diagnostic raised by the driving parser
func (c *Codegen) AddSemanticError(msg string) {
	c.addError(color.RedText(msg) + c.location())
}

// Errors returns the semantic errors recorded so far
func (c *Codegen) Errors() []string {
	return c.errors
}
