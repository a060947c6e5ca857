package codegen

import (
	"fmt"
	"strconv"
)

// NewTemporary returns a fresh temporary name. The '$' prefix keeps temporaries apart from source identifiers.
func (c *Codegen) NewTemporary() string {
	name := fmt.Sprintf("$t%02d", c.tempCounter)
	c.tempCounter++
	return name
}

// NewTemporarySymbol returns a fresh temporary of type t wrapped as an expression
func (c *Codegen) NewTemporarySymbol(t Type) Attributes {
	return newAttributes(Symbol{Name: c.NewTemporary(), Type: t})
}

// Literal wraps a literal as an expression. It emits nothing.
func (c *Codegen) Literal(value string, t Type) Attributes {
	s := Symbol{Name: value, Type: t}
	if v, err := strconv.ParseFloat(value, 64); err == nil {
		s.Value = v
		s.IsLiteral = true
	}

	return newAttributes(s)
}

// Lookup resolves a declared variable. An undeclared name is reported and replaced by an error-typed placeholder.
func (c *Codegen) Lookup(name string) Attributes {
	sym, ok := c.symbols.Lookup(name)
	if !ok {
		c.addUndefinedVariableError(name)
		return c.Literal(ErrorName, Error)
	}

	return newAttributes(sym)
}

// Declare registers a scalar variable. A duplicate is reported and the first declaration kept.
func (c *Codegen) Declare(t Type, name string) {
	c.declare(Symbol{Name: name, Type: t})
}

// DeclareArray registers an array of size elements of type t
func (c *Codegen) DeclareArray(t Type, name string, size int) {
	c.declare(Symbol{Name: name, Type: t, Size: size})
}

func (c *Codegen) declare(sym Symbol) {
	if !c.symbols.Insert(sym.Name, sym) {
		c.addRedeclarationError(sym.Name)
	}
}
