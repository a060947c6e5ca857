package codegen

// emitIncomplete emits a jump whose target is filled in later by Backpatch
func (c *Codegen) emitIncomplete(format string, args ...any) int {
	if c.recording {
		// a recorded jump is replayed verbatim and can never be backpatched
		c.addUnrolledJumpError()
	}

	return c.Emit(format, args...)
}

// EmitJump emits an unconditional jump without a target and returns its index
func (c *Codegen) EmitJump() int {
	return c.emitIncomplete("GOTO")
}

// EmitGoto emits a complete unconditional jump to label
func (c *Codegen) EmitGoto(label int) int {
	return c.Emit("GOTO %d", label)
}

// Relational emits "IF a op b GOTO" followed by "GOTO", both without targets, and
// returns them as the true and false lists. The real variant of op is used when either
// operand is Real; no casts are emitted. The result carries no symbol.
func (c *Codegen) Relational(a, b Attributes, op string) Attributes {
	x, y := a.operand(), b.operand()

	suffix := Integer.Suffix()
	if x.Type == Real || y.Type == Real {
		suffix = Real.Suffix()
	}

	jt := c.emitIncomplete("IF %s %s%s %s GOTO", x.Name, op, suffix, y.Name)
	jf := c.emitIncomplete("GOTO")

	return Attributes{
		TrueList:  MakeList(jt),
		FalseList: MakeList(jf),
	}
}

// Constant emits a jump for a boolean literal: it lands on the true list for true and on the false list for false
func (c *Codegen) Constant(value bool) Attributes {
	j := MakeList(c.EmitJump())
	if value {
		return Attributes{TrueList: j}
	}

	return Attributes{FalseList: j}
}

// And combines a and b, where quad is the index of b's first instruction
func (c *Codegen) And(a Attributes, quad int, b Attributes) Attributes {
	c.Backpatch(a.TrueList, quad)
	return Attributes{
		TrueList:  b.TrueList,
		FalseList: Merge(a.FalseList, b.FalseList),
	}
}

// Or combines a and b, where quad is the index of b's first instruction
func (c *Codegen) Or(a Attributes, quad int, b Attributes) Attributes {
	c.Backpatch(a.FalseList, quad)
	return Attributes{
		TrueList:  Merge(a.TrueList, b.TrueList),
		FalseList: b.FalseList,
	}
}

// Not swaps the true and false lists
func (c *Codegen) Not(a Attributes) Attributes {
	return Attributes{
		TrueList:  a.FalseList,
		FalseList: a.TrueList,
	}
}
