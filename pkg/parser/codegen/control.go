package codegen

import "github.com/charmbracelet/log"

// PushSwitch enters a switch statement on the variable name
func (c *Codegen) PushSwitch(name string) {
	c.switches.Push(name)
}

// PopSwitch leaves the innermost switch statement
func (c *Codegen) PopSwitch() {
	c.switches.Pop()
}

// CurrentSwitchVar returns the discriminant of the innermost switch, or ErrorName outside any switch
func (c *Codegen) CurrentSwitchVar() string {
	if c.switches.Size() == 0 {
		return ErrorName
	}

	return c.switches.Peek()
}

// CaseTest compares the innermost switch variable with a case label.
// The true list should go to the case body and the false list to the next case.
func (c *Codegen) CaseTest(label Attributes) Attributes {
	name := c.CurrentSwitchVar()
	sym, ok := c.symbols.Lookup(name)
	if !ok {
		// already reported when the switch was entered
		sym = Symbol{Name: name, Type: Error}
	}

	return c.Relational(newAttributes(sym), label, RelEq)
}

// OpenLoopLayer starts collecting breaks for a new loop or switch
func (c *Codegen) OpenLoopLayer() {
	c.breaks.Push(nil)
}

// AddBreak emits a jump out of the innermost loop or switch.
// It emits nothing and returns false when no layer is open.
func (c *Codegen) AddBreak() bool {
	if c.breaks.Size() == 0 {
		return false
	}

	j := c.EmitJump()
	c.breaks.Push(Merge(c.breaks.Pop(), MakeList(j)))
	return true
}

// CloseLoopLayer resolves the innermost layer's breaks to exit. Without an open layer it does nothing.
func (c *Codegen) CloseLoopLayer(exit int) {
	if c.breaks.Size() == 0 {
		log.Debug("close of loop layer without an open layer", "exit", exit)
		return
	}

	c.Backpatch(c.breaks.Pop(), exit)
}

// LoopDepth returns the number of open loop and switch layers
func (c *Codegen) LoopDepth() int {
	return c.breaks.Size()
}

// CloseCountedLoop emits the counter increment and the backward jump of a count-bounded loop
func (c *Codegen) CloseCountedLoop(counter, bound Symbol, header int) {
	c.Emit("%s := %s %s 1", counter.Name, counter.Name, OpAdd.Int())
	c.Emit("IF %s %s%s %s GOTO %d", counter.Name, RelLt, Integer.Suffix(), bound.Name, header)
}
