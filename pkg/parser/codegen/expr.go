package codegen

import "github.com/charmbracelet/log"

// BinaryOp emits res := A op B. If either operand is Real the result is Real, every
// Integer operand is first converted with I2F into a fresh temporary, and realOp is used;
// otherwise the result is Integer and intOp is used. The caller's attributes are not modified.
func (c *Codegen) BinaryOp(a, b Attributes, intOp, realOp string) Attributes {
	res := c.NewTemporary()
	x, y := a.operand(), b.operand()

	resultType, op := Integer, intOp
	if x.Type == Real || y.Type == Real {
		resultType, op = Real, realOp
		x = c.promote(x)
		y = c.promote(y)
	}

	c.Emit("%s := %s %s %s", res, x.Name, op, y.Name)
	return newAttributes(Symbol{Name: res, Type: resultType})
}

// promote returns s unchanged unless it is Integer, in which case it emits a cast and returns the cast temporary
func (c *Codegen) promote(s Symbol) Symbol {
	if s.Type != Integer {
		return s
	}

	tmp := c.NewTemporary()
	c.Emit("%s := %s %s", tmp, OpI2F, s.Name)
	return Symbol{Name: tmp, Type: Real}
}

// Assign emits dest := value, converting an Integer value for a Real destination.
// A Real destination therefore never receives an Integer operand directly: the listing
// carries "tmp := I2F src" followed by "dest := tmp" where a plain copy would otherwise appear.
func (c *Codegen) Assign(dest Symbol, value Attributes) {
	if value.Symbol == nil {
		log.Error("Assignment of a value-less expression", "dest", dest.Name)
		return
	}

	src := *value.Symbol
	if dest.Type == Real {
		src = c.promote(src)
	}

	c.Emit("%s := %s", dest.Name, src.Name)
}

// offset emits off := index MULI ElementSize and returns off
func (c *Codegen) offset(index Attributes) string {
	off := c.NewTemporary()
	c.Emit("%s := %s %s %d", off, index.operand().Name, OpMul.Int(), ElementSize)
	return off
}

// ArrayRead emits res := name[offset]. The result is typed Integer whatever the array's element type.
func (c *Codegen) ArrayRead(name string, index Attributes) Attributes {
	off := c.offset(index)
	res := c.NewTemporary()
	c.Emit("%s := %s[%s]", res, name, off)
	return newAttributes(Symbol{Name: res, Type: Integer})
}

// ArrayWrite emits name[offset] := value
func (c *Codegen) ArrayWrite(name string, index, value Attributes) {
	off := c.offset(index)
	c.Emit("%s[%s] := %s", name, off, value.operand().Name)
}

// Print emits the value as a call parameter followed by the integer or real output call
func (c *Codegen) Print(value Attributes) {
	v := value.operand()
	c.Emit("PARAM %s", v.Name)

	call := CallPutI
	if v.Type == Real {
		call = CallPutF
	}
	c.Emit("CALL %s, 1", call)
}
