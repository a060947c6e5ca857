package parser

import (
	"fmt"
	"math"
	"strings"
	"tacgen/pkg/lexer"
	"tacgen/pkg/parser/codegen"

	"github.com/charmbracelet/log"
)

var relOpCodes = map[lexer.TokenType]string{
	lexer.LT: codegen.RelLt,
	lexer.GT: codegen.RelGt,
	lexer.LE: codegen.RelLe,
	lexer.GE: codegen.RelGe,
	lexer.EQ: codegen.RelEq,
	lexer.NE: codegen.RelNe,
}

// executeAction runs the semantic action named by a grammar marker
func (p *Parser) executeAction(action string) {
	log.Debug("action", "name", action, "token", p.prevToken.Lexeme)

	switch action {
	// Captures
	case "@capture_type", "@capture_name":
		p.names.Push(p.prevToken.Lexeme)
	case "@capture_size", "@capture_count":
		p.semantic.Push(p.literal())

	// Declarations
	case "@declare":
		name := p.names.Pop()
		p.cg.Declare(typeOf(p.names.Pop()), name)
	case "@declare_array":
		size := p.semantic.Pop()
		name := p.names.Pop()
		t := typeOf(p.names.Pop())

		n, ok := count(size)
		if !ok {
			p.cg.AddSemanticError(fmt.Sprintf("Array size must be a positive integer, got %s", symbolOf(size).Name))
		}
		p.cg.DeclareArray(t, name, n)

	// Expressions
	case "@literal":
		p.semantic.Push(p.literal())
	case "@load":
		p.semantic.Push(p.cg.Lookup(p.names.Pop()))
	case "@array_read":
		index := p.semantic.Pop()
		name := p.names.Pop()
		p.cg.Lookup(name)
		p.semantic.Push(p.cg.ArrayRead(name, index))
	case "@add":
		p.binary(codegen.OpAdd)
	case "@sub":
		p.binary(codegen.OpSub)
	case "@mul":
		p.binary(codegen.OpMul)
	case "@div":
		p.binary(codegen.OpDiv)
	case "@mod":
		p.binary(codegen.OpMod)

	// Simple statements
	case "@assign":
		value := p.semantic.Pop()
		dest := p.cg.Lookup(p.names.Pop())
		p.cg.Assign(symbolOf(dest), value)
	case "@assign_array":
		value := p.semantic.Pop()
		index := p.semantic.Pop()
		name := p.names.Pop()
		p.cg.Lookup(name)
		p.cg.ArrayWrite(name, index, value)
	case "@print":
		p.cg.Print(p.semantic.Pop())
	case "@break":
		if !p.cg.AddBreak() {
			p.cg.AddSemanticError("Break outside of a loop or switch")
		}

	// Conditions
	case "@push_relop":
		p.relops.Push(relOpCodes[p.prevToken.Type])
	case "@rel":
		b := p.semantic.Pop()
		a := p.semantic.Pop()
		p.semantic.Push(p.cg.Relational(a, b, p.relops.Pop()))
	case "@true":
		p.semantic.Push(p.cg.Constant(true))
	case "@false":
		p.semantic.Push(p.cg.Constant(false))
	case "@and":
		b, m, a := p.semantic.Pop(), p.semantic.Pop(), p.semantic.Pop()
		p.semantic.Push(p.cg.And(a, m.Quad, b))
	case "@or":
		b, m, a := p.semantic.Pop(), p.semantic.Pop(), p.semantic.Pop()
		p.semantic.Push(p.cg.Or(a, m.Quad, b))
	case "@not":
		p.semantic.Push(p.cg.Not(p.semantic.Pop()))

	// Markers
	case "@mark":
		p.semantic.Push(codegen.Attributes{Quad: p.cg.CurrentIndex()})
	case "@jump":
		p.semantic.Push(codegen.Attributes{NextList: codegen.MakeList(p.cg.EmitJump())})

	// if
	case "@if_then":
		m, b := p.semantic.Pop(), p.semantic.Pop()
		p.cg.Backpatch(b.TrueList, m.Quad)
		p.cg.Backpatch(b.FalseList, p.cg.CurrentIndex())
	case "@if_else":
		m2, n, m1, b := p.semantic.Pop(), p.semantic.Pop(), p.semantic.Pop(), p.semantic.Pop()
		p.cg.Backpatch(b.TrueList, m1.Quad)
		p.cg.Backpatch(b.FalseList, m2.Quad)
		p.cg.Backpatch(n.NextList, p.cg.CurrentIndex())

	// while
	case "@open_loop":
		p.cg.OpenLoopLayer()
	case "@while":
		m2, b, m1 := p.semantic.Pop(), p.semantic.Pop(), p.semantic.Pop()
		p.cg.Backpatch(b.TrueList, m2.Quad)
		p.cg.EmitGoto(m1.Quad)
		p.cg.Backpatch(b.FalseList, p.cg.CurrentIndex())
		p.cg.CloseLoopLayer(p.cg.CurrentIndex())

	// repeat
	case "@repeat_start":
		p.repeatStart()
	case "@repeat_end":
		m, counter, bound := p.semantic.Pop(), p.semantic.Pop(), p.semantic.Pop()
		p.cg.CloseCountedLoop(symbolOf(counter), symbolOf(bound), m.Quad)
		p.cg.CloseLoopLayer(p.cg.CurrentIndex())

	// unroll
	case "@record":
		if p.unrollDepth > 0 {
			p.cg.AddSemanticError("Nested unroll is not supported")
		} else {
			p.cg.StartRecording()
		}
		p.unrollDepth++
	case "@unroll":
		p.unroll()

	// switch
	case "@switch_start":
		name := p.prevToken.Lexeme
		p.cg.Lookup(name)
		p.cg.PushSwitch(name)
		p.cg.OpenLoopLayer()
	case "@case_label":
		p.semantic.Push(p.literal())
	case "@case_test":
		rel := p.cg.CaseTest(p.semantic.Pop())
		p.cg.Backpatch(rel.TrueList, p.cg.CurrentIndex())
		p.semantic.Push(codegen.Attributes{FalseList: rel.FalseList})
	case "@case_end":
		c := p.semantic.Pop()
		// cases never fall through
		p.cg.AddBreak()
		p.cg.Backpatch(c.FalseList, p.cg.CurrentIndex())
	case "@switch_end":
		p.cg.PopSwitch()
		p.cg.CloseLoopLayer(p.cg.CurrentIndex())

	default:
		log.Error("Unknown semantic action", "action", action)
	}
}

func (p *Parser) binary(op codegen.Operation) {
	b := p.semantic.Pop()
	a := p.semantic.Pop()
	p.semantic.Push(p.cg.BinaryOp(a, b, op.Int(), op.Real()))
}

// literal wraps the last matched number
func (p *Parser) literal() codegen.Attributes {
	lexeme := p.prevToken.Lexeme
	if strings.ContainsAny(lexeme, ".eE") {
		return p.cg.Literal(lexeme, codegen.Real)
	}

	return p.cg.Literal(lexeme, codegen.Integer)
}

// repeatStart evaluates the bound once, zeroes a fresh counter and opens the loop body.
// The body runs at least once; the test sits at its end.
func (p *Parser) repeatStart() {
	bound := p.semantic.Pop()
	if bound.Type() == codegen.Real {
		p.cg.AddSemanticError("Repeat count must be an integer")
	}
	if p.cg.Recording() {
		// the backward jump would be replayed with a stale target
		p.cg.AddSemanticError("Control flow is not allowed inside an unrolled body")
	}

	counter := p.cg.NewTemporarySymbol(codegen.Integer)
	p.cg.Assign(symbolOf(counter), p.cg.Literal("0", codegen.Integer))
	p.cg.OpenLoopLayer()

	p.semantic.Push(bound)
	p.semantic.Push(counter)
	p.semantic.Push(codegen.Attributes{Quad: p.cg.CurrentIndex()})
}

// unroll replays the recorded body count times
func (p *Parser) unroll() {
	p.unrollDepth--
	times := p.semantic.Pop()
	if p.unrollDepth > 0 {
		// inner body already went into the enclosing recording
		return
	}

	block := p.cg.StopRecording()

	n, ok := count(times)
	if !ok {
		p.cg.AddSemanticError(fmt.Sprintf("Unroll count must be a positive integer, got %s", symbolOf(times).Name))
		return
	}

	for range n {
		p.cg.EmitBlock(block)
	}
}

// count returns the value of a positive integral Integer literal
func count(a codegen.Attributes) (int, bool) {
	s := symbolOf(a)
	if !s.IsLiteral || s.Type != codegen.Integer || s.Value < 1 || s.Value != math.Trunc(s.Value) {
		return 0, false
	}

	return int(s.Value), true
}

func typeOf(name string) codegen.Type {
	if name == "float" {
		return codegen.Real
	}

	return codegen.Integer
}

// symbolOf returns the symbol an expression carries, or the error placeholder
func symbolOf(a codegen.Attributes) codegen.Symbol {
	if a.Symbol == nil {
		return codegen.Symbol{Name: codegen.ErrorName, Type: codegen.Error}
	}

	return *a.Symbol
}
