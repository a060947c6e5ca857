package parser

import (
	"tacgen/pkg/lexer"
	"tacgen/pkg/parser/codegen"
	"tacgen/pkg/parser/stack"
)

type Parser struct {
	stack        *stack.Stack[string]             // LL(1) parsing stack
	semantic     *stack.Stack[codegen.Attributes] // semantic values of the actions
	names        *stack.Stack[string]             // captured lexemes (types, names, sizes, counts)
	relops       *stack.Stack[string]             // pending relational operators
	lexer        *lexer.Lexer                     // lexer instance
	cg           *codegen.Codegen                 // code generator instance
	currentToken lexer.Token                      // current token
	prevToken    lexer.Token                      // last matched token
	table        ParsingTable                     // LL(1) parsing table
	unrollDepth  int                              // open unroll statements
	errors       []string                         // list of errors
}

// NewParser creates a new parser instance. The options configure the code generator.
func NewParser(l *lexer.Lexer, opts ...codegen.Option) *Parser {
	p := &Parser{
		lexer:    l,
		cg:       codegen.NewCodegen(opts...),
		table:    NewParsingTable(),
		stack:    stack.NewStack("$", "Program"), // Program is start state and $ is bottom of the stack
		semantic: stack.NewStack[codegen.Attributes](),
		names:    stack.NewStack[string](),
		relops:   stack.NewStack[string](),
		errors:   []string{},
	}

	// Initialize current token
	p.nextToken()

	return p
}

// Parse parses the whole input, running the semantic actions as their markers are reached.
// Parsing stops at the first syntax error. The returned error is non-nil only when code
// generation hit a resource limit; syntax and semantic errors are reported by Errors and
// SemanticErrors.
func (p *Parser) Parse() (err error) {
	defer codegen.Recover(&err)

	for p.stack.Size() > 1 { // While stack is not empty (only $ remains)
		top := p.stack.Pop()

		if p.isTerminal(top) {
			// Check if this is a semantic action
			if p.isSemanticAction(top) {
				p.executeAction(top)
			} else if p.matchTerminal(top) {
				p.cg.SetCurrentToken(p.currentToken)
				p.prevToken = p.currentToken
				p.nextToken()
			} else {
				p.handleTerminalError(top)
				return nil
			}
		} else {
			// Non-terminal: pick production from table
			production, ok := p.table[top][p.currentToken.Type]
			if !ok {
				p.handleNonTerminalError(top)
				return nil
			}

			rhsLength := len(production.RHS)
			// If production is ε, do not push anything
			if rhsLength == 0 || (rhsLength == 1 && production.RHS[0] == "ε") {
				continue
			}

			// Push RHS of production onto stack in reverse order (so first symbol is on top)
			for i := rhsLength - 1; i >= 0; i-- {
				if production.RHS[i] != "ε" {
					p.stack.Push(production.RHS[i])
				}
			}
		}
	}

	if p.currentToken.Type != lexer.EOF {
		p.handleUnexpectedEndOfInput()
	}

	return nil
}

// nextToken advances to the next token from the lexer
func (p *Parser) nextToken() {
	p.currentToken = p.lexer.NextToken()
}

// Program returns the generated three-address code
func (p *Parser) Program() []codegen.Instruction {
	return p.cg.Program()
}

// SemanticErrors returns the list of semantic errors
func (p *Parser) SemanticErrors() []string {
	return p.cg.Errors()
}

// Codegen returns the code generator instance
func (p *Parser) Codegen() *codegen.Codegen {
	return p.cg
}
