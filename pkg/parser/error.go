package parser

import (
	"fmt"
	"tacgen/pkg/color"
	"tacgen/pkg/lexer"
)

// Non-terminals that can only be left through a closing keyword
var blockClosers = map[string]string{
	"ElsePart":    "fi",
	"CaseList":    "end",
	"DefaultPart": "end",
}

// handleTerminalError is called when a terminal on the stack doesn't match current token
func (p *Parser) handleTerminalError(expected string) {
	// Heuristic: if we expected ';' but current token clearly starts a new statement,
	// closes a block, or ends input, report "Missing semicolon".
	if expected == ";" && p.isStatementBoundary(p.currentToken.Type) {
		p.addError("Missing semicolon")
		return
	}

	p.addContextualError(expected)
}

// handleNonTerminalError is called when there is no production for top non-terminal and current token
func (p *Parser) handleNonTerminalError(expected string) {
	// Empty condition: `if then` or `while do`
	if expected == "Cond" && (p.currentToken.Type == lexer.THEN || p.currentToken.Type == lexer.DO) {
		p.addError("Empty condition")
		return
	}

	// A block ran into the start of something else before its closing keyword
	if closer, ok := blockClosers[expected]; ok && p.isStatementBoundary(p.currentToken.Type) {
		p.addError(fmt.Sprintf("Missing '%s'", closer))
		return
	}

	// If parsing an expression tail and the next token begins a new statement or closes a block,
	// this is often a missing semicolon.
	if p.isExpressionTail(expected) && p.isStatementBoundary(p.currentToken.Type) {
		p.addError("Missing semicolon")
		return
	}

	p.addContextualError(expected)
}

// handleUnexpectedEndOfInput is called when the program is complete but input remains
func (p *Parser) handleUnexpectedEndOfInput() {
	p.addError(fmt.Sprintf("Unexpected %s after end of program", describe(p.currentToken)))
}

// addError records a parsing error with location
func (p *Parser) addError(msg string) {
	pos := p.currentToken.Pos
	formatted := color.RedText(msg) + " at " + color.YellowText(fmt.Sprintf("Line: %d, Column %d", pos.Line, pos.Column))
	p.errors = append(p.errors, formatted)
}

// Errors returns the list of parsing errors
func (p *Parser) Errors() []string {
	return p.errors
}

// isExpressionTail checks if the non-terminal is part of an expression
func (p *Parser) isExpressionTail(sym string) bool {
	switch sym {
	case "Expr'", "Term'", "FactorSuffix":
		return true
	default:
		return false
	}
}

// isStatementBoundary checks if a token type indicates the start of a new statement or block boundary
func (p *Parser) isStatementBoundary(t lexer.TokenType) bool {
	switch t {
	case lexer.INT, lexer.FLOAT, lexer.ID, lexer.IF, lexer.WHILE, lexer.REPEAT, lexer.UNROLL,
		lexer.SWITCH, lexer.BREAK, lexer.PRINT,
		lexer.ELSE, lexer.FI, lexer.DONE, lexer.CASE, lexer.DEFAULT, lexer.END, lexer.EOF:
		return true
	default:
		return false
	}
}

// addContextualError generates a contextual error message based on expected and current token
func (p *Parser) addContextualError(expected string) {
	p.addError(p.categorizeError(expected, p.currentToken))
}

// categorizeError provides a specific error message based on expected symbol and current token
func (p *Parser) categorizeError(expected string, current lexer.Token) string {
	if current.Type == lexer.ILLEGAL {
		return fmt.Sprintf("Illegal character %s", describe(current))
	}

	// Delimiters
	switch expected {
	case ")":
		return "Missing closing parenthesis"
	case "]":
		return "Missing closing bracket"
	case ";":
		return "Missing semicolon"
	case ":=":
		return "Missing assignment operator"
	case ":":
		return "Missing colon"
	case "then", "do", "fi", "done", "end":
		return fmt.Sprintf("Missing '%s'", expected)
	}

	// Identifiers and literals
	switch expected {
	case "id":
		if current.Type.GetCategory() == lexer.KEYWORD {
			return "Cannot use reserved keyword as identifier"
		}
		return "Expected identifier"
	case "num":
		return "Expected number"
	}

	// Expressions missing before a closing delimiter
	if (expected == "Expr" || expected == "Term" || expected == "Factor") &&
		(current.Type == lexer.SEMICOLON || current.Type == lexer.RPAREN || current.Type == lexer.RSBRACE) {
		return "Missing expression"
	}

	return fmt.Sprintf("Syntax error: unexpected %s", describe(current))
}
