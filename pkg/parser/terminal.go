package parser

import (
	"strings"
	"tacgen/pkg/lexer"
)

var terminals = map[string]bool{
	"int": true, "float": true,
	"if": true, "then": true, "else": true, "fi": true,
	"while": true, "do": true, "done": true, "repeat": true, "unroll": true,
	"switch": true, "case": true, "default": true, "end": true, "break": true, "print": true,
	"and": true, "or": true, "not": true, "true": true, "false": true,
	":=": true, "+": true, "-": true, "*": true, "/": true, "%": true,
	"<": true, ">": true, "<=": true, ">=": true, "=": true, "<>": true,
	";": true, ":": true, "(": true, ")": true, "[": true, "]": true,
	"id": true, "num": true, "$": true,
}

// isTerminal checks if a symbol is a terminal
func (p *Parser) isTerminal(symbol string) bool {
	// Semantic actions are considered terminals
	if strings.HasPrefix(symbol, "@") {
		return true
	}

	return terminals[symbol]
}

// matchTerminal checks if the current token matches the expected terminal
func (p *Parser) matchTerminal(expected string) bool {
	sym, ok := p.currentToken.TokenToString()
	return ok && sym == expected
}

// isSemanticAction checks if a symbol is a semantic action
func (p *Parser) isSemanticAction(symbol string) bool {
	return strings.HasPrefix(symbol, "@")
}

// describe returns how a token appears in diagnostics
func describe(t lexer.Token) string {
	if t.Type == lexer.EOF {
		return "end of input"
	}

	return "'" + t.Lexeme + "'"
}
