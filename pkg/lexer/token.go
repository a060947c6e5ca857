package lexer

import (
	"fmt"
)

type TokenType int
type TokenCategory int

// Position locates a token in the source
type Position struct {
	Line   int
	Column int
	Offset int
}

// String returns "line:column"
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

type Token struct {
	Type   TokenType // Type of the token
	Lexeme string    // Actual string from source code
	Pos    Position  // Position in source code
}

// NewToken creates a new Token instance
func NewToken(tokenType TokenType, lexeme string, pos Position) Token {
	return Token{
		Type:   tokenType,
		Lexeme: lexeme,
		Pos:    pos,
	}
}

const (
	NONE TokenCategory = iota
	KEYWORD
	IDENTIFIER
	LITERAL
	OPERATOR
	DELIMITER
)

const (
	EOF TokenType = iota // End of file

	INT     // int
	FLOAT   // float
	IF      // if
	THEN    // then
	ELSE    // else
	FI      // fi
	WHILE   // while
	DO      // do
	DONE    // done
	REPEAT  // repeat
	UNROLL  // unroll
	SWITCH  // switch
	CASE    // case
	DEFAULT // default
	END     // end
	BREAK   // break
	PRINT   // print
	AND     // and
	OR      // or
	NOT     // not
	TRUE    // true
	FALSE   // false

	ID  // id (identifier)
	NUM // num (number)

	ASSIGN // :=
	PLUS   // +
	MINUS  // -
	MULT   // *
	DIV    // /
	MOD    // %
	LT     // <
	GT     // >
	LE     // <=
	GE     // >=
	EQ     // =
	NE     // <>

	SEMICOLON // ;
	COLON     // :
	LPAREN    // (
	RPAREN    // )
	LSBRACE   // [
	RSBRACE   // ]

	ILLEGAL // illegal token
)

var Keywords = map[string]TokenType{
	"int":     INT,
	"float":   FLOAT,
	"if":      IF,
	"then":    THEN,
	"else":    ELSE,
	"fi":      FI,
	"while":   WHILE,
	"do":      DO,
	"done":    DONE,
	"repeat":  REPEAT,
	"unroll":  UNROLL,
	"switch":  SWITCH,
	"case":    CASE,
	"default": DEFAULT,
	"end":     END,
	"break":   BREAK,
	"print":   PRINT,
	"and":     AND,
	"or":      OR,
	"not":     NOT,
	"true":    TRUE,
	"false":   FALSE,
}

var symbols = map[TokenType]string{
	ID:        "id",
	NUM:       "num",
	ASSIGN:    ":=",
	PLUS:      "+",
	MINUS:     "-",
	MULT:      "*",
	DIV:       "/",
	MOD:       "%",
	LT:        "<",
	GT:        ">",
	LE:        "<=",
	GE:        ">=",
	EQ:        "=",
	NE:        "<>",
	SEMICOLON: ";",
	COLON:     ":",
	LPAREN:    "(",
	RPAREN:    ")",
	LSBRACE:   "[",
	RSBRACE:   "]",
	EOF:       "$",
}

// TokenToString converts a TokenType to the grammar symbol it matches
func (t Token) TokenToString() (string, bool) {
	if str, ok := symbols[t.Type]; ok {
		return str, true
	}

	for word, tt := range Keywords {
		if tt == t.Type {
			return word, true
		}
	}

	return "", false
}

// String returns a string representation of the Token
func (t Token) String() string {
	return fmt.Sprintf("T_{%s, %q, %s}", t.Type, t.Lexeme, t.Pos)
}

// String returns a string representation of the TokenType
func (t TokenType) String() string {
	if str, ok := (Token{Type: t}).TokenToString(); ok {
		return str
	}

	if t == ILLEGAL {
		return "illegal"
	}

	return fmt.Sprintf("UNKNOWN(%d)", int(t))
}

// GetCategory returns the category of the token
func (t TokenType) GetCategory() TokenCategory {
	switch {
	case t >= INT && t <= FALSE:
		return KEYWORD
	case t == ID:
		return IDENTIFIER
	case t == NUM:
		return LITERAL
	case t >= ASSIGN && t <= NE:
		return OPERATOR
	case t >= SEMICOLON && t <= RSBRACE:
		return DELIMITER
	default:
		return NONE
	}
}

// IsKeyword checks if the given identifier is a keyword and returns its TokenType if it is
func IsKeyword(identifier string) (TokenType, bool) {
	tokenType, ok := Keywords[identifier]
	return tokenType, ok
}
