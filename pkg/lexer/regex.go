package lexer

import (
	"regexp"
)

type tokenRegex struct {
	Pattern *regexp.Regexp
	Raw     string
}

// Token regex patterns; keyword patterns are added in init from Keywords
var tokenRegexes = map[TokenType]tokenRegex{
	LE:     newTokenRegex(`^<=`),
	GE:     newTokenRegex(`^>=`),
	NE:     newTokenRegex(`^<>`),
	ASSIGN: newTokenRegex(`^:=`),

	PLUS:  newTokenRegex(`^\+`),
	MINUS: newTokenRegex(`^-`),
	MULT:  newTokenRegex(`^\*`),
	DIV:   newTokenRegex(`^/`),
	MOD:   newTokenRegex(`^%`),
	LT:    newTokenRegex(`^<`),
	GT:    newTokenRegex(`^>`),
	EQ:    newTokenRegex(`^=`),

	SEMICOLON: newTokenRegex(`^;`),
	COLON:     newTokenRegex(`^:`),
	LPAREN:    newTokenRegex(`^\(`),
	RPAREN:    newTokenRegex(`^\)`),
	LSBRACE:   newTokenRegex(`^\[`),
	RSBRACE:   newTokenRegex(`^\]`),

	NUM: newTokenRegex(`^\d+(\.\d+)?([eE][+-]?\d+)?`),
	ID:  newTokenRegex(`^[a-zA-Z][a-zA-Z0-9_]*`),
}

var (
	whitespaceRegex = regexp.MustCompile(`^\s+`)
	commentRegex    = regexp.MustCompile(`^//.*`)
)

// Token precedence order for matching (keywords, then longer operators first)
var tokenPrecedenceOrder = []TokenType{
	INT, FLOAT, IF, THEN, ELSE, FI, WHILE, DO, DONE, REPEAT, UNROLL, SWITCH,
	CASE, DEFAULT, END, BREAK, PRINT, AND, OR, NOT, TRUE, FALSE,
	LE, GE, NE, ASSIGN, PLUS, MINUS, MULT, DIV, MOD, LT, GT, EQ,
	SEMICOLON, COLON, LPAREN, RPAREN, LSBRACE, RSBRACE, NUM, ID,
}

func init() {
	for word, tokenType := range Keywords {
		tokenRegexes[tokenType] = newTokenRegex(`^` + word + `\b`)
	}
}

func newTokenRegex(raw string) tokenRegex {
	return tokenRegex{Pattern: regexp.MustCompile(raw), Raw: raw}
}

// Get the regex pattern for a token type
func (t TokenType) Regex() *regexp.Regexp {
	if regex, ok := tokenRegexes[t]; ok {
		return regex.Pattern
	}

	return nil
}

// Get the raw regex string for a token type
func (t TokenType) RawRegex() string {
	if regex, ok := tokenRegexes[t]; ok {
		return regex.Raw
	}

	return ""
}

// Match the first token at the start of the string. Whitespace and comments match as EOF with a non-empty lexeme.
func MatchToken(s string) (TokenType, string, bool) {
	if s == "" {
		return EOF, "", false
	} else if match := whitespaceRegex.FindString(s); match != "" {
		return EOF, match, true
	} else if match := commentRegex.FindString(s); match != "" {
		return EOF, match, true
	}

	for _, tokenType := range tokenPrecedenceOrder {
		if regex, ok := tokenRegexes[tokenType]; ok {
			if match := regex.Pattern.FindString(s); match != "" {
				return tokenType, match, true
			}
		}
	}

	return ILLEGAL, string(s[0]), false
}

// Check if a byte is a digit
func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
