package lexer

type Lexer struct {
	input        string // input string to be tokenized
	length       int    // length of the input string
	position     int    // current position in the input string
	line         int    // current line number for error reporting
	column       int    // current column number for error reporting
	currentToken Token  // last token produced (decides whether '-' starts a negative literal)
}

// Create a new lexer instance
func NewLexer(s string) *Lexer {
	return &Lexer{
		input:        s,
		length:       len(s),
		position:     0,
		line:         1,
		column:       1,
		currentToken: Token{},
	}
}

// Get the next token from the input
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	// End of input
	if l.position >= l.length {
		tok := NewToken(EOF, "", l.currentPosition())
		l.currentToken = tok
		return tok
	}

	// '-' directly followed by a digit is part of a negative literal when the
	// previous token cannot end an operand (e.g. `case -1:` or `x := -2`)
	if l.input[l.position] == '-' && l.prevAllowsUnary() {
		if l.position+1 < l.length && isDigit(l.input[l.position+1]) {
			t, lex, matched := MatchToken(l.input[l.position+1:])
			if matched && t == NUM {
				tok := NewToken(NUM, "-"+lex, l.currentPosition())

				l.advance(len(tok.Lexeme))
				l.currentToken = tok

				return tok
			}
		}
	}

	tokenType, lexeme, matched := MatchToken(l.input[l.position:])

	if !matched || tokenType == EOF {
		if tokenType == EOF && lexeme != "" {
			l.advance(len(lexeme))
			return l.NextToken()
		}

		tok := NewToken(ILLEGAL, string(l.input[l.position]), l.currentPosition())
		l.advance(1)
		l.currentToken = tok
		return tok
	}

	tok := NewToken(tokenType, lexeme, l.currentPosition())
	l.advance(len(lexeme))
	l.currentToken = tok

	return tok
}

// View next token without advancing the position
func (l *Lexer) Peek() Token {
	cpos := l.position
	cline := l.line
	ccol := l.column
	ctok := l.currentToken

	token := l.NextToken()

	l.position = cpos
	l.line = cline
	l.column = ccol
	l.currentToken = ctok

	return token
}

// Check if there are more characters to read
func (l *Lexer) HasMore() bool {
	return l.position < l.length
}

// Skip whitespace and comments
func (l *Lexer) skipWhitespace() {
	for l.position < l.length {
		ch := l.input[l.position]

		if ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r' {
			l.advance(1)
		} else if l.position+1 < l.length && ch == '/' && l.input[l.position+1] == '/' {
			for l.position < l.length && l.input[l.position] != '\n' {
				l.advance(1)
			}
		} else {
			break
		}
	}
}

// Advance the lexer position by n characters
func (l *Lexer) advance(n int) {
	for range n {
		if l.position >= l.length {
			break
		}

		if l.input[l.position] == '\n' {
			l.line++
			l.column = 1
		} else {
			l.column++
		}

		l.position++
	}
}

// Get the current position of the lexer
func (l *Lexer) currentPosition() Position {
	return Position{
		Line:   l.line,
		Column: l.column,
		Offset: l.position,
	}
}

// Check if the previous token leaves room for an operand, so '-' is a sign rather than subtraction
func (l *Lexer) prevAllowsUnary() bool {
	switch l.currentToken.Type {
	case EOF,
		ASSIGN, LPAREN, LSBRACE, COLON, SEMICOLON,
		// arithmetic operators
		PLUS, MINUS, MULT, DIV, MOD,
		// relational operators
		LT, GT, LE, GE, EQ, NE,
		// keywords that can precede an expression
		AND, OR, NOT, PRINT, CASE, REPEAT, IF, WHILE:
		return true
	default:
		return false
	}
}
