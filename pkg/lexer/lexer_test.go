package lexer_test

import (
	"tacgen/pkg/lexer"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNumbers(t *testing.T) {
	tests := []struct {
		input       string
		expected    lexer.TokenType
		description string
	}{
		{"42", lexer.NUM, "integer"},
		{"0", lexer.NUM, "zero"},

		{"3.14", lexer.NUM, "simple float"},
		{"0.5", lexer.NUM, "float starting with zero"},

		{"1e5", lexer.NUM, "scientific notation with e"},
		{"1e-5", lexer.NUM, "scientific notation with e-"},
		{"2.5E10", lexer.NUM, "float with scientific notation E"},
	}

	for _, test := range tests {
		tokenType, lexeme, matched := lexer.MatchToken(test.input)
		if !matched {
			t.Errorf("Failed to match %s (%s)", test.input, test.description)
		}
		if tokenType != test.expected {
			t.Errorf("Input %s (%s): expected %s, got %s", test.input, test.description, test.expected, tokenType)
		}
		if lexeme != test.input {
			t.Errorf("Input %s (%s): expected lexeme %s, got %s", test.input, test.description, test.input, lexeme)
		}
	}
}

func lexAll(src string) []lexer.TokenType {
	l := lexer.NewLexer(src)
	var types []lexer.TokenType
	for {
		tok := l.NextToken()
		types = append(types, tok.Type)
		if tok.Type == lexer.EOF {
			return types
		}
	}
}

func TestTokens(t *testing.T) {
	tests := []struct {
		input    string
		expected []lexer.TokenType
	}{
		{"x := y + 1;", []lexer.TokenType{lexer.ID, lexer.ASSIGN, lexer.ID, lexer.PLUS, lexer.NUM, lexer.SEMICOLON, lexer.EOF}},
		{"if a <> b then", []lexer.TokenType{lexer.IF, lexer.ID, lexer.NE, lexer.ID, lexer.THEN, lexer.EOF}},
		{"a <= b >= c < d", []lexer.TokenType{lexer.ID, lexer.LE, lexer.ID, lexer.GE, lexer.ID, lexer.LT, lexer.ID, lexer.EOF}},
		{"done do dodo", []lexer.TokenType{lexer.DONE, lexer.DO, lexer.ID, lexer.EOF}},
		{"int v[4];", []lexer.TokenType{lexer.INT, lexer.ID, lexer.LSBRACE, lexer.NUM, lexer.RSBRACE, lexer.SEMICOLON, lexer.EOF}},
		{"case -1:", []lexer.TokenType{lexer.CASE, lexer.NUM, lexer.COLON, lexer.EOF}},
		{"x - 1", []lexer.TokenType{lexer.ID, lexer.MINUS, lexer.NUM, lexer.EOF}},
		{"@", []lexer.TokenType{lexer.ILLEGAL, lexer.EOF}},
	}

	for _, test := range tests {
		if diff := cmp.Diff(test.expected, lexAll(test.input)); diff != "" {
			t.Errorf("Input %q: token mismatch (-want +got):\n%s", test.input, diff)
		}
	}
}

func TestComments(t *testing.T) {
	l := lexer.NewLexer("// header\nprint x; // trailing\n")

	tok := l.NextToken()
	if tok.Type != lexer.PRINT {
		t.Fatalf("expected print, got %s", tok.Type)
	}
	if tok.Pos.Line != 2 || tok.Pos.Column != 1 {
		t.Errorf("print position: expected 2:1, got %s", tok.Pos)
	}

	l.NextToken()
	l.NextToken()
	if tok := l.NextToken(); tok.Type != lexer.EOF {
		t.Errorf("expected EOF after trailing comment, got %s", tok.Type)
	}
}

func TestNegativeLiteral(t *testing.T) {
	l := lexer.NewLexer("x := -2.5;")
	l.NextToken()
	l.NextToken()

	tok := l.NextToken()
	if tok.Type != lexer.NUM || tok.Lexeme != "-2.5" {
		t.Errorf("expected NUM '-2.5', got %s", tok)
	}
}
