package lexer_test

import (
	"siren/pkg/lexer"
	"testing"
)

func TestTokens(t *testing.T) {
	input := "let fib = fn(n) {\n" +
		"	if n <= 1 { return 1 } else { return fib(n - 1) + fib(n - 2) }\n" +
		"};\n" +
		"x = !true == false;\n" +
		"a != b; a >= b; a > b; a < b; 6 * 7 / 2"
	mylexer := lexer.NewLexer(input)

	expectedTokens := []lexer.TokenType{
		lexer.LET, lexer.ID, lexer.ASSIGN, lexer.FN, lexer.LPAREN, lexer.ID, lexer.RPAREN, lexer.LBRACE,
		lexer.IF, lexer.ID, lexer.LE, lexer.INT, lexer.LBRACE, lexer.RETURN, lexer.INT, lexer.RBRACE,
		lexer.ELSE, lexer.LBRACE, lexer.RETURN,
		lexer.ID, lexer.LPAREN, lexer.ID, lexer.MINUS, lexer.INT, lexer.RPAREN, lexer.PLUS,
		lexer.ID, lexer.LPAREN, lexer.ID, lexer.MINUS, lexer.INT, lexer.RPAREN, lexer.RBRACE,
		lexer.RBRACE, lexer.SEMICOLON,
		lexer.ID, lexer.ASSIGN, lexer.BANG, lexer.TRUE, lexer.EQ, lexer.FALSE, lexer.SEMICOLON,
		lexer.ID, lexer.NE, lexer.ID, lexer.SEMICOLON, lexer.ID, lexer.GE, lexer.ID, lexer.SEMICOLON,
		lexer.ID, lexer.GT, lexer.ID, lexer.SEMICOLON, lexer.ID, lexer.LT, lexer.ID, lexer.SEMICOLON,
		lexer.INT, lexer.MULT, lexer.INT, lexer.DIV, lexer.INT,
		lexer.EOF,
	}

	for i, expected := range expectedTokens {
		token := mylexer.NextToken()
		if token.Type != expected {
			t.Errorf("Token %d: expected %s, got %s (%q)", i, expected, token.Type, token.Lexeme)
		}
	}
}

func TestComments(t *testing.T) {
	input := `// leading comment
let x = 10; // trailing comment
// another comment
x`

	mylexer := lexer.NewLexer(input)
	expectedTokens := []lexer.TokenType{
		lexer.LET, lexer.ID, lexer.ASSIGN, lexer.INT, lexer.SEMICOLON,
		lexer.ID,
		lexer.EOF,
	}

	for i, expected := range expectedTokens {
		token := mylexer.NextToken()
		if token.Type != expected {
			t.Errorf("Token %d: expected %s, got %s", i, expected, token.Type)
		}
	}
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	tests := []struct {
		input    string
		expected lexer.TokenType
	}{
		{"let", lexer.LET},
		{"fn", lexer.FN},
		{"return", lexer.RETURN},
		{"if", lexer.IF},
		{"else", lexer.ELSE},
		{"true", lexer.TRUE},
		{"false", lexer.FALSE},
		{"letter", lexer.ID},
		{"fnord", lexer.ID},
		{"_abc", lexer.ID},
		{"iffy_2", lexer.ID},
	}

	for _, test := range tests {
		tokenType, lexeme, matched := lexer.MatchToken(test.input)
		if !matched {
			t.Errorf("Failed to match %q", test.input)
		}
		if tokenType != test.expected {
			t.Errorf("Input %q: expected %s, got %s", test.input, test.expected, tokenType)
		}
		if lexeme != test.input {
			t.Errorf("Input %q: expected lexeme %q, got %q", test.input, test.input, lexeme)
		}
	}
}

func TestSignedIntegers(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"-5", []string{"-5"}},
		{"3 - 5", []string{"3", "-", "5"}},
		{"3 -5", []string{"3", "-", "5"}},
		{"3 - -5", []string{"3", "-", "-5"}},
		{"f(-1, -2)", []string{"f", "(", "-1", ",", "-2", ")"}},
		{"x = -9223372036854775808", []string{"x", "=", "-9223372036854775808"}},
		{"- 5", []string{"-", "5"}},
		{"-x", []string{"-", "x"}},
	}

	for _, test := range tests {
		toks := lexer.NewLexer(test.input).Tokenize()
		toks = toks[:len(toks)-1]
		if len(toks) != len(test.expected) {
			t.Errorf("Input %q: expected %d tokens, got %d", test.input, len(test.expected), len(toks))
			continue
		}
		for i, tok := range toks {
			if tok.Lexeme != test.expected[i] {
				t.Errorf("Input %q token %d: expected %q, got %q", test.input, i, test.expected[i], tok.Lexeme)
			}
		}
	}
}

func TestPositions(t *testing.T) {
	l := lexer.NewLexer("let a = 1;\n  a")
	toks := l.Tokenize()

	last := toks[len(toks)-2]
	if last.Lexeme != "a" || last.Pos.Line != 2 || last.Pos.Column != 3 {
		t.Errorf("expected `a` at 2:3, got %q at %s", last.Lexeme, last.Pos)
	}
	if toks[0].Pos.String() != "1:1" {
		t.Errorf("expected first token at 1:1, got %s", toks[0].Pos)
	}
}

func TestIllegal(t *testing.T) {
	l := lexer.NewLexer("a @ b")
	toks := l.Tokenize()

	if toks[1].Type != lexer.ILLEGAL || toks[1].Lexeme != "@" {
		t.Errorf("expected ILLEGAL `@`, got %s", toks[1])
	}
	if toks[2].Type != lexer.ID {
		t.Errorf("expected lexing to continue after illegal character, got %s", toks[2])
	}
}

func TestPeek(t *testing.T) {
	l := lexer.NewLexer("a b")
	if p := l.Peek(); p.Lexeme != "a" {
		t.Fatalf("expected peek `a`, got %q", p.Lexeme)
	}
	if n := l.NextToken(); n.Lexeme != "a" {
		t.Fatalf("peek advanced the lexer, got %q", n.Lexeme)
	}
}
