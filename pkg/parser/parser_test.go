package parser_test

import (
	"errors"
	"siren/pkg/lexer"
	"siren/pkg/parser"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"let a = 1 + 2 * 3", "let a = (1 + (2 * 3))"},
		{"a = b", "set a = b"},
		{"return -x", "return (-x)"},
		{"f(1, g(2))", "expr f(1, g(2))"},
		{"1 - -2", "expr (1 - -2)"},
		{"1 - 2 - 3", "expr ((1 - 2) - 3)"},
		{"8 / 4 * 2", "expr ((8 / 4) * 2)"},
		{"a < b == c > d", "expr ((a < b) == (c > d))"},
		{"!a == b", "expr ((!a) == b)"},
		{"-f(x)", "expr (-f(x))"},
		{"(1 + 2) * 3", "expr ((1 + 2) * 3)"},
		{"fn() { }", "expr fn() { }"},
		{"fn(x, y) { x + y }", "expr fn(x, y) { expr (x + y); }"},
		{"fn(x) { let y = x; return y; }(1)", "expr fn(x) { let y = x; return y; }(1)"},
		{"if a { 1 } else { 2 }", "expr if a { expr 1; } else { expr 2; }"},
		{"if a { 1 } else if b { 2 }", "expr if a { expr 1; } else { expr if b { expr 2; }; }"},
		{"let a = 1; a", "let a = 1\nexpr a"},
		{"if a { 1 } b", "expr if a { expr 1; }\nexpr b"},
		{";; let a = 1;;", "let a = 1"},
		{"// comment\nlet a = true; // trailing\n!a", "let a = true\nexpr (!a)"},
		{"if true { 1 }\n-2", "expr if true { expr 1; }\nexpr (-2)"},
		{"if true { 1 } - 2", "expr if true { expr 1; }\nexpr (-2)"},
		{"let f = fn() { 1 }\n(3)", "let f = fn() { expr 1; }\nexpr 3"},
		{"fn(x) { x }\n(1)", "expr fn(x) { expr x; }\nexpr 1"},
		{"fn(x) { x }(1)", "expr fn(x) { expr x; }(1)"},
		{"let a = if b { 1 } else { 2 } + 3", "let a = (if b { expr 1; } else { expr 2; } + 3)"},
		{"(if b { 1 } else { 2 }\n+ 3)", "expr (if b { expr 1; } else { expr 2; } + 3)"},
		{"f(fn() { 1 }\n(2))", "expr f(fn() { expr 1; }(2))"},
		{"let g = fn() { let x = fn() { 1 }\n(2); x }", "let g = fn() { let x = fn() { expr 1; }; expr 2; expr x; }"},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			prog, err := parser.Parse(tt.src)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := prog.String(); got != tt.want {
				t.Errorf("expected:\n%s\ngot:\n%s", tt.want, got)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		src        string
		want       string
		incomplete bool
	}{
		{"let = 1", "Expected identifier, found `=` at line 1, column 5", false},
		{"let fn = 1", "Cannot use reserved keyword `fn` as identifier at line 1, column 5", false},
		{"1 2", "Missing semicolon before integer `2` at line 1, column 3", false},
		{"fn(a, a) { a }", "Duplicate parameter `a` at line 1, column 7", false},
		{"99999999999999999999", "Integer literal 99999999999999999999 out of range at line 1, column 1", false},
		{"let a = @", "Illegal character `@` at line 1, column 9", false},
		{"let a =", "Missing expression at line 1, column 8", true},
		{"(1 + 2", "Missing closing parenthesis at line 1, column 7", true},
		{"f(1, ", "Missing expression at line 1, column 6", true},
		{"if a { 1 ", "Missing closing brace at line 1, column 10", true},
		{"let f = fn(x) {", "Missing closing brace at line 1, column 16", true},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			_, err := parser.Parse(tt.src)
			if err == nil {
				t.Fatal("expected an error")
			}
			if err.Error() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, err.Error())
			}
			if got := parser.IsIncomplete(err); got != tt.incomplete {
				t.Errorf("expected incomplete %v, got %v", tt.incomplete, got)
			}
			if got := errors.Is(err, parser.ErrIncomplete); got != tt.incomplete {
				t.Errorf("errors.Is(ErrIncomplete): expected %v, got %v", tt.incomplete, got)
			}
		})
	}
}

func TestParseRecovery(t *testing.T) {
	prog, err := parser.Parse("let = 1; let b = 2; 1 2")

	var list parser.ErrorList
	if !errors.As(err, &list) {
		t.Fatalf("expected an ErrorList, got %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 errors, got %d: %v", len(list), list)
	}
	if got := err.Error(); got != "Expected identifier, found `=` at line 1, column 5 (and 1 more errors)" {
		t.Errorf("unexpected message: %s", got)
	}
	if list[1].Pos.Column != 23 {
		t.Errorf("expected second error at column 23, got %d", list[1].Pos.Column)
	}

	if got := prog.String(); got != "let b = 2" {
		t.Errorf("expected the valid statement to survive, got %q", got)
	}
}

func TestParserErrors(t *testing.T) {
	p := parser.NewParser(lexer.NewLexer("let a = 1; b"))
	prog := p.ParseProgram()
	if len(p.Errors()) != 0 {
		t.Errorf("expected no errors, got %v", p.Errors())
	}
	if len(prog) != 2 {
		t.Errorf("expected 2 statements, got %d", len(prog))
	}
}
