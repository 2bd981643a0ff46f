package parser

import (
	"errors"
	"fmt"
	"strings"

	"siren/pkg/lexer"
)

// ErrIncomplete matches syntax errors caused by input ending inside an
// unfinished construct, e.g. an unclosed brace.
var ErrIncomplete = errors.New("incomplete input")

// Error is a single syntax error.
type Error struct {
	Pos        lexer.Position
	Msg        string
	Incomplete bool // input ended before the construct was closed
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at line %d, column %d", e.Msg, e.Pos.Line, e.Pos.Column)
}

// Is reports incomplete-input errors as ErrIncomplete.
func (e *Error) Is(target error) bool {
	return target == ErrIncomplete && e.Incomplete
}

// ErrorList is the set of syntax errors found in one parse, in source order.
type ErrorList []*Error

func (l ErrorList) Error() string {
	switch len(l) {
	case 0:
		return "no errors"
	case 1:
		return l[0].Error()
	default:
		return fmt.Sprintf("%s (and %d more errors)", l[0].Error(), len(l)-1)
	}
}

// Unwrap exposes every error to errors.Is and errors.As.
func (l ErrorList) Unwrap() []error {
	errs := make([]error, len(l))
	for i, e := range l {
		errs[i] = e
	}
	return errs
}

// IsIncomplete reports whether err says the input ended too early. Only
// the first error counts, later ones are usually fallout from recovery.
func IsIncomplete(err error) bool {
	var list ErrorList
	if errors.As(err, &list) && len(list) > 0 {
		return list[0].Incomplete
	}
	return errors.Is(err, ErrIncomplete)
}

// errorf builds a syntax error at the current token
func (p *Parser) errorf(format string, args ...any) *Error {
	tok := p.cur()
	return &Error{
		Pos:        tok.Pos,
		Msg:        fmt.Sprintf(format, args...),
		Incomplete: tok.Type == lexer.EOF,
	}
}

// expected builds the error for a missing token of type t
func (p *Parser) expected(t lexer.TokenType) *Error {
	switch t {
	case lexer.RPAREN:
		return p.errorf("Missing closing parenthesis")
	case lexer.RBRACE:
		return p.errorf("Missing closing brace")
	case lexer.LBRACE:
		return p.errorf("Missing opening brace")
	case lexer.LPAREN:
		return p.errorf("Missing opening parenthesis")
	case lexer.ASSIGN:
		return p.errorf("Missing assignment operator")
	case lexer.ID:
		if p.cur().Type.GetCategory() == lexer.KEYWORD {
			return p.errorf("Cannot use reserved keyword `%s` as identifier", p.cur().Lexeme)
		}
		return p.errorf("Expected identifier, found %s", describe(p.cur()))
	}
	return p.errorf("Expected %s, found %s", t, describe(p.cur()))
}

// describe renders a token for error messages
func describe(tok lexer.Token) string {
	switch tok.Type {
	case lexer.EOF:
		return "end of input"
	case lexer.ID, lexer.INT:
		return fmt.Sprintf("%s `%s`", tok.Type, tok.Lexeme)
	default:
		return "`" + strings.TrimSpace(tok.Lexeme) + "`"
	}
}
