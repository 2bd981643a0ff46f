package lexer

import (
	"regexp"
)

// Token regex patterns
var tokenRegexes = map[TokenType]*regexp.Regexp{
	LE: regexp.MustCompile(`^<=`),
	GE: regexp.MustCompile(`^>=`),
	EQ: regexp.MustCompile(`^==`),
	NE: regexp.MustCompile(`^!=`),

	ASSIGN: regexp.MustCompile(`^=`),
	PLUS:   regexp.MustCompile(`^\+`),
	MINUS:  regexp.MustCompile(`^-`),
	MULT:   regexp.MustCompile(`^\*`),
	DIV:    regexp.MustCompile(`^/`),
	BANG:   regexp.MustCompile(`^!`),
	LT:     regexp.MustCompile(`^<`),
	GT:     regexp.MustCompile(`^>`),

	SEMICOLON: regexp.MustCompile(`^;`),
	COMMA:     regexp.MustCompile(`^,`),
	LPAREN:    regexp.MustCompile(`^\(`),
	RPAREN:    regexp.MustCompile(`^\)`),
	LBRACE:    regexp.MustCompile(`^\{`),
	RBRACE:    regexp.MustCompile(`^\}`),

	INT: regexp.MustCompile(`^\d+`),
	ID:  regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*`),
}

var (
	whitespaceRegex = regexp.MustCompile(`^\s+`)
	commentRegex    = regexp.MustCompile(`^//[^\n]*`)
)

// Token precedence order for matching (two-character operators first).
// Keywords are matched as identifiers and then looked up in Keywords.
var tokenPrecedenceOrder = []TokenType{
	LE, GE, EQ, NE, ASSIGN, PLUS, MINUS, MULT, DIV, BANG, LT, GT,
	SEMICOLON, COMMA, LPAREN, RPAREN, LBRACE, RBRACE, INT, ID,
}

// MatchToken matches the token at the start of the string.
// Whitespace and comments are reported as EOF with a non-empty lexeme so the caller can skip them.
func MatchToken(s string) (TokenType, string, bool) {
	if s == "" {
		return EOF, "", false
	} else if match := whitespaceRegex.FindString(s); match != "" {
		return EOF, match, true
	} else if match := commentRegex.FindString(s); match != "" {
		return EOF, match, true
	}

	for _, tokenType := range tokenPrecedenceOrder {
		if match := tokenRegexes[tokenType].FindString(s); match != "" {
			if tokenType == ID {
				if kw, ok := IsKeyword(match); ok {
					return kw, match, true
				}
			}
			return tokenType, match, true
		}
	}

	return ILLEGAL, string(s[0]), false
}

// Check if a byte is a digit
func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
