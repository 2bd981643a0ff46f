package lexer

type Lexer struct {
	input        string // input string to be tokenized
	length       int    // length of the input string
	position     int    // current position in the input string
	line         int    // current line number for error reporting
	column       int    // current column number for error reporting
	currentToken Token  // last token produced (for unary minus handling)
}

// NewLexer creates a new lexer instance
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

// NextToken returns the next token from the input
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	pos := l.currentPosition()

	// End of input
	if l.position >= l.length {
		tok := NewToken(EOF, "", "", pos)
		l.currentToken = tok
		return tok
	}

	// A '-' immediately followed by digits in a position where a binary
	// operator cannot appear is lexed as a single signed integer.
	if l.input[l.position] == '-' && l.prevAllowsUnary() {
		if l.position+1 < l.length && isDigit(l.input[l.position+1]) {
			t, lex, matched := MatchToken(l.input[l.position+1:])
			if matched && t == INT {
				lexeme := "-" + lex
				tok := NewToken(INT, lexeme, lexeme, pos)

				l.advance(len(lexeme))
				l.currentToken = tok

				return tok
			}
		}
	}

	tokenType, lexeme, matched := MatchToken(l.input[l.position:])
	if !matched {
		l.advance(1)

		tok := NewToken(ILLEGAL, lexeme, "", pos)
		l.currentToken = tok
		return tok
	}

	var literal string
	switch tokenType {
	case INT, ID:
		literal = lexeme
	case TRUE:
		literal = "true"
	case FALSE:
		literal = "false"
	}

	tok := NewToken(tokenType, lexeme, literal, pos)
	l.advance(len(lexeme))
	l.currentToken = tok

	return tok
}

// Peek views the next token without advancing the position
func (l *Lexer) Peek() Token {
	// save state
	cpos := l.position
	cline := l.line
	ccol := l.column
	ctok := l.currentToken

	token := l.NextToken()

	// restore state
	l.position = cpos
	l.line = cline
	l.column = ccol
	l.currentToken = ctok

	return token
}

// Tokenize drains the lexer, returning every token up to and including EOF
func (l *Lexer) Tokenize() []Token {
	tokens := make([]Token, 0, l.length/2+1)
	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens
		}
	}
}

// skipWhitespace consumes whitespace and line comments, which MatchToken
// reports as EOF with a non-empty lexeme
func (l *Lexer) skipWhitespace() {
	for l.position < l.length {
		t, lexeme, matched := MatchToken(l.input[l.position:])
		if !matched || t != EOF || lexeme == "" {
			return
		}
		l.advance(len(lexeme))
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

// Check if the previous token allows a unary minus
func (l *Lexer) prevAllowsUnary() bool {
	switch l.currentToken.Type {
	case EOF,
		ASSIGN,    // =
		LPAREN,    // (
		COMMA,     // ,
		SEMICOLON, // ;
		LBRACE,    // {
		// arithmetic operators
		PLUS, MINUS, MULT, DIV, BANG,
		// relational operators
		LT, GT, LE, GE, EQ, NE,
		// keywords that can precede an expression
		RETURN, IF:
		return true
	default:
		return false
	}
}
