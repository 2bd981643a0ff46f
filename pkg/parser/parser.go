package parser

import (
	"strconv"

	"siren/pkg/ast"
	"siren/pkg/lexer"
)

type Parser struct {
	tokens []lexer.Token // token stream, always terminated by EOF
	pos    int           // index of the current token
	parens int           // open '(' around the current expression
	errors ErrorList     // list of errors
}

// Parse parses a whole program. The returned error, if any, is an ErrorList.
func Parse(src string) (ast.Program, error) {
	p := NewParser(lexer.NewLexer(src))
	prog := p.ParseProgram()
	if len(p.errors) > 0 {
		return prog, p.errors
	}
	return prog, nil
}

// NewParser creates a new parser instance reading every token from l
func NewParser(l *lexer.Lexer) *Parser {
	return &Parser{
		tokens: l.Tokenize(),
		errors: ErrorList{},
	}
}

// Errors returns the list of parsing errors
func (p *Parser) Errors() ErrorList {
	return p.errors
}

// ParseProgram parses statements until the end of input. After a syntax
// error the parser skips to the next top-level ';' and keeps going.
func (p *Parser) ParseProgram() ast.Program {
	prog := ast.Program{}

	for {
		p.skipSemicolons()
		if p.cur().Type == lexer.EOF {
			return prog
		}

		st, err := p.parseStatement()
		if err == nil {
			err = p.endStatement(lexer.EOF)
		}
		if err != nil {
			p.errors = append(p.errors, err)
			p.synchronize()
			continue
		}

		prog = append(prog, st)
	}
}

// parseStatement parses one statement without its terminator
func (p *Parser) parseStatement() (ast.Statement, *Error) {
	tok := p.cur()

	switch {
	case tok.Type == lexer.RETURN:
		p.next()
		value, err := p.parseExpr(precLowest)
		if err != nil {
			return nil, err
		}
		return &ast.Return{At: tok.Pos, Value: value}, nil

	case tok.Type == lexer.LET:
		p.next()
		name, err := p.expect(lexer.ID)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.ASSIGN); err != nil {
			return nil, err
		}
		value, err := p.parseExpr(precLowest)
		if err != nil {
			return nil, err
		}
		return &ast.Let{At: tok.Pos, Name: name.Lexeme, Value: value}, nil

	case tok.Type == lexer.ID && p.peek().Type == lexer.ASSIGN:
		p.next()
		p.next()
		value, err := p.parseExpr(precLowest)
		if err != nil {
			return nil, err
		}
		return &ast.Set{At: tok.Pos, Name: tok.Lexeme, Value: value}, nil

	case tok.Type == lexer.IF:
		// an if statement ends at its closing brace
		x, err := p.parseIf()
		if err != nil {
			return nil, err
		}
		return &ast.ExprStmt{X: x}, nil
	}

	x, err := p.parseExpr(precLowest)
	if err != nil {
		return nil, err
	}
	return &ast.ExprStmt{X: x}, nil
}

// endStatement consumes the ';' after a statement. The ';' may be left out
// before the closing token and after a statement that ends with '}'.
func (p *Parser) endStatement(closing lexer.TokenType) *Error {
	switch p.cur().Type {
	case lexer.SEMICOLON:
		p.next()
		return nil
	case closing:
		return nil
	}

	if p.prev().Type == lexer.RBRACE {
		return nil
	}
	if p.cur().Type == lexer.EOF {
		return p.expected(closing)
	}
	return p.errorf("Missing semicolon before %s", describe(p.cur()))
}

// parseBlock parses '{' statements '}'
func (p *Parser) parseBlock() (ast.Block, *Error) {
	if _, err := p.expect(lexer.LBRACE); err != nil {
		return nil, err
	}

	saved := p.parens
	p.parens = 0
	defer func() { p.parens = saved }()

	block := ast.Block{}
	for {
		p.skipSemicolons()
		if p.cur().Type == lexer.RBRACE {
			p.next()
			return block, nil
		}
		if p.cur().Type == lexer.EOF {
			return nil, p.expected(lexer.RBRACE)
		}

		st, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		if err := p.endStatement(lexer.RBRACE); err != nil {
			return nil, err
		}
		block = append(block, st)
	}
}

// Precedence values (higher binds tighter)
const (
	precLowest = iota
	precEquals
	precCompare
	precSum
	precProduct
	precPrefix
	precCall
)

var infixOps = map[lexer.TokenType]struct {
	prec int
	op   ast.BinaryOp
}{
	lexer.EQ:    {precEquals, ast.Eq},
	lexer.NE:    {precEquals, ast.Ne},
	lexer.LT:    {precCompare, ast.Lt},
	lexer.LE:    {precCompare, ast.Le},
	lexer.GT:    {precCompare, ast.Gt},
	lexer.GE:    {precCompare, ast.Ge},
	lexer.PLUS:  {precSum, ast.Add},
	lexer.MINUS: {precSum, ast.Sub},
	lexer.MULT:  {precProduct, ast.Mul},
	lexer.DIV:   {precProduct, ast.Div},
}

// precedence returns the binding power of t in infix position
func precedence(t lexer.TokenType) int {
	if t == lexer.LPAREN {
		return precCall
	}
	if info, ok := infixOps[t]; ok {
		return info.prec
	}
	return precLowest
}

// parseExpr parses an expression whose operators bind tighter than minPrec
func (p *Parser) parseExpr(minPrec int) (ast.Expr, *Error) {
	left, err := p.parsePrefix()
	if err != nil {
		return nil, err
	}

	for precedence(p.cur().Type) > minPrec {
		if p.endsAtLine() {
			break
		}
		tok := p.next()

		if tok.Type == lexer.LPAREN {
			args, err := p.parseArgs()
			if err != nil {
				return nil, err
			}
			left = &ast.Call{Callee: left, Args: args}
			continue
		}

		info := infixOps[tok.Type]
		right, err := p.parseExpr(info.prec)
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Left: left, Op: info.op, Right: right}
	}

	return left, nil
}

// endsAtLine reports whether an expression ending in '}' stops before the
// current token: outside parentheses it does not continue on the next line
func (p *Parser) endsAtLine() bool {
	last := p.prev()
	return p.parens == 0 && last.Type == lexer.RBRACE && p.cur().Pos.Line > last.Pos.Line
}

// parsePrefix parses an atom or a prefix operator application
func (p *Parser) parsePrefix() (ast.Expr, *Error) {
	tok := p.cur()

	switch tok.Type {
	case lexer.INT:
		n, err := strconv.ParseInt(tok.Lexeme, 10, 64)
		if err != nil {
			return nil, p.errorf("Integer literal %s out of range", tok.Lexeme)
		}
		p.next()
		return &ast.IntLiteral{At: tok.Pos, Value: n}, nil

	case lexer.TRUE, lexer.FALSE:
		p.next()
		return &ast.BoolLiteral{At: tok.Pos, Value: tok.Type == lexer.TRUE}, nil

	case lexer.ID:
		p.next()
		return &ast.Ident{At: tok.Pos, Name: tok.Lexeme}, nil

	case lexer.MINUS, lexer.BANG:
		p.next()
		operand, err := p.parseExpr(precPrefix)
		if err != nil {
			return nil, err
		}
		op := ast.Neg
		if tok.Type == lexer.BANG {
			op = ast.Not
		}
		return &ast.Unary{At: tok.Pos, Op: op, Operand: operand}, nil

	case lexer.LPAREN:
		p.next()
		p.parens++
		defer func() { p.parens-- }()

		x, err := p.parseExpr(precLowest)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(lexer.RPAREN); err != nil {
			return nil, err
		}
		return x, nil

	case lexer.FN:
		return p.parseFunction()

	case lexer.IF:
		return p.parseIf()

	case lexer.ILLEGAL:
		return nil, p.errorf("Illegal character `%s`", tok.Lexeme)
	}

	if tok.Type == lexer.EOF {
		return nil, p.errorf("Missing expression")
	}
	return nil, p.errorf("Expected expression, found %s", describe(tok))
}

// parseFunction parses fn(params) { body }
func (p *Parser) parseFunction() (ast.Expr, *Error) {
	tok := p.next()
	if _, err := p.expect(lexer.LPAREN); err != nil {
		return nil, err
	}

	params := []string{}
	seen := map[string]bool{}
	for p.cur().Type != lexer.RPAREN {
		if len(params) > 0 {
			if _, err := p.expect(lexer.COMMA); err != nil {
				return nil, err
			}
		}
		if seen[p.cur().Lexeme] {
			return nil, p.errorf("Duplicate parameter `%s`", p.cur().Lexeme)
		}
		name, err := p.expect(lexer.ID)
		if err != nil {
			return nil, err
		}
		seen[name.Lexeme] = true
		params = append(params, name.Lexeme)
	}
	p.next()

	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return &ast.Function{At: tok.Pos, Params: params, Body: body}, nil
}

// parseIf parses if cond { } [else { } | else if ...]
func (p *Parser) parseIf() (ast.Expr, *Error) {
	tok := p.next()

	cond, err := p.parseExpr(precLowest)
	if err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}

	node := &ast.If{At: tok.Pos, Cond: cond, Then: then}
	if p.cur().Type != lexer.ELSE {
		return node, nil
	}
	p.next()

	if p.cur().Type == lexer.IF {
		nested, err := p.parseIf()
		if err != nil {
			return nil, err
		}
		node.Else = ast.Block{&ast.ExprStmt{X: nested}}
		return node, nil
	}

	node.Else, err = p.parseBlock()
	if err != nil {
		return nil, err
	}
	return node, nil
}

// parseArgs parses call arguments after '(' up to and including ')'
func (p *Parser) parseArgs() ([]ast.Expr, *Error) {
	p.parens++
	defer func() { p.parens-- }()

	args := []ast.Expr{}
	for p.cur().Type != lexer.RPAREN {
		if len(args) > 0 {
			if _, err := p.expect(lexer.COMMA); err != nil {
				if p.cur().Type != lexer.EOF {
					return nil, p.expected(lexer.RPAREN)
				}
				return nil, err
			}
		}
		arg, err := p.parseExpr(precLowest)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	p.next()
	return args, nil
}

// cur returns the current token
func (p *Parser) cur() lexer.Token {
	return p.tokens[p.pos]
}

// peek returns the token after the current one
func (p *Parser) peek() lexer.Token {
	if p.pos+1 < len(p.tokens) {
		return p.tokens[p.pos+1]
	}
	return p.tokens[len(p.tokens)-1]
}

// prev returns the most recently consumed token
func (p *Parser) prev() lexer.Token {
	if p.pos == 0 {
		return lexer.Token{Type: lexer.EOF}
	}
	return p.tokens[p.pos-1]
}

// next consumes the current token and returns it. EOF is never consumed.
func (p *Parser) next() lexer.Token {
	tok := p.cur()
	if tok.Type != lexer.EOF {
		p.pos++
	}
	return tok
}

// expect consumes a token of type t or reports it missing
func (p *Parser) expect(t lexer.TokenType) (lexer.Token, *Error) {
	if p.cur().Type != t {
		return lexer.Token{}, p.expected(t)
	}
	return p.next(), nil
}

// skipSemicolons skips empty statements
func (p *Parser) skipSemicolons() {
	for p.cur().Type == lexer.SEMICOLON {
		p.next()
	}
}

// synchronize skips to just past the next ';' outside of braces
func (p *Parser) synchronize() {
	depth := 0
	for {
		switch p.cur().Type {
		case lexer.EOF:
			return
		case lexer.LBRACE:
			depth++
		case lexer.RBRACE:
			if depth > 0 {
				depth--
			}
		case lexer.SEMICOLON:
			if depth == 0 {
				p.next()
				return
			}
		}
		p.next()
	}
}
