// Package ast defines the statement and expression trees produced by the
// parser and consumed by the interpreter.
package ast

import (
	"siren/pkg/lexer"
)

// Program is an ordered list of top-level statements.
type Program []Statement

// Block is the statement list of a function body or an if/else arm.
type Block []Statement

// Statement is one of *Let, *Set, *ExprStmt or *Return.
type Statement interface {
	Node
	stmtNode()
}

// Expr is one of *Ident, *IntLiteral, *BoolLiteral, *Unary, *Binary,
// *Function, *Call or *If.
type Expr interface {
	Node
	exprNode()
}

// Node is implemented by every tree node.
type Node interface {
	Pos() lexer.Position
	String() string
}

type Let struct {
	At    lexer.Position
	Name  string
	Value Expr
}

type Set struct {
	At    lexer.Position
	Name  string
	Value Expr
}

type ExprStmt struct {
	X Expr
}

type Return struct {
	At    lexer.Position
	Value Expr
}

type Ident struct {
	At   lexer.Position
	Name string
}

type IntLiteral struct {
	At    lexer.Position
	Value int64
}

type BoolLiteral struct {
	At    lexer.Position
	Value bool
}

type UnaryOp int

const (
	Neg UnaryOp = iota // -
	Not                // !
)

type Unary struct {
	At      lexer.Position
	Op      UnaryOp
	Operand Expr
}

type BinaryOp int

const (
	Add BinaryOp = iota // +
	Sub                 // -
	Mul                 // *
	Div                 // /
	Eq                  // ==
	Ne                  // !=
	Lt                  // <
	Le                  // <=
	Gt                  // >
	Ge                  // >=
)

type Binary struct {
	Left  Expr
	Op    BinaryOp
	Right Expr
}

type Function struct {
	At     lexer.Position
	Params []string
	Body   Block
}

type Call struct {
	Callee Expr
	Args   []Expr
}

type If struct {
	At   lexer.Position
	Cond Expr
	Then Block
	Else Block // nil when there is no else arm
}

// HasElse reports whether the if expression has an else arm.
func (e *If) HasElse() bool { return e.Else != nil }

func (s *Let) Pos() lexer.Position      { return s.At }
func (s *Set) Pos() lexer.Position      { return s.At }
func (s *ExprStmt) Pos() lexer.Position { return s.X.Pos() }
func (s *Return) Pos() lexer.Position   { return s.At }

func (e *Ident) Pos() lexer.Position       { return e.At }
func (e *IntLiteral) Pos() lexer.Position  { return e.At }
func (e *BoolLiteral) Pos() lexer.Position { return e.At }
func (e *Unary) Pos() lexer.Position       { return e.At }
func (e *Binary) Pos() lexer.Position      { return e.Left.Pos() }
func (e *Function) Pos() lexer.Position    { return e.At }
func (e *Call) Pos() lexer.Position        { return e.Callee.Pos() }
func (e *If) Pos() lexer.Position          { return e.At }

func (*Let) stmtNode()      {}
func (*Set) stmtNode()      {}
func (*ExprStmt) stmtNode() {}
func (*Return) stmtNode()   {}

func (*Ident) exprNode()       {}
func (*IntLiteral) exprNode()  {}
func (*BoolLiteral) exprNode() {}
func (*Unary) exprNode()       {}
func (*Binary) exprNode()      {}
func (*Function) exprNode()    {}
func (*Call) exprNode()        {}
func (*If) exprNode()          {}
