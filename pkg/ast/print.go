package ast

import (
	"strconv"
	"strings"
)

var unaryOps = map[UnaryOp]string{
	Neg: "-",
	Not: "!",
}

var binaryOps = map[BinaryOp]string{
	Add: "+",
	Sub: "-",
	Mul: "*",
	Div: "/",
	Eq:  "==",
	Ne:  "!=",
	Lt:  "<",
	Le:  "<=",
	Gt:  ">",
	Ge:  ">=",
}

func (op UnaryOp) String() string  { return unaryOps[op] }
func (op BinaryOp) String() string { return binaryOps[op] }

// IsComparison reports whether op is an equality or ordering operator.
func (op BinaryOp) IsComparison() bool {
	return op >= Eq
}

func (s *Let) String() string      { return "let " + s.Name + " = " + s.Value.String() }
func (s *Set) String() string      { return "set " + s.Name + " = " + s.Value.String() }
func (s *ExprStmt) String() string { return "expr " + s.X.String() }
func (s *Return) String() string   { return "return " + s.Value.String() }

func (e *Ident) String() string       { return e.Name }
func (e *IntLiteral) String() string  { return strconv.FormatInt(e.Value, 10) }
func (e *BoolLiteral) String() string { return strconv.FormatBool(e.Value) }

func (e *Unary) String() string {
	return "(" + e.Op.String() + e.Operand.String() + ")"
}

func (e *Binary) String() string {
	return "(" + e.Left.String() + " " + e.Op.String() + " " + e.Right.String() + ")"
}

func (e *Function) String() string {
	return "fn(" + strings.Join(e.Params, ", ") + ") " + e.Body.String()
}

func (e *Call) String() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = a.String()
	}
	return e.Callee.String() + "(" + strings.Join(args, ", ") + ")"
}

func (e *If) String() string {
	s := "if " + e.Cond.String() + " " + e.Then.String()
	if e.HasElse() {
		s += " else " + e.Else.String()
	}
	return s
}

// String renders the block as { stmt; stmt; }.
func (b Block) String() string {
	if len(b) == 0 {
		return "{ }"
	}

	var sb strings.Builder
	sb.WriteString("{ ")
	for _, st := range b {
		sb.WriteString(st.String())
		sb.WriteString("; ")
	}
	sb.WriteString("}")
	return sb.String()
}

// String renders one statement per line.
func (p Program) String() string {
	lines := make([]string, len(p))
	for i, st := range p {
		lines[i] = st.String()
	}
	return strings.Join(lines, "\n")
}
