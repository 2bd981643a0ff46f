package interpreter

import (
	"fmt"

	"siren/pkg/ast"
)

// Signal says whether evaluation continues normally or a return is
// unwinding towards the enclosing call.
type Signal int

const (
	Continue Signal = iota
	Returning
)

func (s Signal) String() string {
	if s == Returning {
		return "returning"
	}
	return "continue"
}

// Outcome is the result of executing a statement or a statement sequence.
// HasValue is false for let and set, and for sequences without an
// expression statement.
type Outcome struct {
	Signal   Signal
	Value    Value
	HasValue bool
}

func returning(v Value) Outcome {
	return Outcome{Signal: Returning, Value: v, HasValue: true}
}

// execStmt executes a single statement in the current frame of sc
func (i *Interpreter) execStmt(sc *Scope, st ast.Statement) (Outcome, error) {
	switch s := st.(type) {
	case *ast.Let:
		v, sig, err := i.evalExpr(sc, s.Value)
		if err != nil {
			return Outcome{}, err
		}
		if sig == Returning {
			return returning(v), nil
		}
		if err := sc.Bind(s.Name, v); err != nil {
			return Outcome{}, err
		}
		return Outcome{}, nil

	case *ast.Set:
		v, sig, err := i.evalExpr(sc, s.Value)
		if err != nil {
			return Outcome{}, err
		}
		if sig == Returning {
			return returning(v), nil
		}
		if err := sc.Assign(s.Name, v); err != nil {
			return Outcome{}, err
		}
		return Outcome{}, nil

	case *ast.ExprStmt:
		v, sig, err := i.evalExpr(sc, s.X)
		if err != nil {
			return Outcome{}, err
		}
		return Outcome{Signal: sig, Value: v, HasValue: true}, nil

	case *ast.Return:
		v, _, err := i.evalExpr(sc, s.Value)
		if err != nil {
			return Outcome{}, err
		}
		return returning(v), nil
	}

	return Outcome{}, fmt.Errorf("unsupported statement: %T", st)
}

// execSeq executes statements in order in the current frame of sc. It stops
// at the first Returning outcome; otherwise the result carries the value of
// the last expression statement, or Unit.
func (i *Interpreter) execSeq(sc *Scope, stmts []ast.Statement) (Outcome, error) {
	result := Outcome{Value: Unit()}

	for _, st := range stmts {
		out, err := i.execStmt(sc, st)
		if err != nil {
			return Outcome{}, err
		}
		if out.Signal == Returning {
			return out, nil
		}
		if out.HasValue {
			result = out
		}
	}

	return result, nil
}

// execBlock executes a block in a fresh frame that is popped on every path
func (i *Interpreter) execBlock(sc *Scope, b ast.Block) (Outcome, error) {
	sc.Push()
	defer sc.Pop()

	return i.execSeq(sc, b)
}

// evalExpr reduces an expression to a value. A Returning signal means a
// return statement ran inside a nested block and v is the returned value.
func (i *Interpreter) evalExpr(sc *Scope, e ast.Expr) (v Value, sig Signal, err error) {
	switch x := e.(type) {
	case *ast.IntLiteral:
		return Int(x.Value), Continue, nil

	case *ast.BoolLiteral:
		return Bool(x.Value), Continue, nil

	case *ast.Ident:
		v, err := sc.Lookup(x.Name)
		return v, Continue, err

	case *ast.Function:
		return Func(NewFunction(x.Params, x.Body)), Continue, nil

	case *ast.Unary:
		operand, sig, err := i.evalExpr(sc, x.Operand)
		if err != nil || sig == Returning {
			return operand, sig, err
		}
		v, err := evalUnary(x.Op, operand)
		return v, Continue, err

	case *ast.Binary:
		left, sig, err := i.evalExpr(sc, x.Left)
		if err != nil || sig == Returning {
			return left, sig, err
		}
		right, sig, err := i.evalExpr(sc, x.Right)
		if err != nil || sig == Returning {
			return right, sig, err
		}
		v, err := evalBinary(x.Op, left, right)
		return v, Continue, err

	case *ast.If:
		cond, sig, err := i.evalExpr(sc, x.Cond)
		if err != nil || sig == Returning {
			return cond, sig, err
		}
		b, err := cond.AsBool()
		if err != nil {
			return Value{}, Continue, err
		}

		var out Outcome
		switch {
		case b:
			out, err = i.execBlock(sc, x.Then)
		case x.HasElse():
			out, err = i.execBlock(sc, x.Else)
		default:
			return Unit(), Continue, nil
		}
		return out.Value, out.Signal, err

	case *ast.Call:
		return i.evalCall(sc, x)
	}

	return Value{}, Continue, fmt.Errorf("unsupported expression: %T", e)
}
