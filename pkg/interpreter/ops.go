package interpreter

import (
	"cmp"
	"fmt"
	"math"

	"siren/pkg/ast"
)

// evalUnary applies a prefix operator
func evalUnary(op ast.UnaryOp, v Value) (Value, error) {
	switch op {
	case ast.Neg:
		n, err := v.AsInt64()
		if err != nil {
			return Value{}, err
		}
		if n == math.MinInt64 {
			return Value{}, errIntegerOverflow
		}
		return Int(-n), nil

	case ast.Not:
		b, err := v.AsBool()
		if err != nil {
			return Value{}, err
		}
		return Bool(!b), nil
	}

	return Value{}, fmt.Errorf("unsupported unary op: %s", op)
}

// evalBinary evaluates a binary operation on two already evaluated operands
func evalBinary(op ast.BinaryOp, a, b Value) (Value, error) {
	if op.IsComparison() {
		return evalCompare(op, a, b)
	}

	x, err := a.AsInt64()
	if err != nil {
		return Value{}, err
	}
	y, err := b.AsInt64()
	if err != nil {
		return Value{}, err
	}

	switch op {
	case ast.Add:
		if (y > 0 && x > math.MaxInt64-y) || (y < 0 && x < math.MinInt64-y) {
			return Value{}, errIntegerOverflow
		}
		return Int(x + y), nil

	case ast.Sub:
		if (y < 0 && x > math.MaxInt64+y) || (y > 0 && x < math.MinInt64+y) {
			return Value{}, errIntegerOverflow
		}
		return Int(x - y), nil

	case ast.Mul:
		if x == 0 || y == 0 {
			return Int(0), nil
		}
		if (x == -1 && y == math.MinInt64) || (y == -1 && x == math.MinInt64) {
			return Value{}, errIntegerOverflow
		}
		p := x * y
		if p/y != x {
			return Value{}, errIntegerOverflow
		}
		return Int(p), nil

	case ast.Div:
		if y == 0 {
			return Value{}, errDivisionByZero
		}
		if x == math.MinInt64 && y == -1 {
			return Value{}, errIntegerOverflow
		}
		// Go's integer division truncates toward zero
		return Int(x / y), nil
	}

	return Value{}, fmt.Errorf("unsupported binary op: %s", op)
}

// evalCompare evaluates == != < <= > >=. Both operands must have the same
// kind; unit supports only equality and functions support nothing.
func evalCompare(op ast.BinaryOp, a, b Value) (Value, error) {
	if a.Kind == KindFunc && b.Kind == KindFunc {
		return Value{}, errUncomparableFunction
	}
	if a.Kind != b.Kind {
		return Value{}, typeMismatch(a.Kind.String(), b.Kind.String())
	}

	var c int
	switch a.Kind {
	case KindInt:
		c = cmp.Compare(a.I64, b.I64)
	case KindBool:
		c = cmp.Compare(b2i(a.Bool), b2i(b.Bool))
	case KindUnit:
		if op != ast.Eq && op != ast.Ne {
			return Value{}, typeMismatch("int or bool", a.Kind.String())
		}
		c = 0
	default:
		return Value{}, typeMismatch("int or bool", a.Kind.String())
	}

	switch op {
	case ast.Eq:
		return Bool(c == 0), nil
	case ast.Ne:
		return Bool(c != 0), nil
	case ast.Lt:
		return Bool(c < 0), nil
	case ast.Le:
		return Bool(c <= 0), nil
	case ast.Gt:
		return Bool(c > 0), nil
	case ast.Ge:
		return Bool(c >= 0), nil
	}

	return Value{}, fmt.Errorf("unsupported comparison: %s", op)
}

// false orders before true
func b2i(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
