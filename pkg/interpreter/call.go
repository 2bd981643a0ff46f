package interpreter

import (
	"siren/pkg/ast"
)

// evalCall evaluates the arguments left to right, resolves the callee and
// invokes it. Only a name bound to a function or a function literal can be
// called; a call made through a name can recurse through that name.
func (i *Interpreter) evalCall(sc *Scope, c *ast.Call) (Value, Signal, error) {
	args := make([]Value, 0, len(c.Args))
	for _, a := range c.Args {
		v, sig, err := i.evalExpr(sc, a)
		if err != nil || sig == Returning {
			return v, sig, err
		}
		args = append(args, v)
	}

	var (
		fn   *Function
		self string
	)
	switch callee := c.Callee.(type) {
	case *ast.Ident:
		v, err := sc.Lookup(callee.Name)
		if err != nil {
			return Value{}, Continue, err
		}
		if v.Kind != KindFunc {
			return Value{}, Continue, notCallable(callee.Name + " (" + v.Kind.String() + ")")
		}
		fn, self = v.Fn, callee.Name

	case *ast.Function:
		fn = NewFunction(callee.Params, callee.Body)

	default:
		return Value{}, Continue, notCallable(c.Callee.String())
	}

	v, err := i.call(fn, args, self)
	return v, Continue, err
}

// call runs fn in a brand-new scope holding only the self binding (when
// self is not empty) followed by the parameters. A return anywhere in the body
// ends the call; otherwise the last expression statement is the result.
func (i *Interpreter) call(fn *Function, args []Value, self string) (Value, error) {
	if len(args) != fn.Arity() {
		return Value{}, arityMismatch(fn.Arity(), len(args))
	}
	if i.maxDepth > 0 && i.depth >= i.maxDepth {
		return Value{}, callDepthExceeded(i.maxDepth)
	}

	i.depth++
	defer func() { i.depth-- }()

	i.logger.Debug("Calling function", "fn", displayName(self), "args", len(args), "depth", i.depth)

	sc := NewScope()
	// the self binding comes first, so a parameter reusing the name is a
	// duplicate binding
	if self != "" {
		if err := sc.Bind(self, Func(fn)); err != nil {
			return Value{}, err
		}
	}
	for idx, name := range fn.params {
		if err := sc.Bind(name, args[idx]); err != nil {
			return Value{}, err
		}
	}

	out, err := i.execSeq(sc, fn.body)
	if err != nil {
		return Value{}, err
	}

	i.logger.Debug("Returned from function", "fn", displayName(self), "signal", out.Signal, "value", out.Value)
	return out.Value, nil
}

func displayName(self string) string {
	if self == "" {
		return "<anonymous>"
	}
	return self
}
