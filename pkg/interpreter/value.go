package interpreter

import (
	"strconv"
	"strings"

	"siren/pkg/ast"
)

type ValueKind int

const (
	KindUnit ValueKind = iota
	KindInt
	KindBool
	KindFunc
)

var kindNames = map[ValueKind]string{
	KindUnit: "unit",
	KindInt:  "int",
	KindBool: "bool",
	KindFunc: "fn",
}

func (k ValueKind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown(" + strconv.Itoa(int(k)) + ")"
}

// Value represents a dynamically-typed value in the interpreter.
// The zero Value is Unit.
type Value struct {
	Kind ValueKind
	I64  int64
	Bool bool
	Fn   *Function
}

// Function is an immutable parameter list and body. It does not capture
// the scope it was created in.
type Function struct {
	params []string
	body   ast.Block
}

// NewFunction copies params and body into a new Function.
func NewFunction(params []string, body ast.Block) *Function {
	return &Function{
		params: append([]string(nil), params...),
		body:   append(ast.Block(nil), body...),
	}
}

// Params returns a copy of the parameter names.
func (f *Function) Params() []string {
	return append([]string(nil), f.params...)
}

// Arity returns the number of parameters.
func (f *Function) Arity() int {
	return len(f.params)
}

// Body returns the body statements.
func (f *Function) Body() ast.Block {
	return f.body
}

func (f *Function) String() string {
	return "fn(" + strings.Join(f.params, ", ") + ") " + f.body.String()
}

// Unit returns the unit value.
func Unit() Value {
	return Value{Kind: KindUnit}
}

// Int creates a new integer Value.
func Int(i int64) Value {
	return Value{Kind: KindInt, I64: i}
}

// Bool creates a new boolean Value.
func Bool(b bool) Value {
	return Value{Kind: KindBool, Bool: b}
}

// Func wraps f in a Value.
func Func(f *Function) Value {
	return Value{Kind: KindFunc, Fn: f}
}

// IsUnit reports whether v is the unit value.
func (v Value) IsUnit() bool {
	return v.Kind == KindUnit
}

// String renders the value as a string.
func (v Value) String() string {
	switch v.Kind {
	case KindUnit:
		return "()"
	case KindInt:
		return strconv.FormatInt(v.I64, 10)
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindFunc:
		return v.Fn.String()
	default:
		return "<invalid>"
	}
}

// AsInt64 returns the integer payload or a TypeMismatch error.
func (v Value) AsInt64() (int64, error) {
	if v.Kind != KindInt {
		return 0, typeMismatch(KindInt.String(), v.Kind.String())
	}
	return v.I64, nil
}

// AsBool returns the boolean payload or a TypeMismatch error.
func (v Value) AsBool() (bool, error) {
	if v.Kind != KindBool {
		return false, typeMismatch(KindBool.String(), v.Kind.String())
	}
	return v.Bool, nil
}
