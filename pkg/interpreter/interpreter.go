package interpreter

import (
	"siren/pkg/ast"

	"github.com/charmbracelet/log"
)

// DefaultMaxCallDepth bounds recursion so runaway programs fail with
// ErrCallDepthExceeded instead of overflowing the Go stack.
const DefaultMaxCallDepth = 10000

// Interpreter evaluates statements against a persistent top-level scope.
// It is not safe for concurrent use.
type Interpreter struct {
	globals *Scope // top-level activation

	maxDepth int // maximum active calls (0 = unlimited)
	depth    int // active calls

	logger *log.Logger
}

type Option func(*Interpreter)

// WithMaxCallDepth sets the maximum number of nested calls (0 = unlimited)
func WithMaxCallDepth(n int) Option {
	return func(i *Interpreter) { i.maxDepth = n }
}

// WithLogger sets the logger used for call tracing
func WithLogger(l *log.Logger) Option {
	return func(i *Interpreter) { i.logger = l }
}

// New creates a new Interpreter instance
func New(opts ...Option) *Interpreter {
	it := &Interpreter{
		globals:  NewScope(),
		maxDepth: DefaultMaxCallDepth,
	}

	for _, o := range opts {
		o(it)
	}

	if it.logger == nil {
		it.logger = log.Default()
	}

	return it
}

// Exec evaluates one statement against the top-level scope. ok is false
// for statements that produce no value (let and set).
func (i *Interpreter) Exec(st ast.Statement) (v Value, ok bool, err error) {
	out, err := i.execStmt(i.globals, st)
	if err != nil {
		return Value{}, false, err
	}
	return out.Value, out.HasValue, nil
}

// Run evaluates a program statement by statement against the top-level
// scope. A top-level return stops the program and yields its value;
// otherwise the result is the value of the last expression statement, or Unit.
func (i *Interpreter) Run(prog ast.Program) (Value, error) {
	out, err := i.execSeq(i.globals, ast.Block(prog))
	if err != nil {
		return Value{}, err
	}
	return out.Value, nil
}

// Reset discards every top-level binding
func (i *Interpreter) Reset() {
	i.globals = NewScope()
	i.depth = 0
}

// Bindings returns the top-level bindings in declaration order
func (i *Interpreter) Bindings() []Binding {
	return i.globals.Bindings()
}

// Lookup returns the value of a top-level binding
func (i *Interpreter) Lookup(name string) (Value, error) {
	return i.globals.Lookup(name)
}
