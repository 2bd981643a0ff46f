package interpreter

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateBinding     = errors.New("duplicate binding")
	ErrUnknownVariable      = errors.New("unknown variable")
	ErrTypeMismatch         = errors.New("type mismatch")
	ErrNotCallable          = errors.New("not callable")
	ErrArityMismatch        = errors.New("arity mismatch")
	ErrDivisionByZero       = errors.New("division by zero")
	ErrUncomparableFunction = errors.New("functions cannot be compared")
	ErrIntegerOverflow      = errors.New("integer overflow")
	ErrCallDepthExceeded    = errors.New("maximum call depth exceeded")
)

// RuntimeError is the error returned by every failing evaluation. Kind is
// one of the Err* sentinels, so errors.Is(err, ErrUnknownVariable) works.
type RuntimeError struct {
	Kind     error
	Name     string // variable name, for DuplicateBinding and UnknownVariable
	Expected string // expected type or arity
	Found    string // actual type or arity
}

func (e *RuntimeError) Error() string {
	switch e.Kind {
	case ErrDuplicateBinding:
		return fmt.Sprintf("variable `%s` is already declared in this block", e.Name)
	case ErrUnknownVariable:
		return fmt.Sprintf("no such variable: %s", e.Name)
	case ErrTypeMismatch:
		return fmt.Sprintf("type mismatch: expected %s, found %s", e.Expected, e.Found)
	case ErrArityMismatch:
		return fmt.Sprintf("expected %s arguments, found %s", e.Expected, e.Found)
	case ErrNotCallable:
		if e.Found != "" {
			return fmt.Sprintf("%s is not callable", e.Found)
		}
	case ErrCallDepthExceeded:
		if e.Expected != "" {
			return fmt.Sprintf("maximum call depth of %s exceeded", e.Expected)
		}
	}
	return e.Kind.Error()
}

func (e *RuntimeError) Unwrap() error {
	return e.Kind
}

func duplicateBinding(name string) error {
	return &RuntimeError{Kind: ErrDuplicateBinding, Name: name}
}

func unknownVariable(name string) error {
	return &RuntimeError{Kind: ErrUnknownVariable, Name: name}
}

func typeMismatch(expected, found string) error {
	return &RuntimeError{Kind: ErrTypeMismatch, Expected: expected, Found: found}
}

func notCallable(what string) error {
	return &RuntimeError{Kind: ErrNotCallable, Found: what}
}

func arityMismatch(expected, found int) error {
	return &RuntimeError{Kind: ErrArityMismatch, Expected: fmt.Sprint(expected), Found: fmt.Sprint(found)}
}

func callDepthExceeded(limit int) error {
	return &RuntimeError{Kind: ErrCallDepthExceeded, Expected: fmt.Sprint(limit)}
}

var (
	errDivisionByZero       = &RuntimeError{Kind: ErrDivisionByZero}
	errUncomparableFunction = &RuntimeError{Kind: ErrUncomparableFunction}
	errIntegerOverflow      = &RuntimeError{Kind: ErrIntegerOverflow}
)
