package interpreter_test

import (
	"errors"
	"os"
	"path/filepath"
	"siren/pkg/interpreter"
	"siren/pkg/parser"
	"testing"

	"gopkg.in/yaml.v3"
)

type fixture struct {
	Name   string `yaml:"name"`
	Source string `yaml:"source"`
	Result string `yaml:"result"`
	Error  string `yaml:"error"`
}

var fixtureErrors = map[string]error{
	"duplicate binding": interpreter.ErrDuplicateBinding,
	"unknown variable":  interpreter.ErrUnknownVariable,
	"type mismatch":     interpreter.ErrTypeMismatch,
	"not callable":      interpreter.ErrNotCallable,
	"arity mismatch":    interpreter.ErrArityMismatch,
	"division by zero":  interpreter.ErrDivisionByZero,
	"uncomparable":      interpreter.ErrUncomparableFunction,
	"integer overflow":  interpreter.ErrIntegerOverflow,
	"call depth":        interpreter.ErrCallDepthExceeded,
}

func loadFixtures(t *testing.T) []fixture {
	t.Helper()

	paths, err := filepath.Glob(filepath.Join("testdata", "*.yaml"))
	if err != nil {
		t.Fatalf("glob fixtures: %v", err)
	}
	if len(paths) == 0 {
		t.Fatal("no fixtures found in testdata")
	}

	var all []fixture
	for _, path := range paths {
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read %s: %v", path, err)
		}
		var fs []fixture
		if err := yaml.Unmarshal(data, &fs); err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
		all = append(all, fs...)
	}
	return all
}

func TestFixtures(t *testing.T) {
	for _, fx := range loadFixtures(t) {
		t.Run(fx.Name, func(t *testing.T) {
			prog, err := parser.Parse(fx.Source)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}

			got, err := interpreter.New().Run(prog)

			if fx.Error != "" {
				want, ok := fixtureErrors[fx.Error]
				if !ok {
					t.Fatalf("unknown error kind %q in fixture", fx.Error)
				}
				if !errors.Is(err, want) {
					t.Errorf("expected %v, got %v", want, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != fx.Result {
				t.Errorf("expected %s, got %s", fx.Result, got)
			}
		})
	}
}
