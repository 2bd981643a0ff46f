package runner

import (
	"errors"
	"fmt"
	"io"
	"os"

	"siren/pkg/color"
	"siren/pkg/interpreter"
	"siren/pkg/parser"

	"github.com/charmbracelet/log"
)

type Runner struct {
	Verbose      bool      // Enable verbose output
	NoColor      bool      // Disable colored output
	PrintAST     bool      // Print the parsed program before running it
	MaxCallDepth int       // Maximum nested calls (0 = unlimited)
	SourceFile   string    // Path to the source file
	Out          io.Writer // Program output and diagnostics (default os.Stdout)
}

// Run reads the source file and evaluates it.
func (opts *Runner) Run() error {
	log.Info("Running file", "file", opts.SourceFile)

	input, err := os.ReadFile(opts.SourceFile)
	if err != nil {
		return fmt.Errorf("read %s: %w", opts.SourceFile, err)
	}

	return opts.RunSource(string(input))
}

// RunSource parses src, reports the first syntax error if any, and runs the
// program. The final value is printed unless it is unit.
func (opts *Runner) RunSource(src string) error {
	if opts.NoColor {
		color.EnableColor(false)
	}
	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	prog, err := parser.Parse(src)
	if err != nil {
		var syntaxErrors parser.ErrorList
		if errors.As(err, &syntaxErrors) && len(syntaxErrors) > 0 {
			first := syntaxErrors[0]
			fmt.Fprintln(out, color.BrightRedText("=== Syntax Errors ==="))
			fmt.Fprintln(out, color.ErrorWithPosition(first.Pos.Line, first.Pos.Column, first.Msg,
				color.Caret(src, first.Pos.Line, first.Pos.Column)))
		}
		return fmt.Errorf("parsing failed with %d errors: %w", len(syntaxErrors), err)
	}

	if opts.Verbose {
		log.Info("Parsed program", "statements", len(prog), "ast", prog.String())
	}

	if opts.PrintAST {
		fmt.Fprintln(out, color.GreenText("=== AST ==="))
		if len(prog) == 0 {
			fmt.Fprintln(out, color.GrayText("Empty program."))
		} else {
			fmt.Fprintln(out, prog)
		}
	}

	it := interpreter.New(
		interpreter.WithMaxCallDepth(opts.MaxCallDepth),
		interpreter.WithLogger(log.Default()),
	)

	v, err := it.Run(prog)
	if err != nil {
		fmt.Fprintln(out, color.RedText("=== Runtime Error ==="))
		fmt.Fprintln(out, color.Error(err.Error()))
		return fmt.Errorf("evaluation failed: %w", err)
	}

	if !v.IsUnit() {
		fmt.Fprintln(out, v)
	}
	return nil
}
