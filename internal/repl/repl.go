package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"siren/internal/config"
	"siren/pkg/color"
	"siren/pkg/interpreter"
	"siren/pkg/parser"

	"github.com/charmbracelet/log"
	"github.com/peterh/liner"
)

const banner = "Siren REPL. Type :help for commands, Ctrl+D to exit."

const help = `Commands:
  :env     list top-level bindings
  :reset   discard every binding
  :help    show this message
  :quit    leave the REPL

Input spanning several lines is read until it parses.`

// Prompter reads one line of input. *liner.State satisfies it.
type Prompter interface {
	Prompt(prompt string) (string, error)
}

// REPL evaluates statements against one persistent top-level scope.
type REPL struct {
	cfg config.Config
	out io.Writer
	it  *interpreter.Interpreter
}

func New(cfg config.Config, out io.Writer) *REPL {
	if out == nil {
		out = os.Stdout
	}
	return &REPL{
		cfg: cfg,
		out: out,
		it: interpreter.New(
			interpreter.WithMaxCallDepth(cfg.MaxCallDepth),
			interpreter.WithLogger(log.Default()),
		),
	}
}

// Run drives the interactive loop on the terminal until :quit or Ctrl+D.
func (r *REPL) Run() error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if r.cfg.HistoryFile != "" {
		if f, err := os.Open(r.cfg.HistoryFile); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer r.saveHistory(ln)
	}

	fmt.Fprintln(r.out, color.BoldText(banner))

	for {
		src, ok := ReadInput(ln, r.cfg.Prompt, r.cfg.ContinuationPrompt)
		if !ok {
			fmt.Fprintln(r.out)
			return nil
		}
		if strings.TrimSpace(src) == "" {
			continue
		}

		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
		if quit := r.Eval(src); quit {
			return nil
		}
	}
}

func (r *REPL) saveHistory(ln *liner.State) {
	f, err := os.Create(r.cfg.HistoryFile)
	if err != nil {
		log.Warn("Failed to save history", "file", r.cfg.HistoryFile, "error", err)
		return
	}
	defer f.Close()

	if _, err := ln.WriteHistory(f); err != nil {
		log.Warn("Failed to save history", "file", r.cfg.HistoryFile, "error", err)
	}
}

// ReadInput keeps prompting while the buffered input is an unfinished
// construct. ok is false once the input is closed. Ctrl+C drops the buffer
// and returns empty input.
func ReadInput(p Prompter, prompt, cont string) (src string, ok bool) {
	var b strings.Builder

	for {
		current := prompt
		if b.Len() > 0 {
			current = cont
		}

		line, err := p.Prompt(current)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			log.Error("Failed to read input", "error", err)
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.TrimSpace(src) == "" {
			return src, true
		}
		if _, err := parser.Parse(src); err != nil && parser.IsIncomplete(err) {
			continue
		}
		return src, true
	}
}

// Eval runs one REPL command or one chunk of source. It reports whether
// the session should end.
func (r *REPL) Eval(src string) (quit bool) {
	src = strings.TrimSpace(src)
	if src == "" {
		return false
	}

	if strings.HasPrefix(src, ":") {
		return r.command(src)
	}

	prog, err := parser.Parse(src)
	if err != nil {
		r.syntaxError(src, err)
		return false
	}

	// statements run one at a time so earlier bindings survive a later error
	for _, st := range prog {
		v, ok, err := r.it.Exec(st)
		if err != nil {
			fmt.Fprintln(r.out, color.Error(err.Error()))
			return false
		}
		if ok && !v.IsUnit() {
			fmt.Fprintln(r.out, color.CyanText(v.String()))
		}
	}
	return false
}

func (r *REPL) command(cmd string) (quit bool) {
	switch strings.ToLower(cmd) {
	case ":quit", ":q", ":exit":
		return true

	case ":env":
		bindings := r.it.Bindings()
		if len(bindings) == 0 {
			fmt.Fprintln(r.out, color.GrayText("(no bindings)"))
			return false
		}
		for _, b := range bindings {
			fmt.Fprintf(r.out, "%s = %s\n", color.YellowText(b.Name), b.Value)
		}

	case ":reset":
		r.it.Reset()
		fmt.Fprintln(r.out, color.GrayText("Environment cleared."))

	case ":help":
		fmt.Fprintln(r.out, help)

	default:
		fmt.Fprintf(r.out, "Unknown command %s. Type :help for a list of commands.\n", cmd)
	}
	return false
}

func (r *REPL) syntaxError(src string, err error) {
	var list parser.ErrorList
	if !errors.As(err, &list) || len(list) == 0 {
		fmt.Fprintln(r.out, color.Error(err.Error()))
		return
	}

	first := list[0]
	fmt.Fprintln(r.out, color.ErrorWithPosition(first.Pos.Line, first.Pos.Column, first.Msg,
		color.Caret(src, first.Pos.Line, first.Pos.Column)))
}
