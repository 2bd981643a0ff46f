package logger

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/muesli/termenv"
)

// Init installs the default logger on stderr and returns it. Only warnings
// and errors are shown unless verbose is set.
func Init(verbose, noColor bool) *log.Logger {
	return InitWriter(os.Stderr, verbose, noColor)
}

// InitWriter is Init with an explicit destination
func InitWriter(w io.Writer, verbose, noColor bool) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportCaller:    verbose,
		ReportTimestamp: false, // the REPL prompt already gives context
		Prefix:          "SIREN",
		Level:           log.WarnLevel,
	})

	if verbose {
		l.SetLevel(log.DebugLevel)
	}

	l.SetColorProfile(termenv.ANSI256)
	if noColor {
		l.SetColorProfile(termenv.Ascii)
	}

	log.SetDefault(l)
	return l
}
