package color

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"
)

var (
	profile      = termenv.EnvColorProfile()
	colorEnabled = true
)

func init() {
	if termenv.EnvNoColor() || profile == termenv.Ascii {
		colorEnabled = false
	}
}

// EnableColor turns styling on or off for every helper in this package.
// Enabling color on a terminal without color support falls back to ANSI.
func EnableColor(enable bool) {
	colorEnabled = enable
	if enable && profile == termenv.Ascii {
		profile = termenv.ANSI
	}
}

func IsColorEnabled() bool {
	return colorEnabled
}

func style(text string, c termenv.Color, bold bool) string {
	if !colorEnabled {
		return text
	}
	s := profile.String(text)
	if c != nil {
		s = s.Foreground(c)
	}
	if bold {
		s = s.Bold()
	}
	return s.String()
}

func RedText(text string) string {
	return style(text, termenv.ANSIRed, false)
}

func BrightRedText(text string) string {
	return style(text, termenv.ANSIBrightRed, false)
}

func GreenText(text string) string {
	return style(text, termenv.ANSIGreen, false)
}

func YellowText(text string) string {
	return style(text, termenv.ANSIYellow, false)
}

func CyanText(text string) string {
	return style(text, termenv.ANSICyan, false)
}

func GrayText(text string) string {
	return style(text, termenv.ANSIBrightBlack, false)
}

func BoldText(text string) string {
	return style(text, nil, true)
}

func Error(message string) string {
	if !colorEnabled {
		return "Error: " + message
	}
	return style("Error: ", termenv.ANSIBrightRed, true) + message
}

func Position(line, col int) string {
	return CyanText(fmt.Sprintf("%d:%d", line, col))
}

// Caret renders the source line with a marker under col (1-based).
func Caret(source string, line, col int) string {
	lines := strings.Split(source, "\n")
	if line < 1 || line > len(lines) {
		return ""
	}
	text := strings.TrimRight(lines[line-1], "\r")
	pad := strings.Repeat(" ", max(col-1, 0))
	return GrayText(text) + "\n" + pad + YellowText("^")
}

func ErrorWithPosition(line, col int, message, context string) string {
	if !colorEnabled {
		if context == "" {
			return fmt.Sprintf("Error at %d:%d: %s", line, col, message)
		}
		return fmt.Sprintf("Error at %d:%d: %s\n%s", line, col, message, context)
	}

	head := fmt.Sprintf("%s at %s: %s",
		style("Error", termenv.ANSIBrightRed, true),
		Position(line, col),
		message)
	if context == "" {
		return head
	}
	return head + "\n" + context
}
