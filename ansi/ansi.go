// Package ansi renders text with ANSI SGR escape sequences.
//
// The package is the color engine behind logsmith: formatters use it to
// wrap level tokens and messages in CSI sequences, and sinks use it to
// strip or escape sequences before writing to plain destinations.
//
// Codes are kept in their on-the-wire form: a [Code] is the payload of
// an SGR parameter list, e.g. "31" for red or "38;5;208" for 256-color
// orange. [Colorize] joins any number of codes into a single sequence
// and appends a reset, so output never bleeds into adjacent text.
//
// All rendering functions are pure: they neither inspect the terminal
// nor consult the environment. Callers that want to make a color/no-color
// decision should use [TerminalSupportsColor].
package ansi

import (
	"fmt"
	"os"
	"strings"

	xansi "github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Code is an SGR parameter list fragment, e.g. "1", "31" or "38;5;208".
// The empty Code renders nothing.
type Code string

// Reset terminates any active SGR attributes.
const Reset = "\x1b[0m"

// Intensity codes.
const (
	Normal Code = "22"
	Bold   Code = "1"
	Dim    Code = "2"
)

// Style codes.
const (
	Italic    Code = "3"
	Underline Code = "4"
	Strike    Code = "9"
)

// join concatenates non-empty codes into a single CSI sequence.
// Returns "" when no codes are given.
func join(codes []Code) string {
	parts := make([]string, 0, len(codes))
	for _, c := range codes {
		if c != "" {
			parts = append(parts, string(c))
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return "\x1b[" + strings.Join(parts, ";") + "m"
}

// Colorize wraps text in a single SGR sequence built from codes,
// followed by a reset. Empty codes are skipped; with no effective
// codes the text is returned unchanged.
func Colorize(text string, codes ...Code) string {
	prefix := join(codes)
	if prefix == "" {
		return text
	}
	return prefix + text + Reset
}

// Foreground is shorthand for Colorize with a single foreground code.
func Foreground(text string, fg Code) string {
	return Colorize(text, fg)
}

// Strip removes all ANSI escape sequences from s. It is idempotent:
// Strip(Strip(s)) == Strip(s), and plain text passes through unchanged.
func Strip(s string) string {
	return xansi.Strip(s)
}

// EscapeColorCodes makes ANSI sequences visible by escaping the ESC
// byte only. Cursor movement and other control characters that do not
// start with ESC are left untouched.
func EscapeColorCodes(s string) string {
	return strings.ReplaceAll(s, "\x1b", `\x1b`)
}

// EscapeControl escapes every control character (including ESC, BEL and
// DEL) so the terminal displays the sequence literally. Useful when
// logging untrusted input that may contain terminal control codes.
func EscapeControl(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 32 || r == 127 {
			fmt.Fprintf(&b, `\x%02x`, r)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// TerminalSupportsColor reports whether stdout is attached to a
// terminal that understands SGR color sequences. NO_COLOR and related
// environment conventions are honored via termenv.
func TerminalSupportsColor() bool {
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return false
	}
	return termenv.EnvColorProfile() != termenv.Ascii
}
