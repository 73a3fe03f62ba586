package logsmith

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/Iron-Ham/logsmith/ansi"
)

// consoleSink serializes colorized writes to a terminal stream. At
// most one exists per logger. The raw path writes the payload only,
// bypassing formatting; uncolored stretches of a raw payload are
// repainted with the console default foreground so gradients and
// banners sit on a consistent base color.
type consoleSink struct {
	mu     sync.Mutex
	out    io.Writer
	format recordFormatter
	level  Level
	closed bool
}

func newConsoleSink(out io.Writer, level Level, details *Details) *consoleSink {
	if out == nil {
		out = os.Stdout
	}
	return &consoleSink{
		out:    out,
		format: newColorFormatter(details),
		level:  level,
	}
}

func (s *consoleSink) emit(rec *Record) {
	if s.level != NOTSET && rec.Level < s.level {
		return
	}
	line := s.format.format(rec)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if _, err := io.WriteString(s.out, line+"\n"); err != nil {
		reportSinkError("console", err)
	}
}

func (s *consoleSink) writeRaw(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if _, err := io.WriteString(s.out, bleachUncolored(text)+"\n"); err != nil {
		reportSinkError("console", err)
	}
}

func (s *consoleSink) close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// bleachUncolored repaints stretches of text that sit outside any
// active ANSI color span with the console default foreground.
// Whitespace-only stretches pass through untouched.
func bleachUncolored(text string) string {
	var out strings.Builder
	var plain strings.Builder
	colorActive := false

	flushPlain := func() {
		if plain.Len() == 0 {
			return
		}
		chunk := plain.String()
		plain.Reset()
		if strings.TrimSpace(chunk) != "" {
			out.WriteString(ansi.Foreground(chunk, ansi.FG.ConsoleDefault))
		} else {
			out.WriteString(chunk)
		}
	}

	i := 0
	for i < len(text) {
		if text[i] == '\x1b' {
			if !colorActive {
				flushPlain()
			}
			start := i
			i++
			for i < len(text) && text[i] != 'm' {
				i++
			}
			if i < len(text) {
				i++ // include the terminating 'm'
			}
			seq := text[start:i]
			out.WriteString(seq)
			colorActive = !strings.HasSuffix(seq, "[0m")
			continue
		}
		if colorActive {
			out.WriteByte(text[i])
		} else {
			plain.WriteByte(text[i])
		}
		i++
	}
	if !colorActive {
		flushPlain()
	}
	return out.String()
}
