package logsmith

import (
	"strings"
	"testing"
	"time"

	"github.com/Iron-Ham/logsmith/ansi"
)

func testRecord() *Record {
	return &Record{
		Time:            time.Date(2024, time.May, 4, 12, 34, 56, 789000000, time.UTC),
		Level:           INFO,
		LevelName:       "INFO",
		LoggerName:      "app.api",
		Message:         "handled %s in %dms",
		Args:            []any{"/users", 12},
		FilePath:        "/src/app/server.go",
		FileName:        "server.go",
		Line:            42,
		FuncName:        "handleUsers",
		GoroutineID:     7,
		ThreadName:      "goroutine-7",
		TaskName:        "ingest",
		ProcessID:       4321,
		ProcessName:     "apiserver",
		RelativeCreated: 1500,
	}
}

func TestPlainFormatterSimpleMode(t *testing.T) {
	f := newPlainFormatter(nil)
	got := f.format(testRecord())

	want := "2024-05-04 12:34:56.789 • INFO     • handled /users in 12ms"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestPlainFormatterStrictOrdering(t *testing.T) {
	details, err := NewDetails("%H:%M:%S", "|",
		&OptionalFields{
			LoggerName: true, FileName: true, Lineno: true, FuncName: true,
			ThreadID: true, ProcessID: true, RelativeCreated: true,
			ThreadName: true, TaskName: true, ProcessName: true, FilePath: true,
		},
		[]string{
			"logger_name", "level", "file_path", "file_name", "lineno",
			"func_name", "thread_id", "thread_name", "task_name",
			"process_id", "process_name", "relative_created",
		}, false)
	if err != nil {
		t.Fatalf("NewDetails failed: %v", err)
	}

	got := newPlainFormatter(details).format(testRecord())
	want := "12:34:56 | LOGGER=app.api | INFO     | /src/app/server.go | server.go | L=42 | handleUsers | th=7 | goroutine-7 | ingest | P=4321 | apiserver | 1500 | handled /users in 12ms"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestFormatterStructuredFields(t *testing.T) {
	t.Run("serialization rules", func(t *testing.T) {
		rec := testRecord()
		rec.Fields = Fields{
			"name":    "ada",
			"count":   3,
			"ratio":   0.5,
			"ok":      true,
			"nothing": nil,
			"nested":  map[string]any{"b": 2, "a": "x"},
		}
		got := newPlainFormatter(nil).format(rec)
		want := "{ count = 3, name = 'ada', nested = { a = 'x', b = 2 }, nothing = null, ok = true, ratio = 0.5 }"
		if !strings.HasSuffix(got, want) {
			t.Errorf("expected suffix %q, got %q", want, got)
		}
	})

	t.Run("no fields no braces", func(t *testing.T) {
		got := newPlainFormatter(nil).format(testRecord())
		if strings.Contains(got, "{") {
			t.Errorf("expected no field block, got %q", got)
		}
	})
}

func TestFormatterDiagnostics(t *testing.T) {
	details, err := NewDetails("", "", &OptionalFields{ExcInfo: true, StackInfo: true}, nil, false)
	if err != nil {
		t.Fatalf("NewDetails failed: %v", err)
	}

	rec := testRecord()
	rec.ExcText = "*errors.errorString: boom"
	rec.StackText = "goroutine 7 [running]:\nmain.main()"

	t.Run("plain appends on following lines", func(t *testing.T) {
		got := newPlainFormatter(details).format(rec)
		lines := strings.Split(got, "\n")
		if len(lines) < 3 {
			t.Fatalf("expected diagnostics lines, got %q", got)
		}
		if lines[1] != "*errors.errorString: boom" {
			t.Errorf("expected exc text on second line, got %q", lines[1])
		}
		if !strings.Contains(got, "main.main()") {
			t.Errorf("expected stack text, got %q", got)
		}
	})

	t.Run("color mode labels the blocks", func(t *testing.T) {
		got := newColorFormatter(details).format(rec)
		if !strings.Contains(got, "{ exc_info }") || !strings.Contains(got, "{ stack_info }") {
			t.Errorf("expected diagnostics headers, got %q", got)
		}
	})

	t.Run("disabled diagnostics are dropped", func(t *testing.T) {
		got := newPlainFormatter(nil).format(rec)
		if strings.Contains(got, "boom") || strings.Contains(got, "main.main") {
			t.Errorf("diagnostics leaked into simple mode: %q", got)
		}
	})
}

func TestColorFormatter(t *testing.T) {
	t.Run("level token wears its style", func(t *testing.T) {
		got := newColorFormatter(nil).format(testRecord())
		// INFO default style: neon green foreground
		if !strings.Contains(got, "\x1b[22;38;5;46mINFO") {
			t.Errorf("expected styled level token, got %q", got)
		}
	})

	t.Run("stripping color output yields the plain rendering", func(t *testing.T) {
		color := newColorFormatter(nil).format(testRecord())
		plain := newPlainFormatter(nil).format(testRecord())
		if ansi.Strip(color) != plain {
			t.Errorf("expected stripped color output to equal plain output:\n%q\n%q", ansi.Strip(color), plain)
		}
	})

	t.Run("plain mode emits no escape bytes", func(t *testing.T) {
		got := newPlainFormatter(nil).format(testRecord())
		if strings.ContainsRune(got, '\x1b') {
			t.Errorf("plain output contains ESC: %q", got)
		}
	})

	t.Run("color_all_fields styles the metadata", func(t *testing.T) {
		details, err := NewDetails("", "", &OptionalFields{LoggerName: true},
			[]string{"level", "logger_name"}, true)
		if err != nil {
			t.Fatalf("NewDetails failed: %v", err)
		}
		got := newColorFormatter(details).format(testRecord())
		if !strings.Contains(got, "\x1b[22;38;5;46mLOGGER=app.api") {
			t.Errorf("expected level-styled metadata, got %q", got)
		}
	})
}

func TestAuditFormatter(t *testing.T) {
	got := newAuditFormatter(nil).format(testRecord())
	if !strings.HasPrefix(got, "[app.api]: ") {
		t.Errorf("expected source prefix, got %q", got)
	}
	if !strings.HasSuffix(got, "handled /users in 12ms") {
		t.Errorf("expected plain rendering after prefix, got %q", got)
	}
}

func TestRenderFieldValue(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{"s", "'s'"},
		{7, "7"},
		{int64(-2), "-2"},
		{1.25, "1.25"},
		{false, "false"},
		{nil, "null"},
		{Fields{"k": "v"}, "{ k = 'v' }"},
	}
	for _, tt := range tests {
		if got := renderFieldValue(tt.in); got != tt.want {
			t.Errorf("renderFieldValue(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
