package logsmith

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strconv"
	"strings"
	"time"
)

// processStart anchors the relative-created clock.
var processStart = time.Now()

// Fields is a structured-fields mapping attached to a record. Values
// are rendered with the serialization rules of the formatter (strings
// single-quoted, numbers and booleans bare, nil as null, nested maps
// recursively).
type Fields map[string]any

// Record is an immutable snapshot of one log event, captured at
// emission and shared by pointer with every sink. Sinks must not
// mutate it.
type Record struct {
	Time       time.Time
	Level      Level
	LevelName  string
	LoggerName string

	// Message is the format template; Args are its operands. The
	// final text is produced lazily, only after severity filtering.
	Message string
	Args    []any

	// Fields is the merged structured-fields mapping. On key
	// collision, per-call keyword fields win over the Fields map.
	Fields Fields

	// Call site.
	FilePath string
	FileName string
	Line     int
	FuncName string

	// Execution context.
	GoroutineID     int64
	ThreadName      string
	TaskName        string
	ProcessID       int
	ProcessName     string
	RelativeCreated int64 // milliseconds since process start

	// Diagnostics, already rendered.
	ExcText   string
	StackText string
}

// RenderedMessage expands the message template with its arguments.
// Values that cannot be formatted are coerced via a safe
// stringification; rendering never panics.
func (r *Record) RenderedMessage() (text string) {
	defer func() {
		if rec := recover(); rec != nil {
			text = fmt.Sprintf("%s !MESSAGE-RENDER-FAILED(%v)", r.Message, rec)
		}
	}()
	if len(r.Args) == 0 {
		return r.Message
	}
	return fmt.Sprintf(r.Message, r.Args...)
}

// newRecord captures a snapshot for one emission. skip is the number
// of stack frames between the call site and newRecord.
func newRecord(name string, level Level, msg string, args []any, opts *emitOptions, taskName string, skip int) *Record {
	now := time.Now()
	rec := &Record{
		Time:            now,
		Level:           level,
		LevelName:       levelReg.nameFor(level),
		LoggerName:      name,
		Message:         msg,
		Args:            args,
		Fields:          opts.fields,
		TaskName:        taskName,
		ProcessID:       os.Getpid(),
		ProcessName:     processName(),
		RelativeCreated: now.Sub(processStart).Milliseconds(),
	}

	if pc, file, line, ok := runtime.Caller(skip); ok {
		rec.FilePath = file
		rec.FileName = filepath.Base(file)
		rec.Line = line
		if fn := runtime.FuncForPC(pc); fn != nil {
			rec.FuncName = shortFuncName(fn.Name())
		}
	}

	gid := goroutineID()
	rec.GoroutineID = gid
	rec.ThreadName = "goroutine-" + strconv.FormatInt(gid, 10)

	if opts.err != nil {
		rec.ExcText = fmt.Sprintf("%T: %v", opts.err, opts.err)
	}
	if opts.stack {
		rec.StackText = string(debug.Stack())
	}
	return rec
}

// shortFuncName trims the package path from a fully qualified function
// name: "github.com/x/y.(*T).Do" -> "(*T).Do".
func shortFuncName(full string) string {
	if i := strings.LastIndexByte(full, '/'); i >= 0 {
		full = full[i+1:]
	}
	if dot := strings.IndexByte(full, '.'); dot >= 0 {
		return full[dot+1:]
	}
	return full
}

// goroutineID extracts the current goroutine's ID from the runtime
// stack header ("goroutine N [running]:").
func goroutineID() int64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	header := buf[:n]
	header = bytes.TrimPrefix(header, []byte("goroutine "))
	if i := bytes.IndexByte(header, ' '); i > 0 {
		if id, err := strconv.ParseInt(string(header[:i]), 10, 64); err == nil {
			return id
		}
	}
	return 0
}

// processName resolves a best-effort human-readable process name.
func processName() string {
	if exe, err := os.Executable(); err == nil && exe != "" {
		return filepath.Base(exe)
	}
	if comm, err := os.ReadFile("/proc/self/comm"); err == nil {
		if name := string(bytes.TrimSpace(comm)); name != "" {
			return name
		}
	}
	if len(os.Args) > 0 && os.Args[0] != "" {
		return filepath.Base(os.Args[0])
	}
	return ""
}
