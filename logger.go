package logsmith

import (
	"io"
	"path/filepath"
	"slices"
	"sync"
)

// Logger is a named member of the process-wide hierarchy. It owns at
// most one console sink and an ordered list of file sinks, and filters
// emissions by its effective severity (its own, or the nearest
// ancestor's through the dotted-name chain).
//
// All methods are safe for concurrent use. Emission is synchronous on
// the caller's goroutine; there are no background workers or queues.
type Logger struct {
	name string

	mu        sync.Mutex
	level     Level // explicit severity; NOTSET inherits
	console   *consoleSink
	files     []*fileSink
	taskName  string
	retired   bool
	destroyed bool
	last      *Record
}

// Name returns the logger's dotted name.
func (l *Logger) Name() string { return l.name }

// SetLevel sets the explicit severity. NOTSET re-enables inheritance.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.level = level
}

// Level returns the explicit severity (NOTSET when inheriting).
func (l *Logger) Level() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.level
}

// EffectiveLevel resolves the severity used for filtering: the explicit
// severity, or the nearest ancestor's through the dotted-name chain,
// or the root's.
func (l *Logger) EffectiveLevel() Level {
	return reg.effectiveLevel(l.name, l.Level())
}

// SetTaskName attaches an optional task label to subsequently emitted
// records.
func (l *Logger) SetTaskName(name string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.taskName = name
}

// Retired reports whether the logger has been retired.
func (l *Logger) Retired() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.retired
}

// emitOptions collects the structured extras of one emission.
type emitOptions struct {
	fields  Fields // explicit fields mapping
	keyword Fields // per-key fields; win on collision
	err     error
	stack   bool
}

// merged combines the fields mapping and keyword fields, keyword
// winning on collision.
func (o *emitOptions) merged() Fields {
	if len(o.fields) == 0 && len(o.keyword) == 0 {
		return nil
	}
	out := make(Fields, len(o.fields)+len(o.keyword))
	for k, v := range o.fields {
		out[k] = v
	}
	for k, v := range o.keyword {
		out[k] = v
	}
	return out
}

// EmitOption augments a single emission with structured data or
// diagnostics. Options may appear anywhere in an emission call's
// argument list; remaining arguments feed the message template.
type EmitOption func(*emitOptions)

// WithFields attaches a structured-fields mapping to the record.
// Multiple mappings merge; per-key WithField values win on collision.
func WithFields(f Fields) EmitOption {
	return func(o *emitOptions) {
		if o.fields == nil {
			o.fields = make(Fields, len(f))
		}
		for k, v := range f {
			o.fields[k] = v
		}
	}
}

// WithField attaches a single structured field, overriding any
// WithFields entry under the same key.
func WithField(key string, value any) EmitOption {
	return func(o *emitOptions) {
		if o.keyword == nil {
			o.keyword = make(Fields, 1)
		}
		o.keyword[key] = value
	}
}

// WithError attaches an error; the diagnostics block renders it when
// the sink's Details enables exc_info.
func WithError(err error) EmitOption {
	return func(o *emitOptions) { o.err = err }
}

// WithStack captures the emitting goroutine's stack; the diagnostics
// block renders it when stack_info is enabled.
func WithStack() EmitOption {
	return func(o *emitOptions) { o.stack = true }
}

// splitArgs separates format operands from emission options. A bare
// Fields value is shorthand for WithFields.
func splitArgs(args []any) ([]any, *emitOptions) {
	opts := &emitOptions{}
	fmtArgs := make([]any, 0, len(args))
	for _, a := range args {
		switch v := a.(type) {
		case EmitOption:
			v(opts)
		case Fields:
			WithFields(v)(opts)
		default:
			fmtArgs = append(fmtArgs, a)
		}
	}
	return fmtArgs, opts
}

// Trace emits at TRACE severity.
func (l *Logger) Trace(msg string, args ...any) { l.log(TRACE, msg, args) }

// Debug emits at DEBUG severity.
func (l *Logger) Debug(msg string, args ...any) { l.log(DEBUG, msg, args) }

// Info emits at INFO severity.
func (l *Logger) Info(msg string, args ...any) { l.log(INFO, msg, args) }

// Warning emits at WARNING severity.
func (l *Logger) Warning(msg string, args ...any) { l.log(WARNING, msg, args) }

// Error emits at ERROR severity.
func (l *Logger) Error(msg string, args ...any) { l.log(ERROR, msg, args) }

// Critical emits at CRITICAL severity.
func (l *Logger) Critical(msg string, args ...any) { l.log(CRITICAL, msg, args) }

// Log emits at an arbitrary severity.
func (l *Logger) Log(level Level, msg string, args ...any) { l.log(level, msg, args) }

// Emit logs under a registered level name, the emission path for
// user-registered levels. Unknown names are dropped.
func (l *Logger) Emit(levelName string, msg string, args ...any) {
	e := levelReg.lookup(levelName)
	if e == nil {
		return
	}
	l.log(e.value, msg, args)
}

// log is the single dispatch path: severity filter, record capture,
// fan-out to the console sink, each file sink in order, and the audit
// sink when auditing is active. Emission into a retired or destroyed
// logger is dropped silently.
func (l *Logger) log(level Level, msg string, args []any) {
	l.mu.Lock()
	if l.retired || l.destroyed {
		l.mu.Unlock()
		return
	}
	explicit := l.level
	console := l.console
	files := slices.Clone(l.files)
	task := l.taskName
	l.mu.Unlock()

	if level < reg.effectiveLevel(l.name, explicit) {
		return
	}

	fmtArgs, opts := splitArgs(args)
	opts.fields = opts.merged()
	rec := newRecord(l.name, level, msg, fmtArgs, opts, task, 3)

	l.mu.Lock()
	l.last = rec
	l.mu.Unlock()

	if console != nil {
		console.emit(rec)
	}
	for _, f := range files {
		f.emit(rec)
	}
	auditDispatch(rec)
}

// Raw writes text to every sink, bypassing formatting and severity
// filtering. The console repaints uncolored stretches with the default
// foreground; file sinks strip ANSI unless opened with preserveANSI.
// Raw on a retired logger is dropped silently.
func (l *Logger) Raw(text string) {
	l.mu.Lock()
	if l.retired || l.destroyed {
		l.mu.Unlock()
		return
	}
	console := l.console
	files := slices.Clone(l.files)
	l.mu.Unlock()

	if console != nil {
		console.writeRaw(text)
	}
	for _, f := range files {
		f.writeRaw(text)
	}
}

// LastRecord returns the most recently emitted record, for test
// inspection. Nil before the first emission.
func (l *Logger) LastRecord() *Record {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.last
}

// AddConsole attaches a console sink writing to stdout. level filters
// records below it (NOTSET accepts everything the logger passes);
// details configures formatting, nil meaning the default. At most one
// console sink is allowed per logger.
func (l *Logger) AddConsole(level Level, details *Details) error {
	return l.addConsoleWriter(nil, level, details)
}

// addConsoleWriter is AddConsole with an injectable writer, used by
// tests.
func (l *Logger) addConsoleWriter(out io.Writer, level Level, details *Details) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.destroyed {
		return ErrDestroyed
	}
	if l.retired {
		return ErrRetired
	}
	if l.console != nil {
		return ErrConsoleExists
	}
	l.console = newConsoleSink(out, level, details)
	return nil
}

// RemoveConsole detaches and closes the console sink.
func (l *Logger) RemoveConsole() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.console == nil {
		return ErrNoConsole
	}
	err := l.console.close()
	l.console = nil
	return err
}

// AddFile attaches a rotating file sink at dir/name. dir must be
// absolute and is created if missing; an empty name defaults to
// "<logger>.log". level filters below the logger's own filter; details
// configures the plain formatter; logic configures rotation (nil means
// append-only). With preserveANSI the sink writes each record's
// rendered message only, escape sequences included, without the
// timestamp, level or other fields; details is not used in that case.
//
// A file already served by any logger's active file sink in this
// process is rejected, which catches duplicated configuration. The
// audit sink's file is not part of this check.
func (l *Logger) AddFile(dir, name string, level Level, details *Details, logic *RotationLogic, preserveANSI bool) error {
	if name == "" {
		name = l.name + ".log"
	}
	if path := filepath.Join(dir, name); reg.filePathInUse(path) {
		return newConfigError("log file", "a sink for %q is already active in this process", path)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if l.destroyed {
		return ErrDestroyed
	}
	if l.retired {
		return ErrRetired
	}

	var format recordFormatter
	if preserveANSI {
		format = passthroughFormatter{}
	} else {
		format = newPlainFormatter(details)
	}

	sink, err := newFileSink(dir, name, level, format, logic, preserveANSI)
	if err != nil {
		return err
	}
	l.files = append(l.files, sink)
	return nil
}

// RemoveFile detaches and closes the file sink identified by the
// (dir, name) pair given to AddFile.
func (l *Logger) RemoveFile(dir, name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i, f := range l.files {
		if f.dir == dir && f.name == name {
			l.files = append(l.files[:i], l.files[i+1:]...)
			return f.close()
		}
	}
	return newConfigError("log file", "no file sink for %q/%q on logger %q", dir, name, l.name)
}

// SinkTargets lists this logger's output destinations: "console" for
// the console sink and the active file path for each file sink.
func (l *Logger) SinkTargets() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []string
	if l.console != nil {
		out = append(out, "console")
	}
	for _, f := range l.files {
		out = append(out, f.target())
	}
	return out
}

// filePaths returns, for each file sink of this logger, its active
// file path and the dir/name path given to AddFile.
func (l *Logger) filePaths() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]string, 0, len(l.files))
	for _, f := range l.files {
		out = append(out, f.path, filepath.Join(f.dir, f.name))
	}
	return out
}

// Retire flushes and closes every sink and marks the logger retired.
// Subsequent emissions are dropped silently; the name stays reserved
// in the registry until Destroy. Idempotent.
func (l *Logger) Retire() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.retired {
		return
	}
	if l.console != nil {
		_ = l.console.close()
		l.console = nil
	}
	for _, f := range l.files {
		if err := f.flush(); err != nil {
			reportSinkError(f.target(), err)
		}
		if err := f.close(); err != nil {
			reportSinkError(f.target(), err)
		}
	}
	l.files = nil
	l.retired = true
}

// Destroy retires the logger and removes it from the registry; a
// subsequent Get under the same name creates a fresh logger. Safe to
// call repeatedly.
func (l *Logger) Destroy() {
	l.Retire()
	l.mu.Lock()
	already := l.destroyed
	l.destroyed = true
	l.mu.Unlock()
	if !already {
		reg.remove(l.name)
	}
}
