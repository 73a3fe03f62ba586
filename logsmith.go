package logsmith

import (
	"strings"
	"sync"
)

// registry is the process-wide name -> Logger mapping plus the
// internal root. It is built at package initialization and never torn
// down; get/retire/destroy are serialized by its mutex.
type registry struct {
	mu        sync.Mutex
	loggers   map[string]*Logger
	rootLevel Level
}

var reg = &registry{
	loggers:   make(map[string]*Logger),
	rootLevel: WARNING,
}

// Initialize installs the internal root with the given default
// severity. Calling it again replaces the root's severity; loggers
// inheriting through NOTSET observe the change immediately.
func Initialize(level Level) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	reg.rootLevel = level
}

// RootLevel returns the root's severity.
func RootLevel() Level {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	return reg.rootLevel
}

// Get returns the logger with the given dotted name, creating it if
// absent. A newly created logger has no sinks and the given explicit
// severity (NOTSET inherits from the parent chain). An existing logger
// is returned as-is: a retired logger stays retired until it is
// destroyed and recreated. The name "root" is reserved.
func Get(name string, level Level) (*Logger, error) {
	if name == "" {
		return nil, newConfigError("name", "must not be empty")
	}
	if name == "root" {
		return nil, &NameConflictError{Name: name, Reason: "reserved for the internal root"}
	}

	reg.mu.Lock()
	defer reg.mu.Unlock()
	if l, ok := reg.loggers[name]; ok {
		return l, nil
	}
	l := &Logger{name: name, level: level}
	reg.loggers[name] = l
	return l, nil
}

// MustGet is Get for names known to be valid; it panics otherwise.
func MustGet(name string, level Level) *Logger {
	l, err := Get(name, level)
	if err != nil {
		panic("logsmith: " + err.Error())
	}
	return l
}

// effectiveLevel resolves severity for a logger: its explicit level,
// else the nearest ancestor with a set level through the dotted-name
// chain, else the root's.
func (r *registry) effectiveLevel(name string, explicit Level) Level {
	if explicit != NOTSET {
		return explicit
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for {
		dot := strings.LastIndexByte(name, '.')
		if dot < 0 {
			return r.rootLevel
		}
		name = name[:dot]
		if parent, ok := r.loggers[name]; ok {
			parent.mu.Lock()
			lvl := parent.level
			parent.mu.Unlock()
			if lvl != NOTSET {
				return lvl
			}
		}
	}
}

// remove deletes a destroyed logger from the registry.
func (r *registry) remove(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.loggers, name)
}

// filePathInUse reports whether any registered logger's file sink
// serves the given file path. The audit sink is not checked.
func (r *registry) filePathInUse(path string) bool {
	r.mu.Lock()
	loggers := make([]*Logger, 0, len(r.loggers))
	for _, l := range r.loggers {
		loggers = append(loggers, l)
	}
	r.mu.Unlock()

	for _, l := range loggers {
		for _, p := range l.filePaths() {
			if p == path {
				return true
			}
		}
	}
	return false
}
