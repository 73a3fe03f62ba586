package logsmith

import (
	"regexp"
	"strconv"
	"sync"

	"github.com/Iron-Ham/logsmith/ansi"
)

// Level is a log severity. Higher values are more severe. NOTSET on a
// logger means "inherit from the parent chain".
type Level int

// Built-in severities.
const (
	NOTSET   Level = 0
	TRACE    Level = 5
	DEBUG    Level = 10
	INFO     Level = 20
	WARNING  Level = 30
	ERROR    Level = 40
	CRITICAL Level = 50
)

// LevelStyle describes how a level's token (and its message) is
// colored: a foreground code, an optional background code, an
// intensity, and zero or more style flags. The zero value renders
// nothing.
type LevelStyle struct {
	FG        ansi.Code
	BG        ansi.Code
	Intensity ansi.Code
	Styles    []ansi.Code
}

// render wraps text in the style's SGR codes. Code order matches the
// wire contract: intensity, foreground, background, styles.
func (s LevelStyle) render(text string) string {
	codes := make([]ansi.Code, 0, 3+len(s.Styles))
	codes = append(codes, s.Intensity, s.FG, s.BG)
	codes = append(codes, s.Styles...)
	return ansi.Colorize(text, codes...)
}

func (s LevelStyle) isZero() bool {
	return s.FG == "" && s.BG == "" && s.Intensity == "" && len(s.Styles) == 0
}

// levelEntry is one registered level. defaultStyle is retained so that
// ApplyColorTheme(nil) can restore it.
type levelEntry struct {
	value        Level
	style        LevelStyle
	defaultStyle LevelStyle
}

// levelRegistry is the process-wide name -> severity/style mapping.
// All access goes through the mutex; reads return snapshots.
type levelRegistry struct {
	mu      sync.Mutex
	entries map[string]*levelEntry
}

var levelNameRE = regexp.MustCompile(`^[A-Z][A-Z0-9_]*[A-Z0-9]$`)

func newLevelRegistry() *levelRegistry {
	r := &levelRegistry{entries: make(map[string]*levelEntry)}
	for _, b := range []struct {
		name  string
		value Level
		style LevelStyle
	}{
		{"TRACE", TRACE, LevelStyle{FG: ansi.FG.SoftPurple, Intensity: ansi.Normal}},
		{"DEBUG", DEBUG, LevelStyle{FG: ansi.FG.Cyan, Intensity: ansi.Normal}},
		{"INFO", INFO, LevelStyle{FG: ansi.FG.NeonGreen, Intensity: ansi.Normal}},
		{"WARNING", WARNING, LevelStyle{FG: ansi.FG.NeonYellow, Intensity: ansi.Normal}},
		{"ERROR", ERROR, LevelStyle{FG: ansi.FG.NeonRed, Intensity: ansi.Bold}},
		{"CRITICAL", CRITICAL, LevelStyle{
			FG: ansi.FG.NeonYellow, BG: ansi.BG.NeonRed,
			Intensity: ansi.Bold, Styles: []ansi.Code{ansi.Underline},
		}},
	} {
		r.entries[b.name] = &levelEntry{value: b.value, style: b.style, defaultStyle: b.style}
	}
	return r
}

var levelReg = newLevelRegistry()

// register adds or updates a level. Re-registering a name with the same
// severity updates only the style; a different severity requires
// override. A severity already claimed by another name is always a
// conflict.
func (r *levelRegistry) register(name string, value Level, style *LevelStyle, override bool) error {
	if !levelNameRE.MatchString(name) {
		return &NameConflictError{Name: name, Reason: "level names must be uppercase letters, digits or underscores"}
	}
	if value < 0 {
		return newConfigError("severity", "must be non-negative, got %d", value)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.entries[name]; ok && existing.value != value && !override {
		return &NameConflictError{
			Name:   name,
			Reason: "already registered with a different severity; use OverrideLevel to replace it",
		}
	}
	for other, e := range r.entries {
		if other != name && e.value == value {
			return &NameConflictError{Name: name, Reason: "severity already assigned to " + other}
		}
	}

	st := LevelStyle{}
	if style != nil {
		st = *style
	}
	if existing, ok := r.entries[name]; ok {
		existing.value = value
		if style != nil {
			existing.style = st
			existing.defaultStyle = st
		}
		return nil
	}
	r.entries[name] = &levelEntry{value: value, style: st, defaultStyle: st}
	return nil
}

// lookup returns the entry for name, or nil.
func (r *levelRegistry) lookup(name string) *levelEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.entries[name]
	if !ok {
		return nil
	}
	cp := *e
	return &cp
}

// nameFor returns the registered name for a severity, or a
// "LEVEL_<n>" placeholder when unregistered.
func (r *levelRegistry) nameFor(value Level) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	for name, e := range r.entries {
		if e.value == value {
			return name
		}
	}
	return "LEVEL_" + strconv.Itoa(int(value))
}

// snapshot returns a copy of name -> severity, including NOTSET.
func (r *levelRegistry) snapshot() map[string]Level {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]Level, len(r.entries)+1)
	out["NOTSET"] = NOTSET
	for name, e := range r.entries {
		out[name] = e.value
	}
	return out
}

// applyTheme replaces each known level's style by severity. A nil
// theme restores the registration-time defaults.
func (r *levelRegistry) applyTheme(theme map[Level]LevelStyle) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if theme == nil {
		for _, e := range r.entries {
			e.style = e.defaultStyle
		}
		return
	}
	for _, e := range r.entries {
		if st, ok := theme[e.value]; ok {
			e.style = st
		}
	}
}

// RegisterLevel adds a custom level or updates the style of an
// existing one. It fails with a NameConflictError when name is already
// registered with a different severity, or when the severity is
// claimed by another level. The new level is immediately usable via
// (*Logger).Emit and is rendered with the given style; a nil style
// renders unstyled.
func RegisterLevel(name string, value Level, style *LevelStyle) error {
	return levelReg.register(name, value, style, false)
}

// OverrideLevel is RegisterLevel without the severity-collision guard
// on the name: an existing level's severity and style are replaced
// atomically.
func OverrideLevel(name string, value Level, style *LevelStyle) error {
	return levelReg.register(name, value, style, true)
}

// Levels returns a snapshot of all registered level names and their
// severities, including the NOTSET sentinel.
func Levels() map[string]Level {
	return levelReg.snapshot()
}

// LevelName returns the registered name for a severity, or a
// "LEVEL_<n>" placeholder for unregistered values.
func LevelName(value Level) string {
	return levelReg.nameFor(value)
}

// ApplyColorTheme replaces the style of every level whose severity
// appears in theme. Passing nil restores the default styles.
func ApplyColorTheme(theme map[Level]LevelStyle) {
	levelReg.applyTheme(theme)
}
