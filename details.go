package logsmith

import (
	"fmt"
	"strings"
)

// OptionalFields selects which record metadata may appear between the
// timestamp and the message. Timestamp, level and message are
// mandatory and are not listed here. ExcInfo and StackInfo enable the
// multi-line diagnostics block after the message; they never appear in
// the inline order.
type OptionalFields struct {
	RelativeCreated bool
	LoggerName      bool
	FilePath        bool
	FileName        bool
	Lineno          bool
	FuncName        bool
	ThreadID        bool
	ThreadName      bool
	TaskName        bool
	ProcessID       bool
	ProcessName     bool

	// diagnostics
	ExcInfo   bool
	StackInfo bool
}

// inlineFieldNames lists the order tokens backed by OptionalFields, in
// declaration order. "level" is valid in an order but is not an
// optional field.
var inlineFieldNames = []string{
	"relative_created", "logger_name", "file_path", "file_name",
	"lineno", "func_name", "thread_id", "thread_name", "task_name",
	"process_id", "process_name",
}

// enabled reports whether the inline field named by token is switched
// on. Unknown tokens report false.
func (o *OptionalFields) enabled(token string) bool {
	switch token {
	case "relative_created":
		return o.RelativeCreated
	case "logger_name":
		return o.LoggerName
	case "file_path":
		return o.FilePath
	case "file_name":
		return o.FileName
	case "lineno":
		return o.Lineno
	case "func_name":
		return o.FuncName
	case "thread_id":
		return o.ThreadID
	case "thread_name":
		return o.ThreadName
	case "task_name":
		return o.TaskName
	case "process_id":
		return o.ProcessID
	case "process_name":
		return o.ProcessName
	}
	return false
}

func (o *OptionalFields) anyInline() bool {
	for _, name := range inlineFieldNames {
		if o.enabled(name) {
			return true
		}
	}
	return false
}

// DefaultDatefmt is the timestamp layout used when none is configured.
const DefaultDatefmt = "%Y-%m-%d %H:%M:%S.%3f"

// DefaultSeparator is the field separator used when none is configured.
const DefaultSeparator = "•"

// Details controls how a record is rendered into a line: the timestamp
// layout, the separator between fields, which optional fields appear
// and in what order, and whether every field wears the level's color.
//
// A Details value is immutable once constructed. Use NewDetails, which
// validates every invariant; the zero value must not be used directly.
//
// Two modes exist. Simple mode (Optional == nil) renders
// "timestamp SEP LEVEL SEP message". Strict mode (Optional != nil)
// renders the timestamp first, then the fields named by PartsOrder in
// that order, then the message; PartsOrder must mention "level"
// exactly once and every enabled inline field exactly once. When only
// the diagnostics fields (ExcInfo, StackInfo) are enabled, PartsOrder
// stays empty and the line is laid out as in simple mode, followed by
// the diagnostics.
type Details struct {
	datefmt        string
	separator      string
	optional       *OptionalFields
	partsOrder     []string
	colorAllFields bool
}

// NewDetails validates and builds a Details. Empty datefmt and
// separator fall back to the defaults. The optional struct is copied;
// later mutation of the caller's copy has no effect.
//
// Validation rules (violations return a *ConfigError naming the
// field):
//   - separator must be a single non-alphanumeric, non-bracket rune;
//   - datefmt must satisfy the fractional-seconds grammar (%1f..%6f);
//   - simple mode forbids partsOrder and colorAllFields;
//   - strict mode with inline fields requires partsOrder, containing
//     "level" exactly once, every enabled field exactly once, no
//     disabled or unknown fields, and never timestamp, message,
//     exc_info or stack_info;
//   - strict mode with only diagnostics enabled forbids partsOrder.
func NewDetails(datefmt, separator string, optional *OptionalFields, partsOrder []string, colorAllFields bool) (*Details, error) {
	if datefmt == "" {
		datefmt = DefaultDatefmt
	}
	if separator == "" {
		separator = DefaultSeparator
	}

	if err := validateDatefmt(datefmt); err != nil {
		return nil, err
	}

	runes := []rune(separator)
	if len(runes) != 1 {
		return nil, newConfigError("separator", "must be a single character, got %q", separator)
	}
	r := runes[0]
	if (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
		strings.ContainsRune("{}[]()<>", r) {
		return nil, newConfigError("separator", "must be non-alphanumeric and non-bracket, got %q", separator)
	}

	d := &Details{
		datefmt:        datefmt,
		separator:      separator,
		colorAllFields: colorAllFields,
	}

	if optional == nil {
		if len(partsOrder) > 0 {
			return nil, newConfigError("message_parts_order", "must be empty when no optional fields are configured")
		}
		if colorAllFields {
			return nil, newConfigError("color_all_fields", "requires optional fields to be configured")
		}
		return d, nil
	}

	opt := *optional
	d.optional = &opt

	inline := opt.anyInline()
	diagnostics := opt.ExcInfo || opt.StackInfo

	if diagnostics && !inline {
		if len(partsOrder) > 0 {
			return nil, newConfigError("message_parts_order", "must be empty when only diagnostics fields are enabled")
		}
		return d, nil
	}

	if !inline {
		return nil, newConfigError("optional_fields", "at least one inline field must be enabled")
	}
	if partsOrder == nil {
		return nil, newConfigError("message_parts_order", "required when inline optional fields are enabled")
	}

	order := make([]string, len(partsOrder))
	copy(order, partsOrder)
	d.partsOrder = order

	count := func(token string) int {
		n := 0
		for _, p := range order {
			if p == token {
				n++
			}
		}
		return n
	}

	for _, forbidden := range []string{"timestamp", "message"} {
		if count(forbidden) > 0 {
			return nil, newConfigError("message_parts_order", "%s is fixed and must not appear in the order", forbidden)
		}
	}
	for _, forbidden := range []string{"exc_info", "stack_info"} {
		if count(forbidden) > 0 {
			return nil, newConfigError("message_parts_order", "diagnostics field %s must not appear in the order", forbidden)
		}
	}
	if count("level") != 1 {
		return nil, newConfigError("message_parts_order", "must contain \"level\" exactly once")
	}

	for _, name := range inlineFieldNames {
		n := count(name)
		if opt.enabled(name) && n != 1 {
			return nil, newConfigError("message_parts_order",
				"optional field %q is enabled but appears %d times; it must appear exactly once", name, n)
		}
		if !opt.enabled(name) && n > 0 {
			return nil, newConfigError("message_parts_order",
				"optional field %q is disabled but appears in the order", name)
		}
	}

	allowed := make(map[string]bool, len(inlineFieldNames)+1)
	allowed["level"] = true
	for _, name := range inlineFieldNames {
		allowed[name] = true
	}
	for _, p := range order {
		if !allowed[p] {
			return nil, newConfigError("message_parts_order", "unknown field %q", p)
		}
	}

	return d, nil
}

// DefaultDetails returns the simple-mode configuration: default
// timestamp layout and separator, no optional fields.
func DefaultDetails() *Details {
	d, err := NewDetails("", "", nil, nil, false)
	if err != nil {
		panic(fmt.Sprintf("logsmith: default details invalid: %v", err))
	}
	return d
}

// Datefmt returns the timestamp layout.
func (d *Details) Datefmt() string { return d.datefmt }

// Separator returns the field separator.
func (d *Details) Separator() string { return d.separator }

// PartsOrder returns a copy of the configured field order.
func (d *Details) PartsOrder() []string {
	out := make([]string, len(d.partsOrder))
	copy(out, d.partsOrder)
	return out
}

// Optional returns a copy of the optional-fields selection, or nil in
// simple mode.
func (d *Details) Optional() *OptionalFields {
	if d.optional == nil {
		return nil
	}
	cp := *d.optional
	return &cp
}

// ColorAllFields reports whether middle fields wear the level style
// instead of the dim default.
func (d *Details) ColorAllFields() bool { return d.colorAllFields }
