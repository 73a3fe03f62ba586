package logsmith

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Iron-Ham/logsmith/ansi"
)

// levelPadWidth keeps level tokens a consistent width across lines.
const levelPadWidth = 8

// formatter renders records into lines according to a Details
// configuration. One engine serves both variants: color emits ANSI
// sequences, plain emits none. The audit variant wraps plain output
// with a source-logger prefix.
type formatter struct {
	details *Details
	color   bool
}

func newPlainFormatter(details *Details) *formatter {
	if details == nil {
		details = DefaultDetails()
	}
	return &formatter{details: details}
}

func newColorFormatter(details *Details) *formatter {
	if details == nil {
		details = DefaultDetails()
	}
	return &formatter{details: details, color: true}
}

// format renders one record as a line, plus trailing diagnostics
// lines when enabled. Rendering is total on well-formed records.
func (f *formatter) format(rec *Record) string {
	style := f.levelStyle(rec)

	parts := []string{f.renderTimestamp(rec, style)}

	opt := f.details.optional
	if opt == nil {
		// simple mode: timestamp SEP LEVEL SEP message
		parts = append(parts, f.renderLevel(rec, style))
	} else if len(f.details.partsOrder) == 0 {
		// diagnostics-only mode still shows the level
		parts = append(parts, f.renderLevel(rec, style))
	} else {
		for _, token := range f.details.partsOrder {
			parts = append(parts, f.renderToken(token, rec, style))
		}
	}

	parts = append(parts, f.renderMessage(rec, style))

	line := strings.Join(parts, f.renderSeparator())

	if extras := f.renderExtras(rec.Fields); extras != "" {
		line += " " + extras
	}

	if opt != nil && opt.ExcInfo && rec.ExcText != "" {
		if f.color {
			line += "\n { exc_info }\n" + rec.ExcText
		} else {
			line += "\n" + rec.ExcText
		}
	}
	if opt != nil && opt.StackInfo && rec.StackText != "" {
		if f.color {
			line += "\n { stack_info }\n" + rec.StackText
		} else {
			line += "\n" + rec.StackText
		}
	}
	return line
}

func (f *formatter) levelStyle(rec *Record) LevelStyle {
	if e := levelReg.lookup(rec.LevelName); e != nil {
		return e.style
	}
	return LevelStyle{}
}

func (f *formatter) renderSeparator() string {
	sep := f.details.separator
	if f.color {
		sep = ansi.Colorize(sep, ansi.Bold, ansi.FG.BrightWhite)
	}
	return " " + sep + " "
}

// styleMeta colors a middle field: the level style when
// color_all_fields is set, a dim default otherwise.
func (f *formatter) styleMeta(text string, style LevelStyle) string {
	if !f.color {
		return text
	}
	if f.details.colorAllFields {
		return style.render(text)
	}
	return ansi.Colorize(text, ansi.Dim, ansi.FG.ConsoleDefault)
}

func (f *formatter) styleLevel(text string, style LevelStyle) string {
	if !f.color || style.isZero() {
		return text
	}
	return style.render(text)
}

func (f *formatter) renderTimestamp(rec *Record, style LevelStyle) string {
	return f.styleMeta(renderTime(rec.Time, f.details.datefmt), style)
}

func (f *formatter) renderLevel(rec *Record, style LevelStyle) string {
	name := rec.LevelName
	if len(name) < levelPadWidth {
		name += strings.Repeat(" ", levelPadWidth-len(name))
	}
	return f.styleLevel(name, style)
}

func (f *formatter) renderMessage(rec *Record, style LevelStyle) string {
	return f.styleLevel(rec.RenderedMessage(), style)
}

func (f *formatter) renderToken(token string, rec *Record, style LevelStyle) string {
	if token == "level" {
		return f.renderLevel(rec, style)
	}
	var text string
	switch token {
	case "relative_created":
		text = strconv.FormatInt(rec.RelativeCreated, 10)
	case "logger_name":
		text = "LOGGER=" + rec.LoggerName
	case "file_path":
		text = rec.FilePath
	case "file_name":
		text = rec.FileName
	case "lineno":
		text = "L=" + strconv.Itoa(rec.Line)
	case "func_name":
		text = rec.FuncName
	case "thread_id":
		text = "th=" + strconv.FormatInt(rec.GoroutineID, 10)
	case "thread_name":
		text = rec.ThreadName
	case "task_name":
		text = rec.TaskName
	case "process_id":
		text = "P=" + strconv.Itoa(rec.ProcessID)
	case "process_name":
		text = rec.ProcessName
	default:
		text = token
	}
	return f.styleMeta(text, style)
}

// renderExtras serializes the structured fields as
// "{ key = value, ... }" with deterministic key order.
func (f *formatter) renderExtras(fields Fields) string {
	if len(fields) == 0 {
		return ""
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		key, val := k, renderFieldValue(fields[k])
		if f.color {
			key = ansi.Colorize(key, ansi.Bold, ansi.FG.BrightWhite)
			val = ansi.Foreground(val, ansi.FG.BrightGrey)
		}
		parts = append(parts, key+" = "+val)
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

// renderFieldValue serializes one field value: strings single-quoted,
// numbers and booleans bare, nil as null, nested mappings recursively.
// Anything else goes through a safe stringification.
func renderFieldValue(v any) (out string) {
	defer func() {
		if rec := recover(); rec != nil {
			out = "!UNRENDERABLE"
		}
	}()

	switch val := v.(type) {
	case nil:
		return "null"
	case string:
		return "'" + val + "'"
	case bool:
		return strconv.FormatBool(val)
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return fmt.Sprintf("%v", val)
	case Fields:
		return renderNestedMap(map[string]any(val))
	case map[string]any:
		return renderNestedMap(val)
	case error:
		return "'" + val.Error() + "'"
	case fmt.Stringer:
		return "'" + val.String() + "'"
	default:
		return fmt.Sprintf("%v", val)
	}
}

func renderNestedMap(m map[string]any) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+" = "+renderFieldValue(m[k]))
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

// auditFormatter wraps a plain formatter, prefixing every line with
// the originating logger's name. It always uses its own Details,
// independent of the source logger's configuration.
type auditFormatter struct {
	inner *formatter
}

func newAuditFormatter(details *Details) *auditFormatter {
	return &auditFormatter{inner: newPlainFormatter(details)}
}

func (a *auditFormatter) format(rec *Record) string {
	return "[" + rec.LoggerName + "]: " + a.inner.format(rec)
}
