// Package logsmith is a structured, color-aware, concurrency-safe
// application logging library. It accepts events from any number of
// goroutines, renders each one according to a declarative format,
// filters by numeric severity, and fans events out to a console sink
// and any number of rotating file sinks.
//
// # Features
//
//   - Named loggers with dotted-path hierarchy and level inheritance
//   - Declarative record formatting (field selection and ordering,
//     strftime-style timestamps with sub-second precision)
//   - ANSI colorized console output with per-level styles and themes
//   - Size-, time- and hybrid-triggered file rotation with retention
//   - Cross-process-safe rollover via advisory locks and atomic renames
//   - Global audit fan-out capturing every event into one file
//   - Custom levels registered at runtime
//
// # Basic Usage
//
//	logsmith.Initialize(logsmith.INFO)
//
//	log, err := logsmith.Get("app", logsmith.NOTSET)
//	if err != nil {
//	    return err
//	}
//	if err := log.AddConsole(logsmith.TRACE, nil); err != nil {
//	    return err
//	}
//
//	log.Info("service started on port %d", 8080)
//	log.Error("request failed", logsmith.WithError(err),
//	    logsmith.WithField("path", "/api/v1/users"))
//
// # Hierarchy
//
// Loggers form a hierarchy through their dotted names. A logger whose
// severity is NOTSET inherits the severity of its nearest configured
// ancestor, falling back to the root installed by Initialize. Sinks
// are never inherited: a record written to "app.api" reaches only
// "app.api"'s sinks (plus the audit sink while auditing is active).
//
//	parent, _ := logsmith.Get("app", logsmith.DEBUG)
//	child, _ := logsmith.Get("app.api", logsmith.NOTSET)
//	// child filters at DEBUG via inheritance
//
// # File Output and Rotation
//
//	logic, err := logsmith.NewRotationLogic(logsmith.RotationLogic{
//	    MaxBytes:    10 << 20,
//	    When:        logsmith.WhenEveryday,
//	    Timestamp:   &logsmith.RotationTimestamp{Hour: 3},
//	    BackupCount: 7,
//	})
//	if err != nil {
//	    return err
//	}
//	err = log.AddFile("/var/log/myapp", "app.log", logsmith.NOTSET, nil, logic, false)
//
// Rotated files are named app.log.1, app.log.2, ... with .1 the most
// recent. An adjacent app.log.lock file coordinates writers across
// processes; it persists between runs. Multiple processes may share
// one log file safely on Unix and Windows.
//
// # Formatting
//
// Details and OptionalFields control which metadata appears between
// the timestamp and the message, and in what order:
//
//	details, err := logsmith.NewDetails(
//	    "%H:%M:%S.%3f", "|",
//	    &logsmith.OptionalFields{LoggerName: true, Lineno: true},
//	    []string{"level", "logger_name", "lineno"},
//	    false,
//	)
//
// The timestamp is always first and the message always last. All
// configuration objects validate at construction and are immutable
// afterwards.
//
// # Auditing
//
// StartAudit mirrors every record from every logger into a single
// file, each line prefixed with the source logger's name:
//
//	_ = logsmith.StartAudit("/var/log/myapp", "audit.log", nil, nil)
//	defer logsmith.StopAudit()
//
// # Thread Safety
//
// All exported functions and methods are safe for concurrent use.
// Emission is synchronous: the record is durably handed to every sink
// before the call returns. Within one logger on one goroutine, records
// appear in emission order; across goroutines writing to the same sink
// writes are serialized at whole-record granularity.
package logsmith
