package logsmith

import (
	"errors"
	"fmt"
)

// Sentinel errors for lifecycle violations. Emission into a retired or
// destroyed logger is dropped silently; explicit operations surface
// these.
var (
	// ErrRetired is returned when an explicit operation targets a
	// retired logger.
	ErrRetired = errors.New("logger is retired")

	// ErrDestroyed is returned when an explicit operation targets a
	// destroyed logger.
	ErrDestroyed = errors.New("logger is destroyed")

	// ErrNoConsole is returned by RemoveConsole when the logger has no
	// console sink.
	ErrNoConsole = errors.New("logger has no console sink")

	// ErrConsoleExists is returned by AddConsole when the logger
	// already has a console sink. Only one is allowed per logger.
	ErrConsoleExists = errors.New("logger already has a console sink")

	// ErrAuditActive is returned by StartAudit while auditing is
	// already running.
	ErrAuditActive = errors.New("auditing is already active")
)

// ConfigError reports a construction-time validation failure on one of
// the immutable configuration objects (Details, OptionalFields,
// RotationLogic, ExpirationRule). The message names the offending
// field.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

func newConfigError(field, format string, args ...any) *ConfigError {
	return &ConfigError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// NameConflictError reports a naming collision: the reserved logger
// name "root", a level name registered with a different severity, or a
// severity already claimed by another level.
type NameConflictError struct {
	Name   string
	Reason string
}

func (e *NameConflictError) Error() string {
	return fmt.Sprintf("name conflict on %q: %s", e.Name, e.Reason)
}

// IsConfigError reports whether err is a construction-time validation
// failure.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// IsNameConflict reports whether err is a naming collision.
func IsNameConflict(err error) bool {
	var nc *NameConflictError
	return errors.As(err, &nc)
}
