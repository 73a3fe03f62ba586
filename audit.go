package logsmith

import (
	"sync"
	"sync/atomic"
)

// auditController is the process-wide fan-out toggle. While active, a
// single rotating file sink at the root receives every record emitted
// by every logger, prefixed with the source logger's name. It never
// interferes with the loggers' own sinks.
type auditController struct {
	mu     sync.Mutex
	active atomic.Bool
	sink   *fileSink
}

var audit auditController

// StartAudit installs the audit sink at dir/name and sets the audit
// flag observed by every logger's dispatch path. Existing loggers need
// no reconfiguration. The sink formats records with its own Details
// (nil means the default) and preserves ANSI sequences. Starting while
// auditing is already active returns ErrAuditActive.
func StartAudit(dir, name string, logic *RotationLogic, details *Details) error {
	audit.mu.Lock()
	defer audit.mu.Unlock()
	if audit.active.Load() {
		return ErrAuditActive
	}

	sink, err := newFileSink(dir, name, NOTSET, newAuditFormatter(details), logic, true)
	if err != nil {
		return err
	}
	audit.sink = sink
	audit.active.Store(true)
	return nil
}

// StopAudit flushes and closes the audit sink and clears the flag.
// Safe to call when auditing is not active.
func StopAudit() error {
	audit.mu.Lock()
	defer audit.mu.Unlock()
	if !audit.active.Load() {
		return nil
	}
	audit.active.Store(false)

	sink := audit.sink
	audit.sink = nil
	flushErr := sink.flush()
	closeErr := sink.close()
	if flushErr != nil {
		return flushErr
	}
	return closeErr
}

// AuditActive reports whether the global audit fan-out is running.
func AuditActive() bool {
	return audit.active.Load()
}

// AuditTarget returns the audit sink's active file path, or "" when
// auditing is off.
func AuditTarget() string {
	audit.mu.Lock()
	defer audit.mu.Unlock()
	if audit.sink == nil {
		return ""
	}
	return audit.sink.target()
}

// auditDispatch offers a record to the audit sink. The atomic flag
// keeps the inactive path free of lock traffic.
func auditDispatch(rec *Record) {
	if !audit.active.Load() {
		return
	}
	audit.mu.Lock()
	sink := audit.sink
	audit.mu.Unlock()
	if sink != nil {
		sink.emit(rec)
	}
}
