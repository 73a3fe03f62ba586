package logsmith

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Iron-Ham/logsmith/ansi"
	"github.com/Iron-Ham/logsmith/internal/filelock"
)

// recordFormatter is the contract between sinks and the formatting
// engine.
type recordFormatter interface {
	format(rec *Record) string
}

// passthroughFormatter emits only the rendered message, preserving any
// ANSI sequences it carries. Used by file sinks opened with
// preserveANSI.
type passthroughFormatter struct{}

func (passthroughFormatter) format(rec *Record) string { return rec.RenderedMessage() }

// reportSinkError prints a one-line notice to stderr. Emission-time
// sink failures are contained: the record is dropped for that sink
// only and the emission call never fails.
func reportSinkError(base string, err error) {
	fmt.Fprintf(os.Stderr, "logsmith: sink %s: %v\n", base, err)
}

// fileSink owns an open append handle to a log file, an advisory lock
// shared with other processes writing the same file, and an optional
// rotation policy. All writes are serialized by the in-process mutex
// and, when rotation is configured, by the OS lock on "<base>.lock".
type fileSink struct {
	mu sync.Mutex

	// identity as given to AddFile, used by RemoveFile
	dir  string
	name string

	path   string // active file path after suffix rules
	file   *os.File
	lock   *filelock.Lock
	logic  *RotationLogic
	format recordFormatter
	level  Level

	preserveANSI bool
	nextRollover time.Time
	closed       bool
}

// newFileSink opens (or creates) the target file. Only absolute
// directories are accepted; the directory is created if missing.
func newFileSink(dir, name string, level Level, format recordFormatter, logic *RotationLogic, preserveANSI bool) (*fileSink, error) {
	if !filepath.IsAbs(dir) {
		return nil, newConfigError("log_dir", "must be an absolute path, got %q", dir)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	path := filepath.Join(dir, name)
	if logic != nil {
		if logic.AppendFilenamePID {
			path = insertSuffix(path, "."+strconv.Itoa(os.Getpid()))
		}
		if logic.AppendFilenameTimestamp {
			path = insertSuffix(path, time.Now().Format("_20060102_150405"))
		}
	}

	s := &fileSink{
		dir:          dir,
		name:         name,
		path:         path,
		logic:        logic,
		format:       format,
		level:        level,
		preserveANSI: preserveANSI,
	}

	if err := s.open(); err != nil {
		return nil, err
	}

	if logic != nil {
		s.lock = filelock.New(path + ".lock")
		if logic.When != WhenNone {
			now := time.Now()
			s.nextRollover = logic.nextRollover(now)
			// A stale, non-empty active file whose boundary, counted
			// from its last modification, has already passed (for
			// second/minute/hour: older than one full interval) is
			// rolled on the first write.
			if info, err := os.Stat(path); err == nil && info.Size() > 0 {
				if !logic.nextRollover(info.ModTime()).After(now) {
					s.nextRollover = now
				}
			}
		}
	}
	return s, nil
}

// insertSuffix places suffix before the file extension:
// "app.log" + ".123" -> "app.123.log".
func insertSuffix(path, suffix string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + suffix + ext
}

// open opens the active file for appending. Caller holds the mutex
// (or is the constructor).
func (s *fileSink) open() error {
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	s.file = f
	return nil
}

// emit formats and writes one record, following the per-write
// protocol: in-process mutex, OS lock, re-stat, rotation check,
// append, retention. Failures are reported to stderr and contained.
func (s *fileSink) emit(rec *Record) {
	if s.level != NOTSET && rec.Level < s.level {
		return
	}
	text := s.format.format(rec)
	if !s.preserveANSI {
		text = ansi.Strip(text)
	}
	s.write([]byte(text + "\n"))
}

// writeRaw appends a bare payload, bypassing formatting. ANSI is
// stripped unless the sink preserves it.
func (s *fileSink) writeRaw(text string) {
	if !s.preserveANSI {
		text = ansi.Strip(text)
	}
	s.write([]byte(text + "\n"))
}

func (s *fileSink) write(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	if s.logic == nil {
		if _, err := s.file.Write(data); err != nil {
			reportSinkError(s.path, err)
		}
		return
	}

	if err := s.lock.Lock(); err != nil {
		reportSinkError(s.path, err)
		return
	}
	defer func() {
		if err := s.lock.Unlock(); err != nil {
			reportSinkError(s.path, err)
		}
	}()

	if s.file == nil {
		// a previous rollover failed to reopen; retry before writing
		if err := s.open(); err != nil {
			reportSinkError(s.path, err)
			return
		}
	}
	s.reopenIfRotated()

	rotated := false
	if s.shouldRollover(int64(len(data)), time.Now()) {
		if err := s.rollover(); err != nil {
			reportSinkError(s.path, err)
		} else {
			rotated = true
		}
	}

	if s.file == nil {
		if err := s.open(); err != nil {
			reportSinkError(s.path, err)
			return
		}
	}
	if _, err := s.file.Write(data); err != nil {
		reportSinkError(s.path, err)
		return
	}

	if rotated {
		s.applyExpiration()
	}
}

// reopenIfRotated re-stats the base path and reopens it when another
// process has rotated the file underneath us. Caller holds the mutex
// and the OS lock.
func (s *fileSink) reopenIfRotated() {
	onDisk, statErr := os.Stat(s.path)
	current, fileErr := s.file.Stat()
	if statErr == nil && fileErr == nil && os.SameFile(onDisk, current) {
		return
	}
	_ = s.file.Close()
	if err := s.open(); err != nil {
		reportSinkError(s.path, err)
	}
}

// shouldRollover evaluates the size and time triggers against the
// current file state.
func (s *fileSink) shouldRollover(incoming int64, now time.Time) bool {
	if s.logic.MaxBytes > 0 {
		if info, err := s.file.Stat(); err == nil {
			if info.Size()+incoming > s.logic.MaxBytes {
				return true
			}
		}
	}
	if s.logic.When != WhenNone && !now.Before(s.nextRollover) {
		return true
	}
	return false
}

// rollover moves the active file aside and opens a fresh one:
// close, shift "<base>.k" to "<base>.(k+1)" in reverse order, rename
// the active file to "<base>.1", reopen, recompute the schedule. All
// renames are atomic; a reader never observes a half-rotated state.
func (s *fileSink) rollover() error {
	if err := s.file.Sync(); err != nil {
		return fmt.Errorf("sync before rollover: %w", err)
	}
	if err := s.file.Close(); err != nil {
		return fmt.Errorf("close before rollover: %w", err)
	}
	s.file = nil

	if n := s.logic.BackupCount; n > 0 {
		// Drop the oldest, then shift the rest up by one.
		os.Remove(s.backupPath(n))
		for i := n - 1; i >= 1; i-- {
			src := s.backupPath(i)
			if _, err := os.Stat(src); err == nil {
				os.Remove(s.backupPath(i + 1))
				if err := os.Rename(src, s.backupPath(i+1)); err != nil {
					reportSinkError(s.path, err)
				}
			}
		}
		if _, err := os.Stat(s.path); err == nil {
			if err := os.Rename(s.path, s.backupPath(1)); err != nil {
				reportSinkError(s.path, err)
			}
		}
	} else {
		// No backups retained: discard the full file.
		os.Remove(s.path)
	}

	if err := s.open(); err != nil {
		return err
	}

	if s.logic.When != WhenNone {
		s.nextRollover = s.logic.nextRollover(time.Now())
	}
	return nil
}

func (s *fileSink) backupPath(n int) string {
	return s.path + "." + strconv.Itoa(n)
}

// applyExpiration deletes rotated siblings whose age exceeds the
// expiration rule. The backup-count cap is enforced by rollover
// independently of age.
func (s *fileSink) applyExpiration() {
	rule := s.logic.Expiration
	if rule == nil {
		return
	}
	cutoff := time.Now().Add(-rule.Scale.duration(rule.Interval))
	for _, path := range s.rotatedFiles() {
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(path); err != nil {
				reportSinkError(s.path, err)
			}
		}
	}
}

// rotatedFiles lists "<base>.<n>" siblings of the active file.
func (s *fileSink) rotatedFiles() []string {
	entries, err := os.ReadDir(filepath.Dir(s.path))
	if err != nil {
		return nil
	}
	base := filepath.Base(s.path)
	var out []string
	for _, e := range entries {
		name := e.Name()
		if !strings.HasPrefix(name, base+".") {
			continue
		}
		if _, err := strconv.Atoi(name[len(base)+1:]); err != nil {
			continue
		}
		out = append(out, filepath.Join(filepath.Dir(s.path), name))
	}
	return out
}

// flush forces buffered data to disk.
func (s *fileSink) flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.file == nil {
		return nil
	}
	return s.file.Sync()
}

// close flushes and closes the sink. Idempotent. The lock file
// persists on disk.
func (s *fileSink) close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	var firstErr error
	if s.file != nil {
		if err := s.file.Sync(); err != nil && firstErr == nil {
			firstErr = err
		}
		if err := s.file.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		s.file = nil
	}
	if s.lock != nil {
		if err := s.lock.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// target returns the active file path for introspection.
func (s *fileSink) target() string { return s.path }
