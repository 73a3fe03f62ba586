package filelock

import (
	"fmt"
	"os"
)

// Lock is an advisory exclusive lock backed by a lock file. The zero
// value is not usable; create one with New. The lock file is opened
// lazily on first Lock and kept open until Close.
type Lock struct {
	path string
	file *os.File
}

// New returns a Lock for the given lock-file path. The file is not
// opened until the first Lock call.
func New(path string) *Lock {
	return &Lock{path: path}
}

// Path returns the lock-file path.
func (l *Lock) Path() string { return l.path }

// Lock acquires the exclusive lock, blocking until it is available.
// The lock file is created if missing.
func (l *Lock) Lock() error {
	if l.file == nil {
		f, err := os.OpenFile(l.path, os.O_CREATE|os.O_RDWR, 0o644)
		if err != nil {
			return fmt.Errorf("open lock file: %w", err)
		}
		l.file = f
	}
	if err := lockExclusive(l.file); err != nil {
		return fmt.Errorf("acquire lock on %s: %w", l.path, err)
	}
	return nil
}

// Unlock releases the lock. Calling Unlock without holding the lock is
// an error at the OS level on some platforms; callers pair it with a
// successful Lock.
func (l *Lock) Unlock() error {
	if l.file == nil {
		return nil
	}
	if err := unlock(l.file); err != nil {
		return fmt.Errorf("release lock on %s: %w", l.path, err)
	}
	return nil
}

// Close releases the underlying file handle. The lock file itself is
// left on disk. Close is idempotent.
func (l *Lock) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
