// Package filelock provides an OS advisory exclusive lock on a file,
// used to coordinate writers of the same log file across processes.
//
// When multiple processes append to (and rotate) a shared log file,
// they may attempt a rollover simultaneously, corrupting the backup
// chain. The filelock package prevents this: every writer takes the
// exclusive lock on an adjacent ".lock" file around its
// check-rotate-append critical section, so at most one process at a
// time mutates the target.
//
// # Semantics
//
//   - Unix: flock(2) with LOCK_EX; EINTR is retried.
//   - Windows: LockFileEx over a one-byte range.
//   - The lock is advisory: only cooperating participants are
//     serialized.
//   - Lock blocks until the lock is available. There is no timeout.
//   - The lock file persists after release; deleting it would race
//     with other processes opening it.
//
// # Basic Usage
//
//	lk := filelock.New(path + ".lock")
//	if err := lk.Lock(); err != nil { ... }
//	// critical section: stat, rotate, append
//	_ = lk.Unlock()
//
//	// on shutdown
//	_ = lk.Close()
//
// # Thread Safety
//
// A Lock serializes processes, not goroutines. Callers hold their own
// in-process mutex around Lock/Unlock pairs; the sink layer does this.
package filelock
