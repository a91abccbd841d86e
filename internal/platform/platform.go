// Package platform is the facade described in spec.md §4.1 (C1): the one
// place in the module that reaches past the Go standard library into
// OS-specific behavior — block-size queries, fsync, extended-attribute
// enumeration/removal, file-attribute toggling, and effective-identity
// queries. Every exported function returns a plain Go error instead of
// panicking, per the "two-way result" contract in the spec.
//
// OS-specific pieces live in facade_linux.go / facade_darwin.go /
// facade_other.go, the same //go:build split nestybox-sysbox-libs uses for
// its idMap/pathres packages, which this module draws the
// golang.org/x/sys/unix usage from (Access, Statfs, Listxattr, Removexattr).
package platform

import (
	"os"
	"time"
)

// DefaultBlockSize is used whenever the filesystem's optimal I/O block size
// cannot be determined.
const DefaultBlockSize = 4096

// fsyncRetries and fsyncBackoff implement the spec's "retried up to 3 times
// on transient failure" contract for Fsync.
const (
	fsyncRetries = 3
	fsyncBackoff = 100 * time.Millisecond
)

// Fsync flushes OS-level buffers for f, retrying transient failures up to
// fsyncRetries times. It is never fatal: the caller is expected to log a
// WARNING on a non-nil return and continue.
func Fsync(f *os.File) error {
	var err error
	for attempt := 0; attempt < fsyncRetries; attempt++ {
		if err = f.Sync(); err == nil {
			return nil
		}
		time.Sleep(fsyncBackoff)
	}
	return err
}

// EffectiveUser returns the effective uid of the current process.
func EffectiveUser() int { return os.Geteuid() }

// EffectiveGroup returns the effective gid of the current process.
func EffectiveGroup() int { return os.Getegid() }

// IsRoot reports whether the current process is running as uid 0, the
// condition under which the permission gate bypasses read/write checks and
// under which root-safety (spec.md §8 invariant 6) applies.
func IsRoot() bool { return EffectiveUser() == 0 }
