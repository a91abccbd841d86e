// Package runstate holds the process-wide mutable state that every
// component shares: the fatal-error flag that determines the process exit
// status, and the mutual-exclusion primitive guarding the rename-to-temp
// step so concurrent engines never collide on the temp directory.
//
// Both are safe for concurrent use; goshred itself is single-threaded
// end-to-end (see spec §5), but keeping these atomic/mutex-guarded matches
// the teacher's own pattern of guarding shared mutable state with sync
// primitives rather than ad hoc booleans.
package runstate

import "sync"

// State is the single process-wide record of fatal errors and the
// rename-mutex. One State is created in main and threaded through the
// walker and shred engine.
type State struct {
	mu      sync.Mutex
	fatal   bool
	renameM sync.Mutex
}

// New returns a fresh, non-fatal State.
func New() *State {
	return &State{}
}

// SetFatal records that an unrecoverable error occurred somewhere in the
// run. It may be called from any component, any number of times.
func (s *State) SetFatal() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fatal = true
}

// Fatal reports whether SetFatal has been called since the State was
// created. Only main reads this, at exit, to compute the process exit code.
func (s *State) Fatal() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fatal
}

// LockRename acquires the rename mutex guarding the
// chmod -> rename -> scrub -> unlink sequence performed by the shred
// engine's metadata-scrub step. The returned func releases it.
func (s *State) LockRename() func() {
	s.renameM.Lock()
	return s.renameM.Unlock
}
