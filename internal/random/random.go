// Package random implements the C2 random source from spec.md §4.2:
// cryptographically strong bytes from the OS entropy source, falling back
// to a seeded pseudo-random generator when the primary source fails. The
// fallback generator is reseeded per overwrite pass with
// (seed ⊕ pass_index ⊕ offset) so each block's filler data still differs
// even while running in fallback mode.
package random

import (
	cryptorand "crypto/rand"
	mathrand "math/rand"
	"sync"
	"time"
)

// Source produces fill bytes for overwrite passes. The zero value is ready
// to use.
type Source struct {
	once sync.Once
	seed int64
}

// New returns a ready-to-use Source.
func New() *Source { return &Source{} }

// ensureSeeded lazily seeds the fallback generator from a non-deterministic
// source (the current time), exactly once per process, per spec §4.2.
func (s *Source) ensureSeeded() {
	s.once.Do(func() {
		s.seed = time.Now().UnixNano()
	})
}

// Fill writes len(buf) cryptographically strong random bytes into buf,
// reading from the OS entropy source. On failure it falls back to a
// pseudo-random generator reseeded with seed ^ passIndex ^ offset, so that
// the filler bytes still differ from block to block and pass to pass.
func (s *Source) Fill(buf []byte, passIndex int, offset int64) error {
	if _, err := cryptorand.Read(buf); err == nil {
		return nil
	}

	s.ensureSeeded()
	fillFallback(buf, s.seed, passIndex, offset)
	return nil
}

// fillFallback deterministically fills buf given a base seed, pass index,
// and byte offset. Factored out so tests can exercise the reseed formula
// without needing to force the primary crypto/rand source to fail.
func fillFallback(buf []byte, seed int64, passIndex int, offset int64) {
	reseed := seed ^ int64(passIndex) ^ offset
	r := mathrand.New(mathrand.NewSource(reseed))
	_, _ = r.Read(buf) // math/rand.Rand.Read never returns an error
}
