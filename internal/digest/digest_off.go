//go:build nohash

package digest

import "hash"

// Available always reports false in a nohash build: the overwrite kernel's
// verification step falls back to byte-compare exclusively, per spec §4.3.
func Available() bool { return false }

// Sum is unreachable in a nohash build — callers must check Available()
// first — but is kept so the package's API surface doesn't change across
// build configurations.
func Sum(data []byte) [Size]byte {
	panic("digest: Sum called in a nohash build")
}

// New is unreachable in a nohash build — callers must check Available()
// first.
func New() hash.Hash {
	panic("digest: New called in a nohash build")
}
