//go:build !nohash

package digest

import (
	"crypto/sha256"
	"hash"
)

// Available reports whether hash-based verification can be used. It is
// true unless the binary was built with -tags nohash.
func Available() bool { return true }

// Sum returns the SHA-256 digest of data.
func Sum(data []byte) [Size]byte {
	return sha256.Sum256(data)
}

// New returns a fresh incremental SHA-256 hasher, for streaming large
// on-disk contents through without buffering the whole file in memory.
func New() hash.Hash {
	return sha256.New()
}
