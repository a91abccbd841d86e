// Package digest implements the C3 hasher from spec.md §4.3: a fixed-width
// (32-byte) content digest used by the overwrite kernel's verification step
// when it chooses hash-compare over byte-compare.
//
// The hasher is "optional at build time" per the spec: building with
// -tags nohash produces a binary where Available() reports false and
// verification falls back to byte-compare exclusively. See digest_off.go.
package digest

// Size is the digest width in bytes (SHA-256).
const Size = 32
