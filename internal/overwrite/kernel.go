// Package overwrite implements the C5 overwrite kernel from spec.md §4.5:
// one top-level pass over a file's contents, either pure random-fill or the
// fixed-pattern + DoD 5220.22-M schedule, plus the post-pass verification
// step (hash-compare when available, byte-compare otherwise).
package overwrite

import (
	"bytes"
	"io"
	"os"

	"github.com/gzhole/goshred/internal/config"
	"github.com/gzhole/goshred/internal/digest"
)

// filler supplies random fill bytes for a block at a given pass/offset.
// random.Source satisfies this; tests substitute a deterministic fake to
// assert the pattern schedule without depending on actual randomness.
type filler interface {
	Fill(buf []byte, passIndex int, offset int64) error
}

// Kernel executes overwrite passes against a single open file. One Kernel
// is created per file, after the block size has been queried once
// (spec §4.5 "Block sizing"), and reused for every configured pass.
type Kernel struct {
	block  int
	source filler
}

// New returns a Kernel that writes in blocks of blockSize bytes, drawing
// fill data from source.
func New(blockSize int, source filler) *Kernel {
	if blockSize <= 0 {
		blockSize = 4096
	}
	return &Kernel{block: blockSize, source: source}
}

// BlockSize returns the fixed buffer size this Kernel uses for every pass
// of the file it was constructed for (spec §8 invariant 5).
func (k *Kernel) BlockSize() int { return k.block }

// RunPass executes top-level pass number passIndex (0-based) against f,
// which must already be positioned for absolute seeks and sized exactly
// size bytes. When secure is false it fills the whole file with random
// data, one block-sized write at a time; when true it runs the
// fixed-pattern + DoD schedule at every block-aligned offset.
//
// If recordLast is true (Config.Verify), RunPass returns a buffer holding
// exactly the bytes that end up on disk for this pass, for later
// comparison by Verify. Otherwise it returns nil.
func (k *Kernel) RunPass(f *os.File, size int64, passIndex int, secure, recordLast bool) ([]byte, error) {
	if secure {
		return k.runSecurePass(f, size, passIndex, recordLast)
	}
	return k.runRandomPass(f, size, passIndex, recordLast)
}

// runRandomPass writes size bytes of fresh random data to f in block-sized
// chunks, starting at offset 0.
func (k *Kernel) runRandomPass(f *os.File, size int64, passIndex int, recordLast bool) ([]byte, error) {
	var last []byte
	if recordLast {
		last = make([]byte, size)
	}

	buf := make([]byte, k.block)
	for offset := int64(0); offset < size; offset += int64(k.block) {
		n := k.block
		if remaining := size - offset; int64(n) > remaining {
			n = int(remaining)
		}
		region := buf[:n]
		if err := k.source.Fill(region, passIndex, offset); err != nil {
			return nil, err
		}
		if err := writeAt(f, region, offset); err != nil {
			return nil, err
		}
		if recordLast {
			copy(last[offset:offset+int64(n)], region)
		}
	}
	return last, nil
}

// runSecurePass implements spec.md §4.5's secure-mode schedule: for every
// file-aligned block, write each of the 8 fixed pattern values in turn,
// overwriting the block with fresh random fill right after the pattern
// write at the 1st/3rd/5th/7th sub-pass (i.e. odd k), then the
// three DoD 5220.22-M passes (zero, one, random) over the same block,
// before moving to the next block. The final random write of each block is
// what is recorded into the verification buffer.
func (k *Kernel) runSecurePass(f *os.File, size int64, passIndex int, recordLast bool) ([]byte, error) {
	var last []byte
	if recordLast {
		last = make([]byte, size)
	}

	buf := make([]byte, k.block)
	for offset := int64(0); offset < size; offset += int64(k.block) {
		n := k.block
		if remaining := size - offset; int64(n) > remaining {
			n = int(remaining)
		}
		region := buf[:n]

		for sub, pattern := range config.Pattern {
			fillByte(region, pattern)
			if err := writeAt(f, region, offset); err != nil {
				return nil, err
			}
			if sub%2 == 1 {
				if err := k.source.Fill(region, passIndex, offset+int64(sub)); err != nil {
					return nil, err
				}
				if err := writeAt(f, region, offset); err != nil {
					return nil, err
				}
			}
		}

		// DoD 5220.22-M: zero, one, random.
		fillByte(region, 0x00)
		if err := writeAt(f, region, offset); err != nil {
			return nil, err
		}
		fillByte(region, 0xFF)
		if err := writeAt(f, region, offset); err != nil {
			return nil, err
		}
		if err := k.source.Fill(region, passIndex, offset+8); err != nil {
			return nil, err
		}
		if err := writeAt(f, region, offset); err != nil {
			return nil, err
		}

		if recordLast {
			copy(last[offset:offset+int64(n)], region)
		}
	}
	return last, nil
}

func fillByte(buf []byte, b byte) {
	for i := range buf {
		buf[i] = b
	}
}

func writeAt(f *os.File, buf []byte, offset int64) error {
	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return err
	}
	_, err := f.Write(buf)
	return err
}

// Verify compares the on-disk contents of f against lastWritten,
// preferring a hash-compare (when the digest package is available) and
// falling back to a block-by-block byte-compare otherwise, per spec §4.5
// "Verification".
func (k *Kernel) Verify(f *os.File, lastWritten []byte) (bool, error) {
	if digest.Available() {
		return k.verifyByHash(f, lastWritten)
	}
	return k.verifyByBytes(f, lastWritten)
}

func (k *Kernel) verifyByHash(f *os.File, lastWritten []byte) (bool, error) {
	h := digest.New()
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return false, err
	}
	buf := make([]byte, k.block)
	for {
		n, err := f.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return false, err
		}
	}
	var diskSum [digest.Size]byte
	copy(diskSum[:], h.Sum(nil))
	wantSum := digest.Sum(lastWritten)
	return diskSum == wantSum, nil
}

func (k *Kernel) verifyByBytes(f *os.File, lastWritten []byte) (bool, error) {
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return false, err
	}
	buf := make([]byte, k.block)
	var read int64
	total := int64(len(lastWritten))
	for read < total {
		n, err := f.Read(buf)
		if n > 0 {
			end := read + int64(n)
			if end > total {
				end = total
			}
			if !bytes.Equal(buf[:end-read], lastWritten[read:end]) {
				return false, nil
			}
			read = end
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return false, err
		}
	}
	return read == total, nil
}
