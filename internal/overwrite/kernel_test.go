package overwrite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gzhole/goshred/internal/random"
)

func openTemp(t *testing.T, size int) (*os.File, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "target")
	data := make([]byte, size)
	for i := range data {
		data[i] = 0x41
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	f, err := os.OpenFile(path, os.O_RDWR, 0o600)
	if err != nil {
		t.Fatal(err)
	}
	return f, path
}

func TestRandomPassOverwritesAndRecordsLastWritten(t *testing.T) {
	f, path := openTemp(t, 4096)
	defer f.Close()

	k := New(4096, random.New())
	last, err := k.RunPass(f, 4096, 0, false, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(last) != 4096 {
		t.Fatalf("expected 4096 recorded bytes, got %d", len(last))
	}

	ok, err := k.Verify(f, last)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("expected verification to succeed against what was just written")
	}

	onDisk, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	allAs := true
	for _, b := range onDisk {
		if b != 0x41 {
			allAs = false
			break
		}
	}
	if allAs {
		t.Fatal("expected file contents to change after overwrite")
	}
}

func TestSecurePassSmallerThanBlockWritesExactSize(t *testing.T) {
	f, path := openTemp(t, 1)
	defer f.Close()

	k := New(4096, random.New())
	last, err := k.RunPass(f, 1, 0, true, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(last) != 1 {
		t.Fatalf("expected 1 recorded byte for a 1-byte file, got %d", len(last))
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != 1 {
		t.Fatalf("expected file size to remain 1 byte, got %d", info.Size())
	}
}

func TestVerifyDetectsMismatch(t *testing.T) {
	f, _ := openTemp(t, 16)
	defer f.Close()

	k := New(4096, random.New())
	last, err := k.RunPass(f, 16, 0, false, true)
	if err != nil {
		t.Fatal(err)
	}

	corrupted := make([]byte, len(last))
	copy(corrupted, last)
	corrupted[0] ^= 0xFF

	ok, err := k.Verify(f, corrupted)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatal("expected verification against a corrupted buffer to fail")
	}
}

func TestBlockSizeIsFixedPerKernel(t *testing.T) {
	k := New(512, random.New())
	if k.BlockSize() != 512 {
		t.Fatalf("expected BlockSize() to return the configured size, got %d", k.BlockSize())
	}
}
