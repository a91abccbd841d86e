package permission

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, mode os.FileMode) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "target")
	if err := os.WriteFile(path, []byte("data"), mode); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(path, mode); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestProbeOwnerReadWrite(t *testing.T) {
	path := writeTempFile(t, 0o600)
	p := Probe(path, false)
	if p.RetrievalFailed {
		t.Fatal("unexpected retrieval failure")
	}
	if !p.Read || !p.Write {
		t.Fatalf("expected owner rw on 0600 file, got %+v", p)
	}
}

func TestProbeDeniedWithoutForce(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("running as root: permission bits are bypassed by design (spec §4.4 point 2)")
	}
	path := writeTempFile(t, 0o400)
	p := Probe(path, false)
	if p.Write {
		t.Fatalf("expected write denied on 0400 file without force, got %+v", p)
	}
}

func TestProbeElevatesWithForce(t *testing.T) {
	path := writeTempFile(t, 0o400)
	p := Probe(path, true)
	if !p.Write {
		t.Fatalf("expected force elevation to widen permissions, got %+v", p)
	}
}

func TestProbeRetrievalFailureOnMissingFile(t *testing.T) {
	p := Probe(filepath.Join(t.TempDir(), "does-not-exist"), false)
	if !p.RetrievalFailed {
		t.Fatal("expected retrieval failure for a nonexistent path")
	}
}
