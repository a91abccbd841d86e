package shredengine

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/gzhole/goshred/internal/config"
	"github.com/gzhole/goshred/internal/logger"
	"github.com/gzhole/goshred/internal/runstate"
	"github.com/stretchr/testify/require"
)

func newTestEngine(t *testing.T, cfg config.Config) (*Engine, *runstate.State) {
	t.Helper()
	st := runstate.New()
	log := logger.New(io.Discard, false, false)
	return New(cfg, log, st), st
}

func writeFile(t *testing.T, dir, name string, data []byte, mode os.FileMode) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, mode))
	return path
}

// TestSimpleDelete matches spec.md §8 scenario 1: a.bin of 10 bytes,
// passes=1, secure=false, verify=true, keep=false -> shredded and deleted.
func TestSimpleDelete(t *testing.T) {
	dir := t.TempDir()
	data := make([]byte, 10)
	for i := range data {
		data[i] = 0x41
	}
	path := writeFile(t, dir, "a.bin", data, 0o600)

	cfg := config.New()
	cfg.Passes = 1
	e, st := newTestEngine(t, cfg)

	unlinked, err := e.Shred(path)
	require.NoError(t, err)
	require.True(t, unlinked)
	require.False(t, st.Fatal())

	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr))
}

// TestKeepAfterOverwrite matches spec.md §8 scenario 2.
func TestKeepAfterOverwrite(t *testing.T) {
	dir := t.TempDir()
	data := make([]byte, 4096)
	path := writeFile(t, dir, "b.txt", data, 0o600)

	cfg := config.New()
	cfg.Passes = 2
	cfg.Keep = true
	e, st := newTestEngine(t, cfg)

	unlinked, err := e.Shred(path)
	require.NoError(t, err)
	require.False(t, unlinked)
	require.False(t, st.Fatal())

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.EqualValues(t, 4096, info.Size())
}

// TestDeniedWithoutForce matches spec.md §8 scenario 5.
func TestDeniedWithoutForce(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("running as root: permission bits are bypassed by design (spec §4.4 point 2)")
	}
	dir := t.TempDir()
	path := writeFile(t, dir, "c.ro", []byte("secret"), 0o400)

	cfg := config.New()
	e, st := newTestEngine(t, cfg)

	unlinked, err := e.Shred(path)
	require.Error(t, err)
	require.False(t, unlinked)
	require.True(t, st.Fatal())

	data, rerr := os.ReadFile(path)
	require.NoError(t, rerr)
	require.Equal(t, []byte("secret"), data)
}

// TestDeniedWithForce matches spec.md §8 scenario 6.
func TestDeniedWithForce(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "c.ro", []byte("secret"), 0o400)

	cfg := config.New()
	cfg.Force = true
	e, st := newTestEngine(t, cfg)

	unlinked, err := e.Shred(path)
	require.NoError(t, err)
	require.True(t, unlinked)
	require.False(t, st.Fatal())

	_, statErr := os.Stat(path)
	require.True(t, os.IsNotExist(statErr))
}

// TestDryRunLeavesFileUntouched matches spec.md §8 scenario 7.
func TestDryRunLeavesFileUntouched(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "c", []byte("unchanged"), 0o600)

	cfg := config.New()
	cfg.DryRun = true
	e, st := newTestEngine(t, cfg)

	unlinked, err := e.Shred(path)
	require.NoError(t, err)
	require.False(t, unlinked)
	require.False(t, st.Fatal())

	data, rerr := os.ReadFile(path)
	require.NoError(t, rerr)
	require.Equal(t, []byte("unchanged"), data)
}

func TestEmptyFileDeletedWithoutKeep(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "empty", nil, 0o600)

	cfg := config.New()
	e, st := newTestEngine(t, cfg)

	unlinked, err := e.Shred(path)
	require.NoError(t, err)
	require.True(t, unlinked)
	require.False(t, st.Fatal())
}

func TestEmptyFileKeptWithKeep(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "empty", nil, 0o600)

	cfg := config.New()
	cfg.Keep = true
	e, st := newTestEngine(t, cfg)

	unlinked, err := e.Shred(path)
	require.NoError(t, err)
	require.False(t, unlinked)
	require.False(t, st.Fatal())

	_, statErr := os.Stat(path)
	require.NoError(t, statErr)
}

func TestNoTempFileSurvivesAfterShred(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "leftover", []byte("data"), 0o600)

	before, err := os.ReadDir(os.TempDir())
	require.NoError(t, err)

	cfg := config.New()
	cfg.Passes = 1
	e, _ := newTestEngine(t, cfg)
	_, err = e.Shred(path)
	require.NoError(t, err)

	after, err := os.ReadDir(os.TempDir())
	require.NoError(t, err)
	require.Equal(t, len(before), len(after), "shred must not leave its randomly named temp file behind")
}
