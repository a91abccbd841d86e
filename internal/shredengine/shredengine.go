// Package shredengine implements the C6 per-file state machine from
// spec.md §4.6: permission gate -> (optional) size-0 fast path ->
// open (with retries) -> N overwrite passes with optional verification ->
// fsync+close -> revoke permissions -> rename-to-temp -> metadata scrub ->
// unlink.
package shredengine

import (
	cryptorand "crypto/rand"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gzhole/goshred/internal/config"
	"github.com/gzhole/goshred/internal/logger"
	"github.com/gzhole/goshred/internal/overwrite"
	"github.com/gzhole/goshred/internal/permission"
	"github.com/gzhole/goshred/internal/platform"
	"github.com/gzhole/goshred/internal/random"
	"github.com/gzhole/goshred/internal/runstate"
)

const (
	openRetries = 10
	openBackoff = 500 * time.Millisecond
	settleDelay = 50 * time.Millisecond
	tempNameLen = 32
	alphabet    = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// Engine runs the per-file state machine for a single configured run. It is
// stateless across files: one call to Shred handles exactly one per-file
// record (F in spec.md §3), created and discarded within the call.
type Engine struct {
	cfg   config.Config
	log   *logger.Logger
	state *runstate.State
	src   *random.Source
}

// New returns an Engine sharing cfg, log, and state with the rest of the
// run. A single random.Source is reused across every file the Engine
// shreds, matching spec §4.2's "seeded once per process" contract.
func New(cfg config.Config, log *logger.Logger, state *runstate.State) *Engine {
	return &Engine{cfg: cfg, log: log, state: state, src: random.New()}
}

// Shred drives path through the full state machine. The walker has already
// made the symlink-following decision (spec §4.7) and passes the resolved
// target path, so the engine does no symlink handling of its own.
//
// It returns whether the file was unlinked.
func (e *Engine) Shred(path string) (unlinked bool, err error) {
	if e.cfg.DryRun {
		e.log.DryRun("Simulating shredding file '%s'", path)
		return false, nil
	}

	perms := permission.Probe(path, e.cfg.Force)
	if perms.RetrievalFailed {
		e.log.Error("failed to retrieve permissions for '%s'", path)
		e.state.SetFatal()
		return false, fmt.Errorf("shredengine: permission retrieval failed for %s", path)
	}
	if !perms.Write {
		if e.cfg.Force {
			e.log.Error("'%s': no write permissions after elevation attempt", path)
		} else {
			e.log.Error("'%s': no write permissions", path)
		}
		e.state.SetFatal()
		return false, fmt.Errorf("shredengine: write denied for %s", path)
	}

	info, err := os.Stat(path)
	if err != nil {
		e.log.Error("'%s': failed to stat file: %v", path, err)
		e.state.SetFatal()
		return false, err
	}
	size := info.Size()

	if size == 0 {
		return e.handleEmpty(path)
	}

	f, err := e.openWithRetry(path)
	if err != nil {
		e.log.Error("'%s': failed to open after %d attempts: %v", path, openRetries, err)
		e.state.SetFatal()
		return false, err
	}
	defer f.Close()

	kernel := overwrite.New(platform.BlockSize(path), e.src)

	verificationFailed := false
	for pass := 0; pass < e.cfg.Passes; pass++ {
		lastWritten, werr := kernel.RunPass(f, size, pass, e.cfg.Secure, e.cfg.Verify)
		if werr != nil {
			e.log.Error("'%s': write failure on pass %d: %v", path, pass+1, werr)
			verificationFailed = true
			break
		}

		if e.cfg.Verify {
			ok, verr := kernel.Verify(f, lastWritten)
			if verr != nil {
				e.log.Error("'%s': verification I/O error on pass %d: %v", path, pass+1, verr)
				verificationFailed = true
				continue
			}
			if !ok {
				e.log.Error("'%s': verification mismatch on pass %d", path, pass+1)
				verificationFailed = true
			}
		}
		e.log.Info("'%s': completed overwrite pass %d/%d", path, pass+1, e.cfg.Passes)
	}

	if err := platform.Fsync(f); err != nil {
		e.log.Warning("'%s': fsync failed: %v", path, err)
	}
	f.Close()

	if e.cfg.Keep || verificationFailed {
		if verificationFailed {
			e.log.Error("'%s': verification failed; file left in place", path)
			e.state.SetFatal()
		} else {
			e.log.Info("'%s': overwritten without deletion", path)
		}
		return false, nil
	}

	if err := e.scrubAndUnlink(path); err != nil {
		e.log.Error("'%s': %v", path, err)
		e.state.SetFatal()
		return false, err
	}

	e.log.Info("'%s': shredded, verified, and deleted", path)
	return true, nil
}

// handleEmpty implements spec §4.5 "Edge cases": a size-0 file is never
// overwritten. It is unlinked immediately unless Keep is set, in which case
// it is left in place with a warning.
func (e *Engine) handleEmpty(path string) (bool, error) {
	if e.cfg.Keep {
		e.log.Warning("'%s': zero-length file left in place (--keep-files)", path)
		return false, nil
	}
	if err := os.Remove(path); err != nil {
		e.log.Error("'%s': failed to delete empty file: %v", path, err)
		e.state.SetFatal()
		return false, err
	}
	e.log.Info("'%s': empty file deleted without overwrite", path)
	return true, nil
}

// openWithRetry opens path for read/write, retrying transient failures up
// to openRetries times, openBackoff apart, per spec §4.5 "Open".
func (e *Engine) openWithRetry(path string) (*os.File, error) {
	var f *os.File
	var err error
	for attempt := 0; attempt < openRetries; attempt++ {
		f, err = os.OpenFile(path, os.O_RDWR, 0)
		if err == nil {
			return f, nil
		}
		time.Sleep(openBackoff)
	}
	return nil, err
}

// scrubAndUnlink implements spec §4.6's MaybeScrubAndUnlink state: revoke
// permissions, rename to a randomly named file in the temp directory,
// scrub extended attributes, then unlink the renamed file. The rename
// mutex ensures two engines never race for the same random temp name; the
// 50ms sleeps let filesystem metadata settle between the rename and the
// scrub, and between the scrub and the unlink, matching the original
// tool's behavior.
//
// Per spec §9's resolved open question, only the renamed path is unlinked
// — there is no fallback attempt to unlink the original path, since by
// this point it no longer exists.
func (e *Engine) scrubAndUnlink(path string) error {
	release := e.state.LockRename()
	defer release()

	if err := platform.Chmod(path, 0); err != nil {
		return fmt.Errorf("failed to revoke permissions before rename: %w", err)
	}

	tempPath, err := renameToTemp(path)
	if err != nil {
		return fmt.Errorf("failed to rename to temp path: %w", err)
	}

	time.Sleep(settleDelay)

	if names, lerr := platform.ListXattrs(tempPath); lerr == nil {
		for _, name := range names {
			if rerr := platform.RemoveXattr(tempPath, name); rerr != nil {
				e.log.Warning("'%s': failed to remove xattr %q: %v", path, name, rerr)
			}
		}
	}

	time.Sleep(settleDelay)

	if err := os.Remove(tempPath); err != nil {
		return fmt.Errorf("failed to unlink renamed file: %w", err)
	}
	return nil
}

// renameToTemp moves path to a randomly named file in the OS temp
// directory and returns the new path.
func renameToTemp(path string) (string, error) {
	name, err := randomName(tempNameLen)
	if err != nil {
		return "", err
	}
	tempPath := tempFilePath(name)
	if err := os.Rename(path, tempPath); err != nil {
		return "", err
	}
	return tempPath, nil
}

func tempFilePath(name string) string {
	return filepath.Join(os.TempDir(), name)
}

// randomName returns an n-character string drawn uniformly from the
// 62-symbol alphanumeric alphabet, per spec §4.6.
func randomName(n int) (string, error) {
	raw := make([]byte, n)
	out := make([]byte, 0, n)
	// Bytes at or above the largest multiple of len(alphabet) are rejected
	// so the modulo below gives every symbol the same probability.
	limit := 256 - 256%len(alphabet)
	for len(out) < n {
		if _, err := cryptorand.Read(raw); err != nil {
			return "", err
		}
		for _, b := range raw {
			if int(b) < limit && len(out) < n {
				out = append(out, alphabet[int(b)%len(alphabet)])
			}
		}
	}
	return string(out), nil
}
