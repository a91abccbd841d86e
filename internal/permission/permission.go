// Package permission implements the C4 permission gate from spec.md §4.4:
// determines whether the effective principal may read and write a given
// path, and — when force is requested — attempts to widen permissions and
// clear extended attributes that would otherwise block the overwrite.
package permission

import (
	"os/exec"
	"runtime"

	"github.com/gzhole/goshred/internal/platform"
)

// Perms is the per-file permission record (F.perms in spec.md §3).
type Perms struct {
	Read            bool
	Write           bool
	RetrievalFailed bool
}

// rwx permission bit groups, expressed the way spec §4.4 describes them:
// owner/group/other read+write bits and the elevated all-read-write(-exec)
// modes applied during force elevation.
const (
	modeRW    = 0o666
	modeRWX   = 0o777
	readBit   = 0o4
	writeBit  = 0o2
	execAnyOf = 0o111
)

// Probe determines whether the current effective principal can read and
// write path, and — if force is set and either bit is false — attempts to
// elevate permissions before re-checking.
//
// It never escalates to a principal other than the current effective one,
// and never elevates a file owned by root unless the invoker is root
// (spec.md §4.4 point 4, §8 invariant 6).
func Probe(path string, force bool) Perms {
	mode, err := platform.Mode(path)
	if err != nil {
		return Perms{RetrievalFailed: true}
	}
	ownerUID, err := platform.OwnerOf(path)
	if err != nil {
		return Perms{RetrievalFailed: true}
	}
	groupGID, err := platform.GroupOf(path)
	if err != nil {
		return Perms{RetrievalFailed: true}
	}

	read, write := evaluate(mode, ownerUID, groupGID)

	if (!read || !write) && force {
		if !canElevate(ownerUID) {
			return Perms{Read: read, Write: write}
		}
		if elevate(path, mode) {
			read = platform.CheckAccess(path, true, false)
			write = platform.CheckAccess(path, false, true)
		}
	}

	return Perms{Read: read, Write: write}
}

// canElevate enforces the root-safety invariant: a non-root invoker may
// never attempt elevation on a file it does not own, and nobody may widen
// permissions on a root-owned file unless the invoker is root themself.
func canElevate(ownerUID int) bool {
	if platform.IsRoot() {
		return true
	}
	if ownerUID == 0 {
		return false
	}
	return ownerUID == platform.EffectiveUser()
}

// evaluate computes (read, write) from the mode bits for whichever of
// owner/group/other matches the effective principal's relation to the
// file, bypassed to true when running as uid 0.
func evaluate(mode uint32, ownerUID, groupGID int) (read, write bool) {
	if platform.IsRoot() {
		return true, true
	}

	euid := platform.EffectiveUser()
	egid := platform.EffectiveGroup()

	var bits uint32
	switch {
	case euid == ownerUID:
		bits = (mode >> 6) & 0o7
	case egid == groupGID:
		bits = (mode >> 3) & 0o7
	default:
		bits = mode & 0o7
	}

	return bits&readBit != 0, bits&writeBit != 0
}

// elevate widens path's permissions and clears attributes/xattrs that
// would otherwise block the overwrite. It reports whether it completed
// without a hard failure; the caller always re-probes access afterward
// rather than trusting this return value alone.
func elevate(path string, mode uint32) bool {
	_ = platform.ToggleImmutable(path, false) // best-effort; unsupported FS is not fatal

	target := uint32(modeRW)
	if mode&execAnyOf != 0 {
		target = modeRWX
	}
	if err := platform.Chmod(path, target); err != nil {
		return false
	}

	clearXattrs(path)
	return true
}

// clearXattrs removes every extended attribute on path, preferring the
// native platform API and falling back to shelling out to the xattr/attr
// command-line tools per spec.md §9 ("shell-out... preserve the same
// behavior, but prefer the native API where the platform facade has one").
func clearXattrs(path string) {
	names, err := platform.ListXattrs(path)
	if err == nil {
		ok := true
		for _, name := range names {
			if rmErr := platform.RemoveXattr(path, name); rmErr != nil {
				ok = false
			}
		}
		if ok {
			return
		}
	}

	shellOutClearXattrs(path)
}

// shellOutClearXattrs spawns the documented xattr/attr binaries, discarding
// stderr, only when they are present on PATH. It never reports an error:
// a missing or failing shell-out is a non-fatal MetadataScrubFailure per
// spec.md §7.
func shellOutClearXattrs(path string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		if _, err := exec.LookPath("xattr"); err != nil {
			return
		}
		cmd = exec.Command("xattr", "-c", path)
	default:
		if _, err := exec.LookPath("attr"); err != nil {
			return
		}
		cmd = exec.Command("attr", "-r", "*", path)
	}
	cmd.Stderr = nil
	_ = cmd.Run()
}
