//go:build darwin

package platform

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// BlockSize reports the optimal I/O block size of the filesystem backing
// path, defaulting to DefaultBlockSize on any failure.
func BlockSize(path string) int {
	var st unix.Statfs_t
	if err := unix.Statfs(path, &st); err != nil {
		return DefaultBlockSize
	}
	if st.Iosize <= 0 {
		return DefaultBlockSize
	}
	return int(st.Iosize)
}

// ListXattrs returns the names of all extended attributes set on path
// (resource forks / alternate data streams on macOS are exposed through
// this same xattr namespace).
func ListXattrs(path string) ([]string, error) {
	size, err := unix.Listxattr(path, nil)
	if err != nil {
		return nil, err
	}
	if size == 0 {
		return nil, nil
	}
	buf := make([]byte, size)
	n, err := unix.Listxattr(path, buf)
	if err != nil {
		return nil, err
	}
	return splitXattrNames(buf[:n]), nil
}

func splitXattrNames(buf []byte) []string {
	var names []string
	start := 0
	for i, b := range buf {
		if b == 0 {
			if i > start {
				names = append(names, string(buf[start:i]))
			}
			start = i + 1
		}
	}
	return names
}

// RemoveXattr removes a single extended attribute from path.
func RemoveXattr(path, name string) error {
	err := unix.Removexattr(path, name)
	if err == unix.ENOATTR {
		return nil
	}
	return err
}

// ToggleImmutable sets or clears the BSD/macOS user-immutable flag via
// chflags(2) — the platform's equivalent of Linux's FS_IMMUTABLE_FL.
func ToggleImmutable(path string, on bool) error {
	if on {
		return unix.Chflags(path, unix.UF_IMMUTABLE)
	}
	return unix.Chflags(path, 0)
}

// OwnerOf returns the uid that owns path.
func OwnerOf(path string) (int, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return 0, err
	}
	return int(st.Uid), nil
}

// GroupOf returns the gid that owns path.
func GroupOf(path string) (int, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return 0, err
	}
	return int(st.Gid), nil
}

// Mode returns the raw permission bits of path.
func Mode(path string) (uint32, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return 0, err
	}
	return uint32(st.Mode) & 0o7777, nil
}

// CheckAccess probes whether the effective principal can read and/or write
// path, via access(2).
func CheckAccess(path string, read, write bool) bool {
	var mode uint32
	if read {
		mode |= unix.R_OK
	}
	if write {
		mode |= unix.W_OK
	}
	if mode == 0 {
		return true
	}
	return unix.Access(path, mode) == nil
}

// Chmod widens path's permission bits; used by the permission gate's
// elevation path.
func Chmod(path string, mode uint32) error {
	return syscall.Chmod(path, mode)
}
