//go:build linux

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
	if st.Bsize <= 0 {
		return DefaultBlockSize
	}
	return int(st.Bsize)
}

// ListXattrs returns the names of all extended attributes set on path.
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

// splitXattrNames splits a NUL-separated xattr name list as returned by
// listxattr(2) into individual strings.
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

// RemoveXattr removes a single extended attribute from path. It is not an
// error for the attribute to already be absent.
func RemoveXattr(path, name string) error {
	err := unix.Removexattr(path, name)
	if err == unix.ENODATA {
		return nil
	}
	return err
}

// fsImmutableFl mirrors linux/fs.h's FS_IMMUTABLE_FL, the ext2/3/4 attribute
// bit toggled by chattr +i/-i.
const fsImmutableFl = 0x00000010

// ToggleImmutable sets or clears the filesystem immutable attribute on
// path. Unsupported filesystems (anything that doesn't implement the
// FS_IOC_*FLAGS ioctls) report an error that the caller treats as a
// non-fatal elevation failure, not a crash.
func ToggleImmutable(path string, on bool) error {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return err
	}
	defer unix.Close(fd)

	flags, err := unix.IoctlGetInt(fd, unix.FS_IOC_GETFLAGS)
	if err != nil {
		return err
	}
	if on {
		flags |= fsImmutableFl
	} else {
		flags &^= fsImmutableFl
	}
	return unix.IoctlSetPointerInt(fd, unix.FS_IOC_SETFLAGS, flags)
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

// Mode returns the raw permission bits of path (e.g. 0644).
func Mode(path string) (uint32, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return 0, err
	}
	return st.Mode & 0o7777, nil
}

// CheckAccess probes whether the effective principal can read and/or write
// path, via access(2) — this reflects the kernel's own notion of access
// (ACLs, capabilities, mount options) rather than a re-derivation from mode
// bits.
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
