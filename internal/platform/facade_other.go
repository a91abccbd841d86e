//go:build !linux && !darwin

package platform

import (
	"errors"
	"os"
)

// errUnsupported is returned by ToggleImmutable on platforms without a
// supported native implementation — the same "unsupported" shape
// nestybox-sysbox-libs/idMap uses for idMapMount_unsupported.go. The xattr
// functions here do not use it: ListXattrs reports no attributes and
// RemoveXattr is a no-op that returns nil.
var errUnsupported = errors.New("platform: operation not supported on this OS")

// BlockSize always returns DefaultBlockSize: without a native statfs this
// module has no portable way to query the real value.
func BlockSize(path string) int { return DefaultBlockSize }

func ListXattrs(path string) ([]string, error) { return nil, nil }

func RemoveXattr(path, name string) error { return nil }

func ToggleImmutable(path string, on bool) error { return errUnsupported }

func OwnerOf(path string) (int, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	_ = info
	return EffectiveUser(), nil
}

func GroupOf(path string) (int, error) {
	return EffectiveGroup(), nil
}

func Mode(path string) (uint32, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	return uint32(info.Mode().Perm()), nil
}

func CheckAccess(path string, read, write bool) bool {
	flag := os.O_RDONLY
	if write {
		flag = os.O_RDWR
	}
	f, err := os.OpenFile(path, flag, 0)
	if err != nil {
		return false
	}
	f.Close()
	return true
}

func Chmod(path string, mode uint32) error {
	return os.Chmod(path, os.FileMode(mode))
}
