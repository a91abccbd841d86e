package cli

import "fmt"

// Version is stamped at build time via -ldflags, following the teacher's
// version.go convention.
var Version = "0.1.0-dev"

const shortUsage = `Usage: goshred [options] file [file...]
Securely overwrite and delete files and directories.

  -n N, --overwrite-count N   overwrite N times instead of the default (3)
  -r,   --recursive           recurse into directories
  -k,   --keep-files          overwrite but do not unlink
  -v,   --verbose             emit informational output
  -e,   --follow-symlinks     follow symbolic links
  -s,   --secure              use the full pattern schedule instead of random data only
  -d,   --dry                 simulate without touching any files
  -c,   --no-verify           skip read-back verification
  -f,   --force               attempt to elevate permissions on denied files
        --internal            print diagnostics and confirm before running
  -h,   --help                display this help and exit
  -H,   --full-help           display extended help and exit
  -V,   --version              output version information and exit
  -C,   --copyright           output copyright information and exit
`

const fullUsage = shortUsage + `
Short options may be bundled together, e.g. -kvn5sf is equivalent to
-k -v -n 5 -s -f. The argument to -n may be attached directly to the
flag (-n5) or given as the following token (-n 5).

Exit status is 0 on success, 1 if any file could not be fully shredded,
2 after printing help, version, or copyright information, and 3 if the
--internal confirmation prompt was declined.

A bare "--" ends option processing; everything after it is treated as a
path, even if it begins with a dash.
`

const copyrightText = `goshred
Copyright is not claimed over the secure-erasure algorithm this tool
implements; it is distributed for the same purpose as its predecessors:
destroying data beyond casual or forensic recovery. No warranty of any
kind is provided.
`

func versionText() string {
	return fmt.Sprintf("goshred %s\n", Version)
}
