//go:build !windows

package hwinfo

import "syscall"

// diskUsage returns the free and total bytes of the filesystem containing
// path. Free space is what an unprivileged process can actually use.
func diskUsage(path string) (free, total uint64, err error) {
	var stat syscall.Statfs_t
	if err := syscall.Statfs(path, &stat); err != nil {
		return 0, 0, err
	}
	bsize := uint64(stat.Bsize)
	return stat.Bavail * bsize, stat.Blocks * bsize, nil
}
