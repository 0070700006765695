//go:build windows

package hwinfo

import "golang.org/x/sys/windows"

// diskUsage returns the free and total bytes of the volume containing path.
func diskUsage(path string) (free, total uint64, err error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return 0, 0, err
	}
	var freeBytesAvailable, totalBytes, totalFreeBytes uint64
	if err := windows.GetDiskFreeSpaceEx(p, &freeBytesAvailable, &totalBytes, &totalFreeBytes); err != nil {
		return 0, 0, err
	}
	return freeBytesAvailable, totalBytes, nil
}
