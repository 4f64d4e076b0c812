//go:build unix

package diskspace

import (
	"golang.org/x/sys/unix"
)

// GetUsage returns the capacity of the filesystem containing dir.
func GetUsage(dir string) (Usage, error) {
	var stat unix.Statfs_t
	if err := unix.Statfs(dir, &stat); err != nil {
		return Usage{}, err
	}
	bsize := uint64(stat.Bsize)
	return Usage{
		FreeBytesAvailable: uint64(stat.Bavail) * bsize,
		TotalBytes:         uint64(stat.Blocks) * bsize,
		TotalFreeBytes:     uint64(stat.Bfree) * bsize,
	}, nil
}
