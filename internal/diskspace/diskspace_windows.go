//go:build windows

package diskspace

import (
	"golang.org/x/sys/windows"
)

// GetUsage returns the capacity of the volume containing dir.
func GetUsage(dir string) (Usage, error) {
	pathPtr, err := windows.UTF16PtrFromString(dir)
	if err != nil {
		return Usage{}, err
	}
	var u Usage
	if err := windows.GetDiskFreeSpaceEx(pathPtr, &u.FreeBytesAvailable, &u.TotalBytes, &u.TotalFreeBytes); err != nil {
		return Usage{}, err
	}
	return u, nil
}
