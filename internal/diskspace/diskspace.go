// Package diskspace reports filesystem capacity. The directory mirror uses it
// to fill in drive capacity, and downloads use it to refuse transfers that
// cannot fit.
package diskspace

import (
	"errors"
	"fmt"
)

// Usage is the capacity of the filesystem holding a path.
type Usage struct {
	FreeBytesAvailable uint64 // free bytes available to the calling user
	TotalBytes         uint64
	TotalFreeBytes     uint64
}

// InsufficientSpaceError is returned when a destination cannot hold a transfer.
type InsufficientSpaceError struct {
	Path           string
	RequiredBytes  uint64
	AvailableBytes uint64
}

func (e *InsufficientSpaceError) Error() string {
	return fmt.Sprintf("insufficient disk space for %s: need %d bytes, %d available",
		e.Path, e.RequiredBytes, e.AvailableBytes)
}

// IsInsufficientSpaceError reports whether err is an InsufficientSpaceError.
func IsInsufficientSpaceError(err error) bool {
	var target *InsufficientSpaceError
	return errors.As(err, &target)
}

// CheckAvailableSpace fails when the filesystem holding dir has fewer than
// requiredBytes available. If capacity cannot be determined the check passes
// and the write is left to fail on its own.
func CheckAvailableSpace(dir string, requiredBytes uint64) error {
	u, err := GetUsage(dir)
	if err != nil {
		return nil
	}
	if u.FreeBytesAvailable < requiredBytes {
		return &InsufficientSpaceError{
			Path:           dir,
			RequiredBytes:  requiredBytes,
			AvailableBytes: u.FreeBytesAvailable,
		}
	}
	return nil
}
