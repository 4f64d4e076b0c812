package diskspace

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

func TestGetUsage(t *testing.T) {
	u, err := GetUsage(t.TempDir())
	if err != nil {
		t.Fatalf("GetUsage() error = %v", err)
	}
	if u.TotalBytes == 0 {
		t.Error("TotalBytes = 0, want a real capacity")
	}
	if u.TotalFreeBytes > u.TotalBytes {
		t.Errorf("TotalFreeBytes %d > TotalBytes %d", u.TotalFreeBytes, u.TotalBytes)
	}
}

func TestCheckAvailableSpace(t *testing.T) {
	dir := t.TempDir()

	if err := CheckAvailableSpace(dir, 1); err != nil {
		t.Errorf("CheckAvailableSpace(1 byte) = %v, want nil", err)
	}

	err := CheckAvailableSpace(dir, math.MaxUint64)
	if !IsInsufficientSpaceError(err) {
		t.Fatalf("CheckAvailableSpace(max) = %v, want InsufficientSpaceError", err)
	}
	if !IsInsufficientSpaceError(fmt.Errorf("wrapped: %w", err)) {
		t.Error("IsInsufficientSpaceError should see through wrapping")
	}
	if IsInsufficientSpaceError(errors.New("other")) {
		t.Error("IsInsufficientSpaceError matched an unrelated error")
	}
}
