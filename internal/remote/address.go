package remote

import (
	"fmt"
	"strconv"
	"strings"
)

// IsValidIPv4 reports whether s is a dotted-quad IPv4 address with every
// byte in 0..255 and no leading zeros.
func IsValidIPv4(s string) bool {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return false
	}
	for _, part := range parts {
		if part == "" || len(part) > 3 || (len(part) > 1 && part[0] == '0') {
			return false
		}
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 || n > 255 || strings.ContainsAny(part, "+-") {
			return false
		}
	}
	return true
}

// FormatIPv4 joins four bytes into a dotted quad.
func FormatIPv4(b [4]int) string {
	return fmt.Sprintf("%d.%d.%d.%d", b[0], b[1], b[2], b[3])
}

// ParseIPv4 splits a dotted quad into its bytes.
func ParseIPv4(s string) ([4]int, error) {
	var b [4]int
	if !IsValidIPv4(s) {
		return b, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	for i, part := range strings.Split(s, ".") {
		b[i], _ = strconv.Atoi(part)
	}
	return b, nil
}
