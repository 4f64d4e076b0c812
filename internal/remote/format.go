package remote

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatSize formats a byte count in binary units ("1.5 MB").
func FormatSize(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}

// FormatSizeLong adds the exact count with digit grouping: "1.5 MB (1,572,864 bytes)".
func FormatSizeLong(bytes uint64) string {
	if bytes < 1024 {
		return printer.Sprintf("%d bytes", bytes)
	}
	return FormatSize(bytes) + printer.Sprintf(" (%d bytes)", bytes)
}

// FormatDate renders a timestamp for the properties view, or "Unknown".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "Unknown"
	}
	return t.Local().Format("Monday, January 2, 2006 at 3:04:05 PM")
}
