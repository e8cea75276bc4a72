// Package display holds the banner and small formatting helpers for
// console output.
package display

import (
	"fmt"
	"time"
)

// Pluralize returns "<n> <singular>" or "<n> <plural>".
func Pluralize(n int, singular, plural string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, plural)
}

// FormatElapsed renders a run duration: milliseconds under a second,
// otherwise seconds with one decimal.
func FormatElapsed(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}
