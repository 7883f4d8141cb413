// Package format provides display formatting helpers shared by the CLI,
// REPL, and TUI front ends.
package format

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatExecutionDuration formats a time.Duration for display.
// It shows microseconds for durations less than a millisecond, milliseconds for
// durations less than a second, and the default string representation otherwise.
// This approach provides a more human-readable output for short durations.
//
// Parameters:
//   - d: The duration to format.
//
// Returns:
//   - string: A formatted string representing the duration.
func FormatExecutionDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	} else if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.String()
}

// GroupDigits renders an unsigned integer with comma thousand separators.
// Sums near the bound cap run to eighteen digits, which are unreadable
// without grouping.
//
// Parameters:
//   - n: The value to format.
//
// Returns:
//   - string: The grouped decimal representation.
func GroupDigits(n uint64) string {
	return groupString(strconv.FormatUint(n, 10))
}

// GroupDigitString groups an already-rendered decimal string, such as the
// output of big.Int.String. Non-decimal input is returned unchanged.
func GroupDigitString(s string) string {
	for _, r := range s {
		if r < '0' || r > '9' {
			return s
		}
	}
	return groupString(s)
}

func groupString(str string) string {
	if len(str) <= 3 {
		return str
	}

	var result strings.Builder
	for i, digit := range str {
		if i > 0 && (len(str)-i)%3 == 0 {
			result.WriteRune(',')
		}
		result.WriteRune(digit)
	}
	return result.String()
}
