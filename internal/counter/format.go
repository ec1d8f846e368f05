package counter

import (
	"fmt"
	"time"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
)

// Format renders d as DD:HH:MM:SS using whole seconds. Days are unbounded.
func Format(d time.Duration) string {
	return FormatSeconds(int64(d / time.Second))
}

// FormatSeconds renders a signed whole-second count. Negative values are
// rendered as their magnitude with a leading '-'; zero is never signed.
func FormatSeconds(total int64) string {
	sign := ""
	if total < 0 {
		sign = "-"
		total = -total
	}

	days := total / secondsPerDay
	total %= secondsPerDay
	hours := total / secondsPerHour
	total %= secondsPerHour
	minutes := total / secondsPerMinute
	seconds := total % secondsPerMinute

	return fmt.Sprintf("%s%02d:%02d:%02d:%02d", sign, days, hours, minutes, seconds)
}

// Elapsed formats the time between anchor and now. It works on Unix
// seconds rather than time.Duration, which saturates at about 292 years.
func Elapsed(anchor, now time.Time) string {
	return FormatSeconds(elapsedSeconds(anchor, now))
}

// elapsedSeconds truncates the signed difference toward zero.
func elapsedSeconds(anchor, now time.Time) int64 {
	secs := now.Unix() - anchor.Unix()
	nsec := now.Nanosecond() - anchor.Nanosecond()
	switch {
	case secs > 0 && nsec < 0:
		secs--
	case secs < 0 && nsec > 0:
		secs++
	}
	return secs
}
