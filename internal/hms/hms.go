// Package hms formats second counts as HH:MM:SS clock strings.
package hms

import "fmt"

// Format renders secs as HH:MM:SS. Each field is zero-padded to two
// digits; hours are not clamped, so 100 hours renders as "100:00:00".
// A negative count is a caller bug and panics.
func Format(secs int64) string {
	if secs < 0 {
		panic(fmt.Sprintf("hms: negative seconds %d", secs))
	}
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
