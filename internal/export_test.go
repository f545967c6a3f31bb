package internal

import "time"

// SetNow fixes the clock used by Today and returns a func restoring it.
func SetNow(t time.Time) func() {
	prev := now
	now = func() time.Time { return t }
	return func() { now = prev }
}
