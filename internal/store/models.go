package store

import "time"

// Session is one finished timer run. Sessions are never updated or
// deleted once recorded.
type Session struct {
	Seq            int64 // insertion order
	ID             string
	Name           string
	ElapsedSeconds int64
	ElapsedDisplay string // HH:MM:SS at the moment the timer stopped
	RecordedAt     time.Time
}
