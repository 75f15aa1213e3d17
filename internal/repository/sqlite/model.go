package sqlite

import "time"

// Record is one stored task line. Position orders the records and matches
// the task's 0-based position in the list.
type Record struct {
	Position int64
	Line     string
}

// SaveEntry describes one completed save.
type SaveEntry struct {
	ID        int64
	SavedAt   time.Time
	TaskCount int
}
