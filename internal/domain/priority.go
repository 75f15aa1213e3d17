package domain

import (
	"fmt"

	"monet/internal/errors"
)

// Priority is the urgency tag carried by every task.
type Priority int

const (
	PriorityHigh Priority = iota + 1
	PriorityMedium
	PriorityLow
)

// DefaultPriority is used when a command does not specify one.
const DefaultPriority = PriorityMedium

// String returns the stored name of the priority (HIGH, MEDIUM or LOW).
func (p Priority) String() string {
	switch p {
	case PriorityHigh:
		return "HIGH"
	case PriorityMedium:
		return "MEDIUM"
	case PriorityLow:
		return "LOW"
	default:
		return fmt.Sprintf("Priority(%d)", int(p))
	}
}

// Level returns the user-facing number of the priority: 1 for HIGH, 2 for
// MEDIUM and 3 for LOW.
func (p Priority) Level() int {
	return int(p)
}

// IsValid reports whether p is one of the three defined priorities.
func (p Priority) IsValid() bool {
	return p >= PriorityHigh && p <= PriorityLow
}

// PriorityFromLevel maps 1, 2 and 3 to HIGH, MEDIUM and LOW. Any other level
// is an error rather than a silent default.
func PriorityFromLevel(level int) (Priority, error) {
	p := Priority(level)
	if !p.IsValid() {
		return 0, errors.NewParseError(errors.CodeInvalidPriority,
			"Priority must be 1 (high), 2 (medium) or 3 (low).").
			WithContext("level", level)
	}
	return p, nil
}

// ParsePriorityName maps a stored priority name back to its value.
func ParsePriorityName(name string) (Priority, bool) {
	switch name {
	case "HIGH":
		return PriorityHigh, true
	case "MEDIUM":
		return PriorityMedium, true
	case "LOW":
		return PriorityLow, true
	default:
		return 0, false
	}
}
