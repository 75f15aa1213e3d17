package domain

import (
	"strings"
	"time"

	"monet/internal/errors"
)

const (
	// InputPattern is the date grammar accepted from users, as shown to them.
	InputPattern = "yyyy-MM-dd HHmm"

	// InputLayout is InputPattern expressed as a Go time layout.
	InputLayout = "2006-01-02 1504"

	// DefaultDisplayLayout renders dates like "Aug 30 2025, 6:00 PM".
	DefaultDisplayLayout = "Jan 02 2006, 3:04 PM"
)

// ParseDateTime parses user date text in the fixed-width InputPattern. The
// result carries no timezone information beyond UTC.
func ParseDateTime(field string, text string) (time.Time, error) {
	trimmed := strings.TrimSpace(text)
	t, err := time.Parse(InputLayout, trimmed)
	if err != nil {
		return time.Time{}, errors.NewInvalidDateFormatError(field, trimmed, InputPattern, err)
	}
	return t, nil
}
