package domain

import (
	"strings"
	"time"

	"monet/internal/errors"
)

// Kind identifies which variant a Task is.
type Kind int

const (
	KindTodo Kind = iota + 1
	KindDeadline
	KindEvent
)

// String returns the lower-case command word that creates this kind of task.
func (k Kind) String() string {
	switch k {
	case KindTodo:
		return "todo"
	case KindDeadline:
		return "deadline"
	case KindEvent:
		return "event"
	default:
		return "unknown"
	}
}

// Tag returns the single-letter marker used in displays and stored records.
func (k Kind) Tag() string {
	switch k {
	case KindTodo:
		return "T"
	case KindDeadline:
		return "D"
	case KindEvent:
		return "E"
	default:
		return "?"
	}
}

// Task is a to-do item. Kind selects the variant; By is only meaningful for
// deadlines and From/To only for events. Construct tasks through NewTodo,
// NewDeadline and NewEvent so the description invariant holds.
type Task struct {
	Kind        Kind
	Description string
	Done        bool
	Priority    Priority
	By          time.Time
	From        time.Time
	To          time.Time
}

// recordSeparator delimits the fields of a stored record.
const recordSeparator = " | "

// IsStorableDescription reports whether description reads back unchanged from
// a stored record. It must not contain the record separator, end in " |"
// (which joins with the following separator) or hold a line break.
func IsStorableDescription(description string) bool {
	if strings.Contains(description+" ", recordSeparator) {
		return false
	}
	return !strings.ContainsAny(description, "\r\n")
}

func newBase(kind Kind, description string, priority Priority) (Task, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return Task{}, errors.NewParseError(errors.CodeEmptyDescription,
			"The description for a "+kind.String()+" cannot be empty.")
	}
	if !IsStorableDescription(description) {
		return Task{}, errors.NewValidationError(
			"The description cannot contain '|' between spaces, end with ' |' or span several lines.", nil).
			WithContext("description", description)
	}
	if !priority.IsValid() {
		return Task{}, errors.NewParseError(errors.CodeInvalidPriority,
			"Priority must be 1 (high), 2 (medium) or 3 (low).")
	}
	return Task{
		Kind:        kind,
		Description: description,
		Priority:    priority,
	}, nil
}

// NewTodo creates a plain to-do.
func NewTodo(description string, priority Priority) (Task, error) {
	return newBase(KindTodo, description, priority)
}

// NewDeadline creates a task that is due at by. Only the wall clock reading
// of by is kept; the zone is dropped and the result is in UTC.
func NewDeadline(description string, by time.Time, priority Priority) (Task, error) {
	t, err := newBase(KindDeadline, description, priority)
	if err != nil {
		return Task{}, err
	}
	t.By = wallClock(by)
	return t, nil
}

// NewDeadlineFromText creates a deadline from user date text.
func NewDeadlineFromText(description, byText string, priority Priority) (Task, error) {
	by, err := ParseDateTime("deadline", byText)
	if err != nil {
		return Task{}, err
	}
	return NewDeadline(description, by, priority)
}

// NewEvent creates a task spanning from..to. The order of the two times is
// not checked. Like deadlines, both times keep only their wall clock.
func NewEvent(description string, from, to time.Time, priority Priority) (Task, error) {
	t, err := newBase(KindEvent, description, priority)
	if err != nil {
		return Task{}, err
	}
	t.From = wallClock(from)
	t.To = wallClock(to)
	return t, nil
}

// NewEventFromText creates an event from user date text.
func NewEventFromText(description, fromText, toText string, priority Priority) (Task, error) {
	from, err := ParseDateTime("event", fromText)
	if err != nil {
		return Task{}, err
	}
	to, err := ParseDateTime("event", toText)
	if err != nil {
		return Task{}, err
	}
	return NewEvent(description, from, to, priority)
}

// wallClock returns t's date and clock reading in UTC.
func wallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// MarkDone flags the task as completed.
func (t *Task) MarkDone() {
	t.Done = true
}

// MarkUndone clears the completed flag.
func (t *Task) MarkUndone() {
	t.Done = false
}

// StatusIcon returns "X" for a done task and a blank otherwise.
func (t Task) StatusIcon() string {
	if t.Done {
		return "X"
	}
	return " "
}

// IsValid checks that the task satisfies the model invariants.
func (t Task) IsValid() bool {
	switch t.Kind {
	case KindTodo, KindDeadline, KindEvent:
	default:
		return false
	}
	return strings.TrimSpace(t.Description) != "" && t.Priority.IsValid()
}

// Format renders the task for display using layout for any dates, e.g.
// "[D][ ][HIGH] return book (by: Aug 30 2025, 6:00 PM)".
func (t Task) Format(layout string) string {
	if layout == "" {
		layout = DefaultDisplayLayout
	}
	var b strings.Builder
	b.WriteString("[" + t.Kind.Tag() + "]")
	b.WriteString("[" + t.StatusIcon() + "]")
	b.WriteString("[" + t.Priority.String() + "] ")
	b.WriteString(t.Description)

	switch t.Kind {
	case KindDeadline:
		b.WriteString(" (by: " + t.By.Format(layout) + ")")
	case KindEvent:
		b.WriteString(" (from: " + t.From.Format(layout) + " to: " + t.To.Format(layout) + ")")
	}
	return b.String()
}

// String returns the task for display purposes.
func (t Task) String() string {
	return t.Format(DefaultDisplayLayout)
}
