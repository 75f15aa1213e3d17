package parser

import (
	"strconv"
	"strings"

	"monet/internal/domain"
	"monet/internal/errors"
)

// Markers that separate fields inside a command.
const (
	MarkerPriority = " /p "
	MarkerBy       = " /by "
	MarkerFrom     = " /from "
	MarkerTo       = " /to "
)

// TodoArgs are the fields of a todo command.
type TodoArgs struct {
	Description string
	Priority    domain.Priority
}

// DeadlineArgs are the fields of a deadline command. ByText is handed to the
// task model unparsed.
type DeadlineArgs struct {
	Description string
	ByText      string
	Priority    domain.Priority
}

// EventArgs are the fields of an event command.
type EventArgs struct {
	Description string
	FromText    string
	ToText      string
	Priority    domain.Priority
}

const (
	deadlineUsage = "Invalid deadline format. Use: deadline <description> /by <" + domain.InputPattern + ">"
	eventUsage    = "Invalid event format. Use: event <description> /from <" + domain.InputPattern + "> /to <" + domain.InputPattern + ">"
)

// ParseTodo extracts the description and optional priority of a todo command.
func ParseTodo(line string) (TodoArgs, error) {
	rest, err := remainder(line, errors.CodeEmptyDescription, "The description for a todo cannot be empty.")
	if err != nil {
		return TodoArgs{}, err
	}

	description, priority, err := splitPriority(rest)
	if err != nil {
		return TodoArgs{}, err
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return TodoArgs{}, errors.NewParseError(errors.CodeEmptyDescription, "The description for a todo cannot be empty.")
	}

	return TodoArgs{Description: description, Priority: priority}, nil
}

// ParseDeadline extracts the description, due-date text and optional priority
// of a deadline command.
func ParseDeadline(line string) (DeadlineArgs, error) {
	rest, err := remainder(line, errors.CodeEmptyDescription, "The description for a deadline cannot be empty.")
	if err != nil {
		return DeadlineArgs{}, err
	}

	body, priority, err := splitPriority(rest)
	if err != nil {
		return DeadlineArgs{}, err
	}

	description, byText, found := strings.Cut(body, MarkerBy)
	description = strings.TrimSpace(description)
	byText = strings.TrimSpace(byText)
	if !found || description == "" || byText == "" {
		return DeadlineArgs{}, errors.NewParseError(errors.CodeInvalidFormat, deadlineUsage)
	}

	return DeadlineArgs{Description: description, ByText: byText, Priority: priority}, nil
}

// ParseEvent extracts the description, start and end text and optional
// priority of an event command. " /from " is located first, then " /to " in
// what follows it.
func ParseEvent(line string) (EventArgs, error) {
	rest, err := remainder(line, errors.CodeEmptyDescription, "The description for an event cannot be empty.")
	if err != nil {
		return EventArgs{}, err
	}

	body, priority, err := splitPriority(rest)
	if err != nil {
		return EventArgs{}, err
	}

	description, times, found := strings.Cut(body, MarkerFrom)
	description = strings.TrimSpace(description)
	if !found || description == "" || strings.TrimSpace(times) == "" {
		return EventArgs{}, errors.NewParseError(errors.CodeInvalidFormat, eventUsage)
	}

	fromText, toText, found := strings.Cut(times, MarkerTo)
	fromText = strings.TrimSpace(fromText)
	toText = strings.TrimSpace(toText)
	if !found || fromText == "" || toText == "" {
		return EventArgs{}, errors.NewParseError(errors.CodeInvalidFormat, eventUsage)
	}

	return EventArgs{Description: description, FromText: fromText, ToText: toText, Priority: priority}, nil
}

// ParseFind returns the keyword of a find command. Matching happens later and
// is case-sensitive.
func ParseFind(line string) (string, error) {
	rest, err := remainder(line, errors.CodeInvalidFormat, "Please specify a keyword to search for.")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(rest), nil
}

// ParseIndex converts the 1-based task number of a mark, unmark or delete
// command into a 0-based index checked against listSize. A token that is not
// a number is a parse error; a number outside the list is an out-of-range
// error.
func ParseIndex(line string, listSize int) (int, error) {
	rest, err := remainder(line, errors.CodeInvalidIndex, "Please specify the task number.")
	if err != nil {
		return 0, err
	}

	token := strings.TrimSpace(rest)
	n, convErr := strconv.Atoi(token)
	if convErr != nil {
		return 0, errors.NewParseError(errors.CodeInvalidIndex, "Please enter a valid number for the task index.").
			WithContext("value", token)
	}

	index := n - 1
	if index < 0 || index >= listSize {
		return 0, errors.NewOutOfRangeError(index, listSize)
	}
	return index, nil
}

// ParsePriorityLevel reads the 1, 2 or 3 argument of a priority command.
func ParsePriorityLevel(line string) (domain.Priority, error) {
	rest, err := remainder(line, errors.CodeInvalidPriority, "Please specify a priority level: 1 (high), 2 (medium) or 3 (low).")
	if err != nil {
		return 0, err
	}
	return parseLevel(rest)
}

// remainder returns the text after the command word, failing with a parse
// error carrying code and emptyMsg when it is blank.
func remainder(line string, code string, emptyMsg string) (string, error) {
	_, rest := splitCommandWord(line)
	if strings.TrimSpace(rest) == "" {
		return "", errors.NewParseError(code, emptyMsg)
	}
	return rest, nil
}

// splitPriority removes an optional " /p <level>" suffix. Without the marker
// the priority is domain.DefaultPriority.
func splitPriority(text string) (string, domain.Priority, error) {
	body, level, found := strings.Cut(text, MarkerPriority)
	if !found {
		return text, domain.DefaultPriority, nil
	}
	priority, err := parseLevel(level)
	if err != nil {
		return "", 0, err
	}
	return body, priority, nil
}

func parseLevel(text string) (domain.Priority, error) {
	token := strings.TrimSpace(text)
	level, err := strconv.Atoi(token)
	if err != nil {
		return 0, errors.NewParseError(errors.CodeInvalidPriority,
			"Priority must be 1 (high), 2 (medium) or 3 (low).").WithContext("value", token)
	}
	return domain.PriorityFromLevel(level)
}
