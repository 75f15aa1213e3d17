// Package codec converts tasks to and from the single-line records kept in
// the data file:
//
//	T | 0 | MEDIUM | read book
//	D | 1 | HIGH | return book | 2025-08-30T18:00
//	E | 0 | LOW | project meeting | 2025-08-30T14:00 | 2025-08-30T16:00
package codec

import (
	"strings"
	"time"

	"monet/internal/domain"
	"monet/internal/errors"
	"monet/internal/logging"
)

// Separator delimits the fields of a record.
const Separator = " | "

// DateTimeLayout is the layout written for deadline and event times. Seconds
// and fractions are appended only when they are non-zero.
const DateTimeLayout = "2006-01-02T15:04"

const (
	secondsLayout  = "2006-01-02T15:04:05"
	fractionLayout = "2006-01-02T15:04:05.999999999"
)

// decodeLayouts are tried in order when reading a stored time.
var decodeLayouts = []string{
	DateTimeLayout,
	secondsLayout,
	fractionLayout,
}

const (
	minFields      = 4
	deadlineFields = 5
	eventFields    = 6
)

// Encode renders task as a record. Descriptions containing Separator or a
// line break cannot be decoded back and must be rejected before reaching
// here.
func Encode(task domain.Task) string {
	done := "0"
	if task.Done {
		done = "1"
	}

	fields := []string{task.Kind.Tag(), done, task.Priority.String(), task.Description}
	switch task.Kind {
	case domain.KindDeadline:
		fields = append(fields, encodeTime(task.By))
	case domain.KindEvent:
		fields = append(fields, encodeTime(task.From), encodeTime(task.To))
	}
	return strings.Join(fields, Separator)
}

// Verify checks that task decodes back from its record unchanged.
func Verify(task domain.Task) error {
	line := Encode(task)
	decoded, err := Decode(line)
	if err != nil {
		return err
	}
	if !sameTask(decoded, task) {
		return errors.NewCorruptedRecordError(line, "record does not read back as the same task")
	}
	return nil
}

func sameTask(a, b domain.Task) bool {
	return a.Kind == b.Kind &&
		a.Description == b.Description &&
		a.Done == b.Done &&
		a.Priority == b.Priority &&
		a.By.Equal(b.By) &&
		a.From.Equal(b.From) &&
		a.To.Equal(b.To)
}

func encodeTime(t time.Time) string {
	t = t.UTC()
	switch {
	case t.Nanosecond() != 0:
		return t.Format(fractionLayout)
	case t.Second() != 0:
		return t.Format(secondsLayout)
	default:
		return t.Format(DateTimeLayout)
	}
}

// EncodeAll renders tasks as records in order.
func EncodeAll(tasks []domain.Task) []string {
	lines := make([]string, 0, len(tasks))
	for _, t := range tasks {
		lines = append(lines, Encode(t))
	}
	return lines
}

// Decode parses one record. Structural problems give a corrupted-record
// error; a time field that does not parse gives a date-decode error.
func Decode(line string) (domain.Task, error) {
	parts := strings.Split(line, Separator)
	if len(parts) < minFields {
		return domain.Task{}, errors.NewCorruptedRecordError(line, "too few fields")
	}

	tag := strings.TrimSpace(parts[0])
	done, err := decodeDone(line, strings.TrimSpace(parts[1]))
	if err != nil {
		return domain.Task{}, err
	}
	priority, ok := domain.ParsePriorityName(strings.TrimSpace(parts[2]))
	if !ok {
		return domain.Task{}, errors.NewCorruptedRecordError(line, "unknown priority")
	}
	description := parts[3]

	var task domain.Task
	switch tag {
	case domain.KindTodo.Tag():
		task, err = domain.NewTodo(description, priority)
	case domain.KindDeadline.Tag():
		if len(parts) < deadlineFields {
			return domain.Task{}, errors.NewCorruptedRecordError(line, "deadline without due time")
		}
		var by time.Time
		if by, err = decodeTime(parts[4]); err != nil {
			return domain.Task{}, err
		}
		task, err = domain.NewDeadline(description, by, priority)
	case domain.KindEvent.Tag():
		if len(parts) < eventFields {
			return domain.Task{}, errors.NewCorruptedRecordError(line, "event without start and end")
		}
		var from, to time.Time
		if from, err = decodeTime(parts[4]); err != nil {
			return domain.Task{}, err
		}
		if to, err = decodeTime(parts[5]); err != nil {
			return domain.Task{}, err
		}
		task, err = domain.NewEvent(description, from, to, priority)
	default:
		return domain.Task{}, errors.NewCorruptedRecordError(line, "unknown type tag")
	}
	if err != nil {
		return domain.Task{}, errors.NewCorruptedRecordError(line, "invalid description")
	}

	task.Done = done
	return task, nil
}

// DecodeLines decodes records in order. Blank lines are skipped. A corrupted
// record is dropped after calling warn with the line (logging.Warnf when warn
// is nil); any other failure aborts decoding.
func DecodeLines(lines []string, warn func(line string)) ([]domain.Task, error) {
	if warn == nil {
		warn = WarnCorrupted
	}

	tasks := make([]domain.Task, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		task, err := Decode(line)
		if err != nil {
			if errors.IsErrorType(err, errors.ErrorTypeCorruptedRecord) {
				warn(line)
				continue
			}
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// WarnCorrupted reports a dropped record on the warning log.
func WarnCorrupted(line string) {
	logging.Warnf("Corrupted line in data file will be ignored: %s", line)
}

func decodeDone(line, flag string) (bool, error) {
	switch flag {
	case "0":
		return false, nil
	case "1":
		return true, nil
	default:
		return false, errors.NewCorruptedRecordError(line, "done flag must be 0 or 1")
	}
}

func decodeTime(text string) (time.Time, error) {
	text = strings.TrimSpace(text)
	var firstErr error
	for _, layout := range decodeLayouts {
		t, err := time.Parse(layout, text)
		if err == nil {
			return t, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return time.Time{}, errors.NewDateDecodeError(text, firstErr)
}
