package codec

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monet/internal/domain"
	apperrors "monet/internal/errors"
	"monet/internal/logging"
)

func at(t *testing.T, text string) time.Time {
	t.Helper()
	v, err := time.Parse(DateTimeLayout, text)
	require.NoError(t, err)
	return v
}

func TestEncode(t *testing.T) {
	todo, err := domain.NewTodo("read book", domain.PriorityMedium)
	require.NoError(t, err)

	deadline, err := domain.NewDeadline("return book", at(t, "2025-08-30T18:00"), domain.PriorityHigh)
	require.NoError(t, err)
	deadline.MarkDone()

	event, err := domain.NewEvent("project meeting", at(t, "2025-08-30T14:00"), at(t, "2025-08-30T16:00"), domain.PriorityLow)
	require.NoError(t, err)

	assert.Equal(t, "T | 0 | MEDIUM | read book", Encode(todo))
	assert.Equal(t, "D | 1 | HIGH | return book | 2025-08-30T18:00", Encode(deadline))
	assert.Equal(t, "E | 0 | LOW | project meeting | 2025-08-30T14:00 | 2025-08-30T16:00", Encode(event))
}

func TestRoundTrip(t *testing.T) {
	todo, _ := domain.NewTodo("read book", domain.PriorityLow)
	todo.MarkDone()
	deadline, _ := domain.NewDeadline("return book", at(t, "2025-08-30T18:00"), domain.PriorityMedium)
	event, _ := domain.NewEvent("party", at(t, "2025-12-31T20:00"), at(t, "2026-01-01T02:00"), domain.PriorityHigh)
	withSeconds, _ := domain.NewDeadline("call back", time.Date(2025, 8, 30, 18, 0, 30, 0, time.UTC), domain.PriorityHigh)
	withFraction, _ := domain.NewDeadline("launch", time.Date(2025, 8, 30, 18, 0, 30, 250000000, time.UTC), domain.PriorityHigh)
	zoned, _ := domain.NewEvent("standup", time.Date(2025, 8, 30, 9, 15, 0, 0, time.FixedZone("UTC+8", 8*3600)),
		time.Date(2025, 8, 30, 9, 30, 0, 0, time.FixedZone("UTC+8", 8*3600)), domain.PriorityMedium)
	pipes, _ := domain.NewTodo("| a|b |c|", domain.PriorityMedium)

	tests := []struct {
		name     string
		original domain.Task
	}{
		{"todo", todo},
		{"deadline", deadline},
		{"event", event},
		{"deadline with seconds", withSeconds},
		{"deadline with fractional seconds", withFraction},
		{"event created in another zone", zoned},
		{"description with bare pipes", pipes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.NotEmpty(t, tt.original.Description)
			decoded, err := Decode(Encode(tt.original))
			require.NoError(t, err)
			assert.Equal(t, tt.original, decoded)
			assert.NoError(t, Verify(tt.original))
		})
	}
}

func TestEncode_TimePrecision(t *testing.T) {
	withSeconds, err := domain.NewDeadline("x", time.Date(2025, 8, 30, 18, 0, 30, 0, time.UTC), domain.PriorityHigh)
	require.NoError(t, err)
	assert.Equal(t, "D | 0 | HIGH | x | 2025-08-30T18:00:30", Encode(withSeconds))

	zoned, err := domain.NewDeadline("x", time.Date(2025, 8, 30, 18, 0, 0, 0, time.FixedZone("UTC-5", -5*3600)), domain.PriorityHigh)
	require.NoError(t, err)
	assert.Equal(t, "D | 0 | HIGH | x | 2025-08-30T18:00", Encode(zoned))
}

func TestVerify_RejectsTaskThatDoesNotReadBack(t *testing.T) {
	// Built directly, bypassing the constructors that reject separators.
	tasks := []domain.Task{
		{Kind: domain.KindTodo, Description: "a | b", Priority: domain.PriorityMedium},
		{Kind: domain.KindDeadline, Description: "return book |", Priority: domain.PriorityMedium, By: at(t, "2025-08-30T18:00")},
	}

	for _, task := range tasks {
		t.Run(task.Description, func(t *testing.T) {
			assert.Error(t, Verify(task))
		})
	}
}

func TestDecode_AcceptsSecondsAndFractions(t *testing.T) {
	task, err := Decode("D | 0 | HIGH | return book | 2025-08-30T18:00:00")
	require.NoError(t, err)
	assert.Equal(t, at(t, "2025-08-30T18:00"), task.By)

	task, err = Decode("D | 0 | HIGH | return book | 2025-08-30T18:00:00.5")
	require.NoError(t, err)
	assert.Equal(t, 2025, task.By.Year())
}

func TestDecode_CorruptedRecords(t *testing.T) {
	lines := []string{
		"T | 0",
		"T | 0 | MEDIUM",
		"X | 0 | MEDIUM | mystery",
		"D | 0 | HIGH | return book",
		"E | 0 | LOW | meeting | 2025-08-30T14:00",
		"T | 2 | MEDIUM | read book",
		"T | yes | MEDIUM | read book",
		"T | 0 | URGENT | read book",
		"T | 0 | MEDIUM |  ",
		"T|0|MEDIUM|read book",
	}

	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			_, err := Decode(line)
			require.Error(t, err)
			assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeCorruptedRecord), "got %v", err)
		})
	}
}

func TestDecode_DateDecodeError(t *testing.T) {
	lines := []string{
		"D | 0 | HIGH | return book | not-a-date",
		"D | 0 | HIGH | return book | 2025-08-30 1800",
		"E | 0 | LOW | meeting | 2025-08-30T14:00 | 2025-13-30T16:00",
	}

	for _, line := range lines {
		t.Run(line, func(t *testing.T) {
			_, err := Decode(line)
			require.Error(t, err)
			assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeDateDecode), "got %v", err)
		})
	}
}

func TestDecodeLines_SkipsCorruptedRecords(t *testing.T) {
	var warned []string
	tasks, err := DecodeLines([]string{
		"T | 0 | MEDIUM | read book",
		"T | 0",
		"",
		"D | 1 | HIGH | return book | 2025-08-30T18:00",
	}, func(line string) { warned = append(warned, line) })

	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "read book", tasks[0].Description)
	assert.Equal(t, "return book", tasks[1].Description)
	assert.True(t, tasks[1].Done)
	assert.Equal(t, []string{"T | 0"}, warned)
}

func TestDecodeLines_AbortsOnDateDecodeError(t *testing.T) {
	tasks, err := DecodeLines([]string{
		"T | 0 | MEDIUM | read book",
		"D | 0 | HIGH | return book | tomorrow",
		"T | 0 | LOW | never reached",
	}, func(string) {})

	require.Error(t, err)
	assert.Nil(t, tasks)
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeDateDecode))
}

func TestDecodeLines_DefaultWarning(t *testing.T) {
	var buf bytes.Buffer
	prev := logging.SetOutput(&buf)
	defer logging.SetOutput(prev)

	tasks, err := DecodeLines([]string{"garbage"}, nil)

	require.NoError(t, err)
	assert.Empty(t, tasks)
	assert.Equal(t, "Warning: Corrupted line in data file will be ignored: garbage\n", buf.String())
}

func TestEncodeAll(t *testing.T) {
	a, _ := domain.NewTodo("a", domain.PriorityHigh)
	b, _ := domain.NewTodo("b", domain.PriorityLow)

	assert.Equal(t, []string{"T | 0 | HIGH | a", "T | 0 | LOW | b"}, EncodeAll([]domain.Task{a, b}))
	assert.Empty(t, EncodeAll(nil))
}
