package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monet/internal/domain"
	apperrors "monet/internal/errors"
)

func TestParseTodo(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		expected   TodoArgs
		expectCode string
	}{
		{
			name:     "description only",
			input:    "todo read book",
			expected: TodoArgs{Description: "read book", Priority: domain.PriorityMedium},
		},
		{
			name:     "with high priority",
			input:    "todo read book /p 1",
			expected: TodoArgs{Description: "read book", Priority: domain.PriorityHigh},
		},
		{
			name:     "with low priority and spacing",
			input:    "todo   read book /p  3 ",
			expected: TodoArgs{Description: "read book", Priority: domain.PriorityLow},
		},
		{
			name:     "slash word without marker spacing is kept",
			input:    "todo read book /p",
			expected: TodoArgs{Description: "read book /p", Priority: domain.PriorityMedium},
		},
		{name: "missing description", input: "todo", expectCode: apperrors.CodeEmptyDescription},
		{name: "blank description", input: "todo    ", expectCode: apperrors.CodeEmptyDescription},
		{name: "priority out of range", input: "todo read /p 4", expectCode: apperrors.CodeInvalidPriority},
		{name: "priority zero", input: "todo read /p 0", expectCode: apperrors.CodeInvalidPriority},
		{name: "priority not a number", input: "todo read /p high", expectCode: apperrors.CodeInvalidPriority},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseTodo(tt.input)
			if tt.expectCode != "" {
				require.Error(t, err)
				assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeParse))
				assert.True(t, apperrors.HasCode(err, tt.expectCode), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseDeadline_ValidInput(t *testing.T) {
	result, err := ParseDeadline("deadline return book /by 2025-08-30 1800")
	require.NoError(t, err)

	assert.Equal(t, DeadlineArgs{
		Description: "return book",
		ByText:      "2025-08-30 1800",
		Priority:    domain.PriorityMedium,
	}, result)
}

func TestParseDeadline_WithPriority(t *testing.T) {
	result, err := ParseDeadline("deadline submit report /by 2025-09-01 0900 /p 1")
	require.NoError(t, err)

	assert.Equal(t, DeadlineArgs{
		Description: "submit report",
		ByText:      "2025-09-01 0900",
		Priority:    domain.PriorityHigh,
	}, result)
}

func TestParseDeadline_MissingByKeyword(t *testing.T) {
	_, err := ParseDeadline("deadline return book 2025-08-30 1800")
	require.Error(t, err)

	assert.True(t, apperrors.HasCode(err, apperrors.CodeInvalidFormat))
	assert.Equal(t,
		"Invalid deadline format. Use: deadline <description> /by <yyyy-MM-dd HHmm>",
		apperrors.GetUserMessage(err))
}

func TestParseDeadline_MissingDescription(t *testing.T) {
	_, err := ParseDeadline("deadline /by 2025-08-30 1800")
	assert.Error(t, err)

	_, err = ParseDeadline("deadline    /by 2025-08-30 1800")
	assert.Error(t, err)
}

func TestParseDeadline_Errors(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		expectCode string
	}{
		{"no remainder", "deadline", apperrors.CodeEmptyDescription},
		{"blank date", "deadline return book /by   ", apperrors.CodeInvalidFormat},
		{"bad priority", "deadline return book /by 2025-08-30 1800 /p 9", apperrors.CodeInvalidPriority},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDeadline(tt.input)
			require.Error(t, err)
			assert.True(t, apperrors.HasCode(err, tt.expectCode), "got %v", err)
		})
	}
}

func TestParseDeadline_DateTextNotParsed(t *testing.T) {
	result, err := ParseDeadline("deadline return book /by next friday")
	require.NoError(t, err)
	assert.Equal(t, "next friday", result.ByText)
}

func TestParseEvent(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		expected   EventArgs
		expectCode string
	}{
		{
			name:  "valid event",
			input: "event project meeting /from 2025-08-30 1400 /to 2025-08-30 1600",
			expected: EventArgs{
				Description: "project meeting",
				FromText:    "2025-08-30 1400",
				ToText:      "2025-08-30 1600",
				Priority:    domain.PriorityMedium,
			},
		},
		{
			name:  "valid event with priority",
			input: "event party /from 2025-12-31 2000 /to 2026-01-01 0200 /p 3",
			expected: EventArgs{
				Description: "party",
				FromText:    "2025-12-31 2000",
				ToText:      "2026-01-01 0200",
				Priority:    domain.PriorityLow,
			},
		},
		{name: "no remainder", input: "event", expectCode: apperrors.CodeEmptyDescription},
		{name: "missing from", input: "event party /to 2025-08-30 1600", expectCode: apperrors.CodeInvalidFormat},
		{name: "missing to", input: "event party /from 2025-08-30 1400", expectCode: apperrors.CodeInvalidFormat},
		{name: "blank description", input: "event  /from 2025-08-30 1400 /to 2025-08-30 1600", expectCode: apperrors.CodeInvalidFormat},
		{name: "blank start", input: "event party /from   /to 2025-08-30 1600", expectCode: apperrors.CodeInvalidFormat},
		{name: "blank end", input: "event party /from 2025-08-30 1400 /to  ", expectCode: apperrors.CodeInvalidFormat},
		{name: "to before from", input: "event party /to 2025-08-30 1600 /from 2025-08-30 1400", expectCode: apperrors.CodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseEvent(tt.input)
			if tt.expectCode != "" {
				require.Error(t, err)
				assert.True(t, apperrors.HasCode(err, tt.expectCode), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParseFind(t *testing.T) {
	keyword, err := ParseFind("find book")
	require.NoError(t, err)
	assert.Equal(t, "book", keyword)

	keyword, err = ParseFind("FIND  Book club ")
	require.NoError(t, err)
	assert.Equal(t, "Book club", keyword)

	_, err = ParseFind("find   ")
	assert.True(t, apperrors.IsErrorType(err, apperrors.ErrorTypeParse))
}

func TestParseIndex(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		size       int
		expected   int
		expectType apperrors.ErrorType
		expectErr  bool
	}{
		{name: "first", input: "mark 1", size: 3, expected: 0},
		{name: "last", input: "delete 3", size: 3, expected: 2},
		{name: "padded", input: "unmark  2 ", size: 3, expected: 1},
		{name: "missing number", input: "mark", size: 3, expectErr: true, expectType: apperrors.ErrorTypeParse},
		{name: "not a number", input: "mark one", size: 3, expectErr: true, expectType: apperrors.ErrorTypeParse},
		{name: "zero", input: "mark 0", size: 3, expectErr: true, expectType: apperrors.ErrorTypeOutOfRange},
		{name: "negative", input: "mark -2", size: 3, expectErr: true, expectType: apperrors.ErrorTypeOutOfRange},
		{name: "past end", input: "delete 4", size: 3, expectErr: true, expectType: apperrors.ErrorTypeOutOfRange},
		{name: "empty list", input: "delete 1", size: 0, expectErr: true, expectType: apperrors.ErrorTypeOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseIndex(tt.input, tt.size)
			if tt.expectErr {
				require.Error(t, err)
				assert.True(t, apperrors.IsErrorType(err, tt.expectType), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestParsePriorityLevel(t *testing.T) {
	p, err := ParsePriorityLevel("priority 1")
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityHigh, p)

	p, err = ParsePriorityLevel("priority 3")
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityLow, p)

	for _, input := range []string{"priority", "priority 4", "priority x", "priority 1 2"} {
		_, err := ParsePriorityLevel(input)
		assert.True(t, apperrors.HasCode(err, apperrors.CodeInvalidPriority), "input %q got %v", input, err)
	}
}
