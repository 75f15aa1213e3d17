package validation

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "monet/internal/errors"
)

func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name        string
		errors      []FieldError
		expectError string
	}{
		{"No errors", []FieldError{}, "validation error"},
		{"Single error", []FieldError{{Field: "description", Message: "is required"}}, "validation error for field 'description': is required"},
		{"Multiple errors", []FieldError{
			{Field: "description", Message: "is required"},
			{Field: "priority", Message: "must be 1, 2 or 3"},
		}, "multiple validation errors"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ve := &ValidationError{Errors: tt.errors}
			result := ve.Error()

			if tt.name == "Multiple errors" {
				if !strings.Contains(result, tt.expectError) {
					t.Errorf("ValidationError.Error() = %v, expected to contain %v", result, tt.expectError)
				}
			} else if result != tt.expectError {
				t.Errorf("ValidationError.Error() = %v, expected %v", result, tt.expectError)
			}
		})
	}
}

func TestValidationError_AddHelpers(t *testing.T) {
	ve := NewValidationError()
	assert.False(t, ve.HasErrors())

	ve.AddRequiredError("description")
	ve.AddInvalidLengthError("description", "x", 0, 10)
	ve.AddInvalidValueError("priority", 7, "must be 1, 2 or 3")
	ve.AddInvalidCharacterError("description", "a\nb")

	assert.True(t, ve.HasErrors())
	assert.Len(t, ve.Errors, 4)
	assert.Equal(t, ErrorTypeRequired, ve.Errors[0].Type)
	assert.Equal(t, "description is required", ve.Errors[0].Message)
	assert.Equal(t, "description must be at most 10 characters long", ve.Errors[1].Message)
	assert.Equal(t, "priority must be 1, 2 or 3", ve.Errors[2].Message)
	assert.Equal(t, ErrorTypeInvalidCharacter, ve.Errors[3].Type)
	assert.Len(t, ve.GetFieldErrors("description"), 3)
	assert.Empty(t, ve.GetFieldErrors("kind"))
}

func TestValidationError_AddInvalidLengthErrorMessages(t *testing.T) {
	tests := []struct {
		min, max int
		expected string
	}{
		{1, 5, "f must be between 1 and 5 characters long"},
		{2, 0, "f must be at least 2 characters long"},
		{0, 5, "f must be at most 5 characters long"},
		{0, 0, "f has invalid length"},
	}

	for _, tt := range tests {
		ve := NewValidationError()
		ve.AddInvalidLengthError("f", "", tt.min, tt.max)
		assert.Equal(t, tt.expected, ve.Errors[0].Message)
	}
}

func TestValidationError_GetUserFriendlyMessage(t *testing.T) {
	assert.Equal(t, "Input validation failed", NewValidationError().GetUserFriendlyMessage())

	single := NewValidationError()
	single.AddRequiredError("description")
	assert.Equal(t, "description is required", single.GetUserFriendlyMessage())

	multi := NewValidationError()
	multi.AddRequiredError("from")
	multi.AddRequiredError("to")
	assert.Equal(t, "Multiple validation errors occurred:\n- from is required\n- to is required", multi.GetUserFriendlyMessage())
}

func TestIsValidationError(t *testing.T) {
	ve := NewValidationError()
	assert.True(t, IsValidationError(ve))
	assert.True(t, IsValidationError(fmt.Errorf("add: %w", ve)))
	assert.False(t, IsValidationError(fmt.Errorf("plain")))
}

func TestValidationError_AsAppError(t *testing.T) {
	ve := NewValidationError()
	ve.AddRequiredError("description")

	appErr := ve.AsAppError()
	assert.True(t, apperrors.IsErrorType(appErr, apperrors.ErrorTypeValidation))
	assert.Equal(t, "description is required", apperrors.GetUserMessage(appErr))
	assert.True(t, IsValidationError(appErr))
}
