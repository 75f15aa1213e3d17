package errors

import (
	"errors"
	"fmt"
)

// Error codes carried by parse errors. They let callers tell apart the
// different ways a command can be malformed without matching on messages.
const (
	CodeInvalidFormat     = "INVALID_FORMAT"
	CodeEmptyDescription  = "EMPTY_DESCRIPTION"
	CodeInvalidDateFormat = "INVALID_DATE_FORMAT"
	CodeInvalidIndex      = "INVALID_INDEX"
	CodeInvalidPriority   = "INVALID_PRIORITY"
	CodeUnknownCommand    = "UNKNOWN_COMMAND"
)

// NewParseError creates a new error for malformed command syntax
func NewParseError(code string, message string) *AppError {
	return &AppError{
		Type:    ErrorTypeParse,
		Message: message,
		Code:    code,
		Context: make(map[string]interface{}),
	}
}

// NewInvalidDateFormatError creates a parse error for date text that does not
// match the accepted input pattern
func NewInvalidDateFormatError(field string, value string, pattern string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeParse,
		Message: fmt.Sprintf("Invalid date format for %s. Please use '%s'.", field, pattern),
		Code:    CodeInvalidDateFormat,
		Cause:   cause,
		Context: map[string]interface{}{
			"field":   field,
			"value":   value,
			"pattern": pattern,
		},
	}
}

// NewUnknownCommandError creates a parse error for an unrecognized command word
func NewUnknownCommandError(word string) *AppError {
	return &AppError{
		Type:    ErrorTypeParse,
		Message: "I don't know what that means. Please check your input!",
		Code:    CodeUnknownCommand,
		Context: map[string]interface{}{
			"command": word,
		},
	}
}

// NewOutOfRangeError creates a new error for a task position outside the list
func NewOutOfRangeError(index int, size int) *AppError {
	return &AppError{
		Type:    ErrorTypeOutOfRange,
		Message: "Task number not found. Please provide a valid task number.",
		Code:    "OUT_OF_RANGE",
		Context: map[string]interface{}{
			"index": index,
			"size":  size,
		},
	}
}

// NewCorruptedRecordError creates a new error for a stored record that cannot
// be decoded into a task
func NewCorruptedRecordError(record string, reason string) *AppError {
	return &AppError{
		Type:    ErrorTypeCorruptedRecord,
		Message: fmt.Sprintf("corrupted record (%s): %s", reason, record),
		Code:    "CORRUPTED_RECORD",
		Context: map[string]interface{}{
			"record": record,
			"reason": reason,
		},
	}
}

// NewDateDecodeError creates a new error for a stored datetime that fails to parse
func NewDateDecodeError(value string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeDateDecode,
		Message: fmt.Sprintf("cannot decode stored datetime %q", value),
		Code:    "DATE_DECODE",
		Cause:   cause,
		Context: map[string]interface{}{
			"value": value,
		},
	}
}

// NewIOError creates a new error for a failed read or write of the backing store
func NewIOError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeIO,
		Message: fmt.Sprintf("storage operation failed: %s", operation),
		Code:    "IO_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// NewValidationError creates a new validation error
func NewValidationError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    "VALIDATION_FAILED",
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewConfigError creates a new configuration error
func NewConfigError(field string, message string) *AppError {
	return &AppError{
		Type:    ErrorTypeConfig,
		Message: fmt.Sprintf("%s: %s", field, message),
		Code:    "CONFIG_INVALID",
		Context: map[string]interface{}{
			"field": field,
		},
	}
}

// WrapError wraps an existing error with additional context
func WrapError(err error, errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Code:    errorType.String(),
		Cause:   err,
		Context: make(map[string]interface{}),
	}
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// HasCode checks if the error is an AppError carrying the given code
func HasCode(err error, code string) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == code
	}
	return false
}

// GetUserMessage returns a user-friendly error message
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeParse, ErrorTypeOutOfRange, ErrorTypeValidation, ErrorTypeConfig:
			return appErr.Message
		case ErrorTypeCorruptedRecord, ErrorTypeDateDecode:
			return "The data file is damaged: " + appErr.Message
		case ErrorTypeIO:
			return "Your tasks could not be saved. Changes are kept in memory until the next successful save."
		default:
			return "An unexpected error occurred. Please try again."
		}
	}
	return err.Error()
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}

// ShouldLogError determines if an error should be logged based on its type
func ShouldLogError(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeParse, ErrorTypeOutOfRange, ErrorTypeValidation:
			return false // user input errors
		default:
			return true
		}
	}
	return true
}
