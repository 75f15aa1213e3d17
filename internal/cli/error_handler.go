package cli

import (
	stderrors "errors"

	"monet/internal/errors"
	"monet/internal/logging"
	"monet/internal/validation"
)

// ErrorHandler turns command errors into the text shown to the user
type ErrorHandler struct {
	renderer *Renderer
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(renderer *Renderer) *ErrorHandler {
	return &ErrorHandler{renderer: renderer}
}

// Message returns the reply for err, e.g. "Sorry! Task number not found. ..."
func (eh *ErrorHandler) Message(err error) string {
	if errors.ShouldLogError(err) {
		logging.Debugf("error [%s]: %v\n", eh.GetErrorCode(err), err)
	}

	if eh.IsValidationError(err) {
		var validationErr *validation.ValidationError
		if stderrors.As(err, &validationErr) && !errors.IsAppError(err) {
			return eh.renderer.Error(validationErr.GetUserFriendlyMessage())
		}
	}
	return eh.renderer.Error(errors.GetUserMessage(err))
}

// IsValidationError checks if an error is a validation error
func (eh *ErrorHandler) IsValidationError(err error) bool {
	if validation.IsValidationError(err) {
		return true
	}
	return errors.IsErrorType(err, errors.ErrorTypeValidation)
}

// Detail reports the underlying cause of a storage error as a warning, since
// the reply only says that saving failed.
func (eh *ErrorHandler) Detail(err error) {
	if eh.IsStorageError(err) {
		logging.Warnf("%v", err)
	}
}

// IsStorageError checks if an error came from saving or loading tasks
func (eh *ErrorHandler) IsStorageError(err error) bool {
	return errors.IsErrorType(err, errors.ErrorTypeIO) ||
		errors.IsErrorType(err, errors.ErrorTypeDateDecode) ||
		errors.IsErrorType(err, errors.ErrorTypeCorruptedRecord)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	return errors.GetErrorCode(err)
}
