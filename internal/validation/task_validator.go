package validation

import (
	"strings"

	"monet/internal/codec"
	"monet/internal/config"
	"monet/internal/domain"
)

// TaskValidator checks that a task can be stored and read back unchanged.
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{
		validator: NewValidator(),
	}
}

// NewTaskValidatorWithConfig creates a task validator using configured limits
func NewTaskValidatorWithConfig(cfg *config.Config) *TaskValidator {
	return &TaskValidator{
		validator: NewValidatorWithConfig(cfg),
	}
}

// ValidateDescription validates a task description before the task is added
func (tv *TaskValidator) ValidateDescription(description string) error {
	validationError := NewValidationError()

	trimmed := tv.validator.TrimAndValidateString(description)

	if !tv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("description")
		return validationError
	}

	maxLen := tv.validator.DescriptionMaxLength()
	if !tv.validator.IsValidDescriptionLength(trimmed) {
		validationError.AddInvalidLengthError("description", trimmed, 0, maxLen)
	}

	if tv.validator.ContainsRecordSeparator(trimmed) {
		validationError.AddInvalidValueError("description", trimmed,
			"must not contain '"+strings.TrimSpace(RecordSeparator)+"' surrounded by spaces or end with ' "+strings.TrimSpace(RecordSeparator)+"'")
	}

	if tv.validator.ContainsControlCharacters(trimmed) {
		validationError.AddInvalidCharacterError("description", trimmed)
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}

// ValidateTask validates a domain.Task before it is added to the list
func (tv *TaskValidator) ValidateTask(task domain.Task) error {
	validationError := NewValidationError()

	if descErr := tv.ValidateDescription(task.Description); descErr != nil {
		if descValidationErr, ok := descErr.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, descValidationErr.Errors...)
		}
	}

	if !task.Priority.IsValid() {
		validationError.AddInvalidValueError("priority", task.Priority.Level(), "must be 1, 2 or 3")
	}

	switch task.Kind {
	case domain.KindDeadline:
		if task.By.IsZero() {
			validationError.AddRequiredError("by")
		}
	case domain.KindEvent:
		if task.From.IsZero() {
			validationError.AddRequiredError("from")
		}
		if task.To.IsZero() {
			validationError.AddRequiredError("to")
		}
	case domain.KindTodo:
	default:
		validationError.AddInvalidValueError("kind", int(task.Kind), "unknown task kind")
	}

	if !validationError.HasErrors() {
		if err := codec.Verify(task); err != nil {
			validationError.AddInvalidValueError("description", task.Description, "cannot be stored and read back unchanged")
		}
	}

	if validationError.HasErrors() {
		return validationError
	}

	return nil
}
