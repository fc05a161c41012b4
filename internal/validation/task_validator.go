package validation

import (
	"kanban/internal/config"
)

// TaskValidator validates the user supplied parts of kanban operations
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a new task validator with default limits
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

// ValidateContent validates task content for creation or edit
func (tv *TaskValidator) ValidateContent(content string) error {
	validationError := NewValidationError()

	trimmed := tv.validator.TrimAndValidateString(content)
	if !tv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("content")
		return validationError
	}

	maxLen := tv.validator.ContentMaxLength()
	if !tv.validator.IsValidContentLength(trimmed) {
		validationError.AddInvalidLengthError("content", trimmed, 1, maxLen)
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// GetValidContent returns the trimmed content if it is valid
func (tv *TaskValidator) GetValidContent(content string) (string, error) {
	if err := tv.ValidateContent(content); err != nil {
		return "", err
	}
	return tv.validator.TrimAndValidateString(content), nil
}

// ValidateTaskID validates the shape of a task id
func (tv *TaskValidator) ValidateTaskID(id string) error {
	if !tv.validator.IsValidTaskID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidFormatError("task_id", id, "a non-empty id without spaces")
		return validationError
	}
	return nil
}

// ValidateColumnID validates that id names a board column
func (tv *TaskValidator) ValidateColumnID(id string) error {
	if !tv.validator.IsValidColumnID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("column", id, "must be one of todo, inProgress, done")
		return validationError
	}
	return nil
}

// ValidateAdd validates the arguments of an add-task operation
func (tv *TaskValidator) ValidateAdd(columnID, content string) error {
	validationError := NewValidationError()

	for _, check := range []error{tv.ValidateColumnID(columnID), tv.ValidateContent(content)} {
		if ve, ok := check.(*ValidationError); ok {
			validationError.Errors = append(validationError.Errors, ve.Errors...)
		}
	}

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}
