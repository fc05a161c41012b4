package cli

import (
	stderrors "errors"
	"fmt"

	"kanban/internal/errors"
	"kanban/internal/validation"
)

// ErrorHandler turns errors into the text shown to the user
type ErrorHandler struct{}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{}
}

// Handle prefixes the user message with the failed operation
func (eh *ErrorHandler) Handle(operation string, err error) error {
	return fmt.Errorf("failed to %s: %s", operation, eh.Message(err))
}

// HandleSimple returns the user message of err as an error
func (eh *ErrorHandler) HandleSimple(err error) error {
	if _, ok := errors.AsAppError(err); ok {
		return fmt.Errorf("%s", eh.Message(err))
	}
	if validation.IsValidationError(err) {
		return fmt.Errorf("%s", eh.Message(err))
	}
	return err
}

// Message returns the text to show for err
func (eh *ErrorHandler) Message(err error) string {
	var ve *validation.ValidationError
	if stderrors.As(err, &ve) {
		return ve.GetUserFriendlyMessage()
	}
	return errors.GetUserMessage(err)
}

// IsUserError reports whether err was caused by user input rather than the system
func (eh *ErrorHandler) IsUserError(err error) bool {
	if validation.IsValidationError(err) {
		return true
	}
	return !errors.ShouldLogError(err)
}

// GetErrorCode returns the error code for structured errors
func (eh *ErrorHandler) GetErrorCode(err error) string {
	if validation.IsValidationError(err) {
		return "VALIDATION_FAILED"
	}
	return string(errors.GetErrorCode(err))
}
