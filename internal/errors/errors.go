package errors

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// NewNotFoundError reports a missing resource. The code is derived from
// the resource name, so "task" gives TASK_NOT_FOUND.
func NewNotFoundError(resource string, identifier string) *AppError {
	code := CodeNotFound
	if resource != "" {
		code = Code(strings.ToUpper(resource) + "_NOT_FOUND")
	}
	return &AppError{
		Type:    ErrorTypeNotFound,
		Code:    code,
		Message: fmt.Sprintf("%s not found: %s", resource, identifier),
		Subject: identifier,
	}
}

// NewTaskNotFoundError reports a task id that is on no column
func NewTaskNotFoundError(taskID string) *AppError {
	return NewNotFoundError("task", taskID)
}

// NewDragInProgressError rejects a second drag while activeID is held
func NewDragInProgressError(activeID string) *AppError {
	return &AppError{
		Type:    ErrorTypeConflict,
		Code:    CodeDragInProgress,
		Message: fmt.Sprintf("a drag is already in progress: %s", activeID),
		Subject: activeID,
	}
}

// NewNoDragError rejects a drop or cancel when nothing is picked up
func NewNoDragError() *AppError {
	return &AppError{
		Type:    ErrorTypeConflict,
		Code:    CodeNoDrag,
		Message: "no drag in progress",
	}
}

func newInvalid(code Code, field, subject, reason string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidInput,
		Code:    code,
		Message: fmt.Sprintf("invalid input for %s: %s", field, reason),
		Subject: subject,
	}
}

// NewInvalidInputError creates a new invalid input error
func NewInvalidInputError(field string, value string, reason string) *AppError {
	return newInvalid(CodeInvalidInput, field, value, reason)
}

// NewUnknownCommandError rejects a session command that is not registered
func NewUnknownCommandError(name string) *AppError {
	return newInvalid(CodeUnknownCommand, "command", name, "unknown command, type help for a list")
}

// NewUsageError rejects a command called with the wrong arguments
func NewUsageError(command, usage string) *AppError {
	return newInvalid(CodeUsage, "command", command, "usage: "+usage)
}

// NewBadLineError rejects a command line that cannot be split into words
func NewBadLineError(line, reason string) *AppError {
	return newInvalid(CodeBadLine, "line", line, reason)
}

// NewBadThemeError rejects a theme name
func NewBadThemeError(value, reason string) *AppError {
	return newInvalid(CodeBadTheme, "theme", value, reason)
}

// NewBadFormatError rejects an export format
func NewBadFormatError(value string) *AppError {
	return newInvalid(CodeBadFormat, "format", value, "must be csv or json")
}

// NewDatabaseError creates a new database error. A context deadline in the
// cause chain is reported as a timeout instead.
func NewDatabaseError(operation string, cause error) *AppError {
	if errors.Is(cause, context.DeadlineExceeded) {
		return NewTimeoutError(operation, cause)
	}
	return &AppError{
		Type:    ErrorTypeDatabase,
		Code:    CodeDatabase,
		Message: fmt.Sprintf("database operation failed: %s", operation),
		Subject: operation,
		Cause:   cause,
	}
}

// NewTimeoutError creates a new timeout error
func NewTimeoutError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeTimeout,
		Code:    CodeTimeout,
		Message: fmt.Sprintf("operation timed out: %s", operation),
		Subject: operation,
		Cause:   cause,
	}
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
		return appErr.Type == errorType
	}
	return false
}

// HasCode checks if the error carries the given code
func HasCode(err error, code Code) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == code
	}
	return false
}

// GetUserMessage returns a user-friendly error message
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeNotFound, ErrorTypeInvalidInput, ErrorTypeConflict:
			return appErr.Message
		case ErrorTypeDatabase:
			return "A settings database error occurred. Please try again."
		case ErrorTypeTimeout:
			return "The operation timed out. Please try again."
		default:
			return "An unexpected error occurred. Please try again."
		}
	}
	return err.Error()
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) Code {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return CodeUnknown
}

// ShouldLogError reports whether err is a system failure rather than a
// rejected user action
func ShouldLogError(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeNotFound, ErrorTypeInvalidInput, ErrorTypeConflict:
			return false
		default:
			return true
		}
	}
	return true
}
