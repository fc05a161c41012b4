package errors

import (
	"fmt"
)

// ErrorType is the broad category of a failure
type ErrorType int

const (
	ErrorTypeNotFound ErrorType = iota
	ErrorTypeInvalidInput
	ErrorTypeConflict
	ErrorTypeDatabase
	ErrorTypeTimeout
)

// String returns the string representation of the error type
func (et ErrorType) String() string {
	switch et {
	case ErrorTypeNotFound:
		return "not_found"
	case ErrorTypeInvalidInput:
		return "invalid_input"
	case ErrorTypeConflict:
		return "conflict"
	case ErrorTypeDatabase:
		return "database"
	case ErrorTypeTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// Code names one failure precisely. The REPL and TUI branch on it.
type Code string

const (
	CodeTaskNotFound    Code = "TASK_NOT_FOUND"
	CodeSettingNotFound Code = "SETTING_NOT_FOUND"
	CodeNotFound        Code = "NOT_FOUND"

	CodeDragInProgress Code = "DRAG_IN_PROGRESS"
	CodeNoDrag         Code = "NO_DRAG"

	CodeUnknownCommand Code = "UNKNOWN_COMMAND"
	CodeUsage          Code = "USAGE"
	CodeBadLine        Code = "BAD_LINE"
	CodeBadTheme       Code = "BAD_THEME"
	CodeBadFormat      Code = "BAD_FORMAT"
	CodeInvalidInput   Code = "INVALID_INPUT"

	CodeDatabase Code = "DATABASE_ERROR"
	CodeTimeout  Code = "TIMEOUT"
	CodeUnknown  Code = "UNKNOWN_ERROR"
)

// AppError is a failure of the board session, the command line or the
// settings database. Subject is the task id, command or key involved.
type AppError struct {
	Type    ErrorType
	Code    Code
	Message string
	Subject string
	Cause   error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error for error unwrapping
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is matches another AppError with the same type and code
func (e *AppError) Is(target error) bool {
	if appErr, ok := target.(*AppError); ok {
		return e.Type == appErr.Type && e.Code == appErr.Code
	}
	return false
}
