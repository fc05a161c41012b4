package cli

import (
	"context"
	"errors"
	"fmt"
	"testing"

	apperrors "kanban/internal/errors"
	"kanban/internal/validation"
)

func requiredContentError() error {
	ve := validation.NewValidationError()
	ve.AddRequiredError("content")
	return ve
}

func TestErrorHandler_Handle(t *testing.T) {
	eh := NewErrorHandler()

	tests := []struct {
		name      string
		operation string
		err       error
		expected  string
	}{
		{
			name:      "Conflict error",
			operation: "drop",
			err:       apperrors.NewNoDragError(),
			expected:  "failed to drop: no drag in progress",
		},
		{
			name:      "Field validation error",
			operation: "add task",
			err:       requiredContentError(),
			expected:  "failed to add task: content is required",
		},
		{
			name:      "Not found error",
			operation: "drag",
			err:       apperrors.NewNotFoundError("task", "task-9"),
			expected:  "failed to drag: task not found: task-9",
		},
		{
			name:      "Database error",
			operation: "save theme",
			err:       apperrors.NewDatabaseError("upsert", errors.New("disk full")),
			expected:  "failed to save theme: A settings database error occurred. Please try again.",
		},
		{
			name:      "Timeout error",
			operation: "load theme",
			err:       apperrors.NewDatabaseError("get", context.DeadlineExceeded),
			expected:  "failed to load theme: The operation timed out. Please try again.",
		},
		{
			name:      "Regular error",
			operation: "export",
			err:       errors.New("regular error"),
			expected:  "failed to export: regular error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := eh.Handle(tt.operation, tt.err)
			if result.Error() != tt.expected {
				t.Errorf("ErrorHandler.Handle() = %v, want %v", result.Error(), tt.expected)
			}
		})
	}
}

func TestErrorHandler_HandleSimple(t *testing.T) {
	eh := NewErrorHandler()
	plain := errors.New("plain")

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "App error", err: apperrors.NewInvalidInputError("theme", "blue", "must be light or dark"), expected: "invalid input for theme: must be light or dark"},
		{name: "Validation error", err: requiredContentError(), expected: "content is required"},
		{name: "Wrapped validation error", err: fmt.Errorf("add: %w", requiredContentError()), expected: "content is required"},
		{name: "Plain error", err: plain, expected: "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := eh.HandleSimple(tt.err)
			if result.Error() != tt.expected {
				t.Errorf("ErrorHandler.HandleSimple() = %v, want %v", result.Error(), tt.expected)
			}
		})
	}

	if eh.HandleSimple(plain) != plain {
		t.Errorf("HandleSimple should return unstructured errors unchanged")
	}
}

func TestErrorHandler_IsUserError(t *testing.T) {
	eh := NewErrorHandler()

	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"Validation", requiredContentError(), true},
		{"Invalid input", apperrors.NewInvalidInputError("command", "x", "unknown"), true},
		{"Not found", apperrors.NewNotFoundError("task", "task-1"), true},
		{"Database", apperrors.NewDatabaseError("get", errors.New("locked")), false},
		{"Timeout", apperrors.NewTimeoutError("get", nil), false},
		{"Plain", errors.New("plain"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := eh.IsUserError(tt.err); got != tt.expected {
				t.Errorf("IsUserError() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestErrorHandler_GetErrorCode(t *testing.T) {
	eh := NewErrorHandler()

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"Validation", requiredContentError(), "VALIDATION_FAILED"},
		{"Not found", apperrors.NewNotFoundError("task", "task-1"), "TASK_NOT_FOUND"},
		{"Conflict", apperrors.NewNoDragError(), "NO_DRAG"},
		{"Database", apperrors.NewDatabaseError("get", errors.New("x")), "DATABASE_ERROR"},
		{"Invalid input", apperrors.NewInvalidInputError("f", "v", "r"), "INVALID_INPUT"},
		{"Plain", errors.New("plain"), "UNKNOWN_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := eh.GetErrorCode(tt.err); got != tt.expected {
				t.Errorf("GetErrorCode() = %v, want %v", got, tt.expected)
			}
		})
	}
}
