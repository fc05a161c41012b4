package validation

import (
	"strings"
	"unicode/utf8"

	"kanban/internal/config"
	"kanban/internal/domain"
)

// DefaultContentMaxLength is used when no configuration is supplied.
const DefaultContentMaxLength = 500

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{
		config: nil, // Use defaults
	}
}

// NewValidatorWithConfig creates a new validator instance with configuration
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	return &Validator{
		config: cfg,
	}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsValidStringLength checks if the trimmed rune count is within [min, max]
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := utf8.RuneCountInString(strings.TrimSpace(s))
	return length >= min && length <= max
}

// IsValidContentLength checks a task content length against the configured limit
func (v *Validator) IsValidContentLength(content string) bool {
	return v.IsValidStringLength(content, 1, v.getContentMaxLength())
}

// IsValidTaskID checks that a task id is non-empty and has no whitespace
func (v *Validator) IsValidTaskID(id string) bool {
	return id != "" && !strings.ContainsAny(id, " \t\r\n")
}

// IsValidColumnID checks that id names one of the board columns
func (v *Validator) IsValidColumnID(id string) bool {
	return domain.IsKnownColumn(id)
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

// ContentMaxLength returns the maximum task content length in runes
func (v *Validator) ContentMaxLength() int {
	return v.getContentMaxLength()
}

func (v *Validator) getContentMaxLength() int {
	if v.config != nil && v.config.Board.ContentMaxLength > 0 {
		return v.config.Board.ContentMaxLength
	}
	return DefaultContentMaxLength
}
