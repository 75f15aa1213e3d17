package validation

import (
	"strings"
	"unicode"

	"monet/internal/codec"
	"monet/internal/config"
)

// RecordSeparator is the field delimiter of the on-disk record format. A
// description containing it cannot be decoded back to the same task.
const RecordSeparator = codec.Separator

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

// IsValidStringLength checks if a string length is within the specified range
func (v *Validator) IsValidStringLength(s string, min, max int) bool {
	length := len([]rune(strings.TrimSpace(s)))
	return length >= min && length <= max
}

// IsValidDescriptionLength checks if a description length is within configured limits
func (v *Validator) IsValidDescriptionLength(description string) bool {
	return v.IsValidStringLength(description, 1, v.getDescriptionMaxLength())
}

// ContainsRecordSeparator reports whether s would split into extra stored
// fields, either by containing the separator or by ending in " |", which
// joins with the separator written after it
func (v *Validator) ContainsRecordSeparator(s string) bool {
	return strings.Contains(s+" ", RecordSeparator)
}

// ContainsControlCharacters reports whether s holds line breaks, tabs or other
// control characters that would break the one-record-per-line format
func (v *Validator) ContainsControlCharacters(s string) bool {
	return strings.IndexFunc(s, unicode.IsControl) >= 0
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

// DescriptionMaxLength returns the longest description accepted
func (v *Validator) DescriptionMaxLength() int {
	return v.getDescriptionMaxLength()
}

// getDescriptionMaxLength returns configured maximum description length or default
func (v *Validator) getDescriptionMaxLength() int {
	if v.config != nil && v.config.Validation.DescriptionMaxLength > 0 {
		return v.config.Validation.DescriptionMaxLength
	}
	return 255 // Default maximum
}
