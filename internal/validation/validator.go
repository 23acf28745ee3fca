package validation

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"taskboard/internal/config"
	"taskboard/internal/domain"
)

// Validator provides common validation utilities
type Validator struct {
	config *config.Config
}

// NewValidator creates a validator using the default limits
func NewValidator() *Validator {
	return &Validator{config: config.NewConfig()}
}

// NewValidatorWithConfig creates a validator using the limits in cfg
func NewValidatorWithConfig(cfg *config.Config) *Validator {
	if cfg == nil {
		return NewValidator()
	}
	return &Validator{config: cfg}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsWithinLength reports whether the trimmed string has at most max characters.
func (v *Validator) IsWithinLength(s string, max int) bool {
	return utf8.RuneCountInString(strings.TrimSpace(s)) <= max
}

// IsSingleLine rejects newlines, tabs and other control characters.
func (v *Validator) IsSingleLine(s string) bool {
	return strings.IndexFunc(s, unicode.IsControl) < 0
}

// IsValidDate checks for an existing calendar date in YYYY-MM-DD form
func (v *Validator) IsValidDate(s string) bool {
	_, err := time.Parse(domain.DateLayout, s)
	return err == nil
}

// TrimAndValidateString trims whitespace and returns the cleaned string
func (v *Validator) TrimAndValidateString(s string) string {
	return strings.TrimSpace(s)
}

func (v *Validator) titleMaxLength() int {
	return v.config.Validation.TitleMaxLength
}

func (v *Validator) descriptionMaxLength() int {
	return v.config.Validation.DescriptionMaxLength
}

func (v *Validator) usernameMaxLength() int {
	return v.config.Validation.UsernameMaxLength
}

func (v *Validator) tagMaxLength() int {
	return v.config.Validation.TagMaxLength
}

func (v *Validator) categories() []string {
	return v.config.Tasks.Categories
}
