package validation

// ValidateUsername checks the display name given to login. Any non-blank
// single-line text within the length limit is accepted.
func (v *Validator) ValidateUsername(name string) error {
	validationError := NewValidationError()
	trimmed := v.TrimAndValidateString(name)

	if !v.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("username")
		return validationError
	}
	if !v.IsWithinLength(trimmed, v.usernameMaxLength()) {
		validationError.AddInvalidLengthError("username", trimmed, v.usernameMaxLength())
	}
	if !v.IsSingleLine(trimmed) {
		validationError.AddInvalidCharacterError("username", trimmed)
	}

	return validationError.OrNil()
}
