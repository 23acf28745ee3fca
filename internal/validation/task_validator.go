package validation

import (
	"strings"

	"taskboard/internal/config"
	"taskboard/internal/domain"
)

// TaskValidator provides validation for task input, patches and stored tasks
type TaskValidator struct {
	validator *Validator
}

// NewTaskValidator creates a task validator with default limits
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{validator: NewValidator()}
}

// NewTaskValidatorWithConfig creates a task validator with the limits in cfg
func NewTaskValidatorWithConfig(cfg *config.Config) *TaskValidator {
	return &TaskValidator{validator: NewValidatorWithConfig(cfg)}
}

// ValidateTitle validates a task title for creation or update
func (tv *TaskValidator) ValidateTitle(title string) error {
	validationError := NewValidationError()
	trimmed := tv.validator.TrimAndValidateString(title)

	if !tv.validator.IsNonEmptyString(trimmed) {
		validationError.AddRequiredError("title")
		return validationError
	}
	if max := tv.validator.titleMaxLength(); !tv.validator.IsWithinLength(trimmed, max) {
		validationError.AddInvalidLengthError("title", trimmed, max)
	}
	if !tv.validator.IsSingleLine(trimmed) {
		validationError.AddInvalidCharacterError("title", trimmed)
	}

	return validationError.OrNil()
}

// ValidateDescription checks the description length. Empty is fine.
func (tv *TaskValidator) ValidateDescription(description string) error {
	if max := tv.validator.descriptionMaxLength(); !tv.validator.IsWithinLength(description, max) {
		validationError := NewValidationError()
		validationError.AddInvalidLengthError("description", description, max)
		return validationError
	}
	return nil
}

// ValidatePriority accepts the three known priorities. Empty means the default.
func (tv *TaskValidator) ValidatePriority(priority domain.Priority) error {
	if priority == "" || priority.IsValid() {
		return nil
	}
	validationError := NewValidationError()
	validationError.AddInvalidValueError("priority", string(priority), "must be one of: high, medium, low")
	return validationError
}

// ValidateDueDate accepts an empty string or a YYYY-MM-DD calendar date
func (tv *TaskValidator) ValidateDueDate(dueDate string) error {
	trimmed := tv.validator.TrimAndValidateString(dueDate)
	if trimmed == "" || tv.validator.IsValidDate(trimmed) {
		return nil
	}
	validationError := NewValidationError()
	validationError.AddInvalidFormatError("due_date", dueDate, "YYYY-MM-DD")
	return validationError
}

// ValidateTags checks each non-blank tag. Blank tags are dropped later, not rejected.
func (tv *TaskValidator) ValidateTags(tags []string) error {
	validationError := NewValidationError()
	max := tv.validator.tagMaxLength()
	for _, tag := range tags {
		trimmed := tv.validator.TrimAndValidateString(tag)
		if trimmed == "" {
			continue
		}
		if !tv.validator.IsWithinLength(trimmed, max) {
			validationError.AddInvalidLengthError("tag", trimmed, max)
		}
		if !tv.validator.IsSingleLine(trimmed) {
			validationError.AddInvalidCharacterError("tag", trimmed)
		}
	}
	return validationError.OrNil()
}

// ResolveCategory matches name against the configured categories ignoring
// case and returns the configured spelling. An empty name resolves to "".
func (tv *TaskValidator) ResolveCategory(name string) (string, error) {
	trimmed := tv.validator.TrimAndValidateString(name)
	if trimmed == "" {
		return "", nil
	}
	for _, category := range tv.validator.categories() {
		if strings.EqualFold(category, trimmed) {
			return category, nil
		}
	}
	validationError := NewValidationError()
	validationError.AddInvalidValueError("category", trimmed,
		"must be one of: "+strings.Join(tv.validator.categories(), ", "))
	return "", validationError
}

// ValidateInput validates everything needed to add a task
func (tv *TaskValidator) ValidateInput(input domain.TaskInput) error {
	validationError := NewValidationError()
	validationError.Merge("title", tv.ValidateTitle(input.Title))
	validationError.Merge("description", tv.ValidateDescription(input.Description))
	validationError.Merge("priority", tv.ValidatePriority(input.Priority))
	validationError.Merge("due_date", tv.ValidateDueDate(input.DueDate))
	validationError.Merge("tag", tv.ValidateTags(input.Tags))
	if _, err := tv.ResolveCategory(input.Category); err != nil {
		validationError.Merge("category", err)
	}
	return validationError.OrNil()
}

// ValidatePatch validates the fields present in a patch. A title that is
// present must not be blank.
func (tv *TaskValidator) ValidatePatch(patch domain.TaskPatch) error {
	validationError := NewValidationError()
	if patch.Title != nil {
		validationError.Merge("title", tv.ValidateTitle(*patch.Title))
	}
	if patch.Description != nil {
		validationError.Merge("description", tv.ValidateDescription(*patch.Description))
	}
	if patch.Priority != nil {
		if *patch.Priority == "" {
			validationError.AddRequiredError("priority")
		} else {
			validationError.Merge("priority", tv.ValidatePriority(*patch.Priority))
		}
	}
	if patch.DueDate != nil {
		validationError.Merge("due_date", tv.ValidateDueDate(*patch.DueDate))
	}
	if patch.Tags != nil {
		validationError.Merge("tag", tv.ValidateTags(*patch.Tags))
	}
	if patch.Category != nil {
		if _, err := tv.ResolveCategory(*patch.Category); err != nil {
			validationError.Merge("category", err)
		}
	}
	return validationError.OrNil()
}

// ValidateTask checks a task read back from storage. Only the identity and
// title are enforced so that hand-edited stores still load.
func (tv *TaskValidator) ValidateTask(task domain.Task) error {
	validationError := NewValidationError()
	if task.ID == "" {
		validationError.AddRequiredError("id")
	}
	if !tv.validator.IsNonEmptyString(task.Title) {
		validationError.AddRequiredError("title")
	}
	return validationError.OrNil()
}
