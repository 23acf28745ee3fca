package domain

import (
	"strings"
	"time"
)

// DateLayout is the calendar date form used for due dates.
const DateLayout = "2006-01-02"

// Task represents a task in the domain model.
// This is a pure domain model without storage-specific concerns.
type Task struct {
	ID          string
	Title       string
	Description string
	Priority    Priority
	DueDate     string
	Tags        []string
	Completed   bool
	CreatedAt   time.Time
}

// NewTask builds a task from input with defaults applied. ID and CreatedAt
// are supplied by the caller, since only the store may assign them.
func NewTask(id string, input TaskInput, createdAt time.Time) Task {
	priority := input.Priority
	if priority == "" {
		priority = PriorityMedium
	}

	tags := NormalizeTags(input.Tags)
	if input.Category != "" {
		tags = AddTag(tags, input.Category)
	}

	return Task{
		ID:          id,
		Title:       strings.TrimSpace(input.Title),
		Description: strings.TrimSpace(input.Description),
		Priority:    priority,
		DueDate:     strings.TrimSpace(input.DueDate),
		Tags:        tags,
		CreatedAt:   createdAt.UTC().Truncate(time.Millisecond),
	}
}

// IsValid checks if the task has valid data.
func (t Task) IsValid() bool {
	return t.ID != "" && strings.TrimSpace(t.Title) != ""
}

// String returns the task title for display purposes.
func (t Task) String() string {
	return t.Title
}

// Clone returns a copy that shares no memory with t.
func (t Task) Clone() Task {
	c := t
	c.Tags = append(make([]string, 0, len(t.Tags)), t.Tags...)
	return c
}

// Due parses DueDate. ok is false when the task has no usable due date.
func (t Task) Due() (due time.Time, ok bool) {
	if t.DueDate == "" {
		return time.Time{}, false
	}
	due, err := time.Parse(DateLayout, t.DueDate)
	if err != nil {
		return time.Time{}, false
	}
	return due, true
}

// IsOverdue reports whether an open task's due date is before the day of now.
func (t Task) IsOverdue(now time.Time) bool {
	due, ok := t.Due()
	if !ok || t.Completed {
		return false
	}
	y, m, d := now.Date()
	return due.Before(time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
}
