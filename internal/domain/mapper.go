package domain

import (
	"fmt"

	"taskboard/internal/persistence"
)

// TaskMapper handles conversion between domain Tasks and stored TaskRecords.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToRecord converts a domain Task to its stored form.
func (m *TaskMapper) ToRecord(task Task) persistence.TaskRecord {
	return persistence.TaskRecord{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Priority:    string(task.Priority),
		DueDate:     task.DueDate,
		Tags:        append(make([]string, 0, len(task.Tags)), task.Tags...),
		Completed:   task.Completed,
		CreatedAt:   persistence.FormatTimestamp(task.CreatedAt),
	}
}

// FromRecord converts a stored TaskRecord to a domain Task. It fails only
// when the creation timestamp cannot be parsed; other fields are copied as
// found and left to the caller to check.
func (m *TaskMapper) FromRecord(record persistence.TaskRecord) (Task, error) {
	createdAt, err := persistence.ParseTimestamp(record.CreatedAt)
	if err != nil {
		return Task{}, fmt.Errorf("task %s: invalid createdAt %q: %w", record.ID, record.CreatedAt, err)
	}
	return Task{
		ID:          record.ID,
		Title:       record.Title,
		Description: record.Description,
		Priority:    Priority(record.Priority),
		DueDate:     record.DueDate,
		Tags:        append(make([]string, 0, len(record.Tags)), record.Tags...),
		Completed:   record.Completed,
		CreatedAt:   createdAt,
	}, nil
}

// ToRecordSlice converts a slice of domain Tasks to TaskRecords.
func (m *TaskMapper) ToRecordSlice(tasks []Task) []persistence.TaskRecord {
	records := make([]persistence.TaskRecord, len(tasks))
	for i, task := range tasks {
		records[i] = m.ToRecord(task)
	}
	return records
}
