package persistence

import (
	"time"
)

// Keys of the values the application persists.
const (
	KeyUsername = "username"
	KeyTasks    = "tasks"
	KeyDarkMode = "darkMode"
)

// TimestampLayout is the stored form of TaskRecord.CreatedAt: RFC 3339 with milliseconds.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// TaskRecord is the stored shape of a task. Field names are part of the
// on-disk format and must not change.
type TaskRecord struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    string   `json:"priority"`
	DueDate     string   `json:"dueDate"`
	Tags        []string `json:"tags"`
	Completed   bool     `json:"completed"`
	CreatedAt   string   `json:"createdAt"`
}

// FormatTimestamp renders t in UTC with millisecond precision.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseTimestamp accepts TimestampLayout and, for hand-edited stores, any RFC 3339 value.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.Parse(TimestampLayout, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return time.Time{}, err
		}
	}
	return t.UTC().Truncate(time.Millisecond), nil
}
