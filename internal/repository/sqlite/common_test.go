package sqlite

import (
	"context"
	"database/sql"
	stderrors "errors"
	"fmt"
	"testing"
	"time"

	"taskboard/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScanner implements the Scanner interface for testing
type TestScanner struct {
	data []interface{}
	err  error
}

func (ts *TestScanner) Scan(dest ...interface{}) error {
	if ts.err != nil {
		return ts.err
	}
	if len(dest) != len(ts.data) {
		return stderrors.New("mismatch in number of destinations")
	}
	for i, d := range dest {
		switch v := d.(type) {
		case *string:
			*v = ts.data[i].(string)
		case *[]byte:
			*v = ts.data[i].([]byte)
		}
	}
	return nil
}

func TestHandleStorageError(t *testing.T) {
	err := HandleStorageError("put tasks", stderrors.New("disk I/O error"))
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeStorage))
	assert.Contains(t, err.Error(), "put tasks")
	assert.Contains(t, err.Error(), "disk I/O error")

	timeout := HandleStorageError("get tasks", fmt.Errorf("query: %w", context.DeadlineExceeded))
	assert.True(t, errors.IsErrorType(timeout, errors.ErrorTypeTimeout))
}

func TestWithTimeout(t *testing.T) {
	ctx, cancel := WithTimeout(context.Background(), 0)
	defer cancel()
	_, hasDeadline := ctx.Deadline()
	assert.False(t, hasDeadline)

	ctx2, cancel2 := WithTimeout(context.Background(), time.Minute)
	defer cancel2()
	deadline, hasDeadline := ctx2.Deadline()
	assert.True(t, hasDeadline)
	assert.WithinDuration(t, time.Now().Add(time.Minute), deadline, 5*time.Second)
}

func TestScanEntry(t *testing.T) {
	tests := []struct {
		name        string
		scanner     *TestScanner
		expected    *Entry
		expectError bool
	}{
		{
			name:    "valid row",
			scanner: &TestScanner{data: []interface{}{"tasks", []byte("[]"), "2024-01-15T10:00:00Z"}},
			expected: &Entry{
				Key:       "tasks",
				Value:     []byte("[]"),
				UpdatedAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
			},
		},
		{
			name:        "bad timestamp",
			scanner:     &TestScanner{data: []interface{}{"tasks", []byte("[]"), "yesterday"}},
			expectError: true,
		},
		{
			name:        "no rows",
			scanner:     &TestScanner{err: sql.ErrNoRows},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := ScanEntry(tt.scanner)
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, entry)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected.Key, entry.Key)
			assert.Equal(t, tt.expected.Value, entry.Value)
			assert.True(t, tt.expected.UpdatedAt.Equal(entry.UpdatedAt))
		})
	}
}

