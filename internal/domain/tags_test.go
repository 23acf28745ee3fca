package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddTag(t *testing.T) {
	tests := []struct {
		name     string
		tags     []string
		tag      string
		expected []string
	}{
		{"append to nil", nil, "urgent", []string{"urgent"}},
		{"trims", []string{"a"}, "  b ", []string{"a", "b"}},
		{"blank ignored", []string{"a"}, "   ", []string{"a"}},
		{"duplicate ignored", []string{"a", "b"}, "a", []string{"a", "b"}},
		{"case sensitive", []string{"Work"}, "work", []string{"Work", "work"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AddTag(tt.tags, tt.tag))
		})
	}
}

func TestAddTag_DoesNotAliasInput(t *testing.T) {
	tags := make([]string, 1, 4)
	tags[0] = "a"

	out := AddTag(tags, "b")
	out[0] = "changed"

	assert.Equal(t, []string{"a"}, tags)
}

func TestRemoveTag(t *testing.T) {
	assert.Equal(t, []string{"a", "c"}, RemoveTag([]string{"a", "b", "c"}, "b"))
	assert.Equal(t, []string{}, RemoveTag(nil, "b"))
}

func TestNormalizeTags(t *testing.T) {
	assert.Equal(t, []string{}, NormalizeTags(nil))
	assert.Equal(t, []string{"a", "B", "b"}, NormalizeTags([]string{" a", "B", "", "a ", "b", "B"}))
}
