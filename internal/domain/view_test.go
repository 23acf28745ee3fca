package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilter(t *testing.T) {
	tests := []struct {
		input   string
		want    Filter
		wantErr bool
	}{
		{"", FilterAll, false},
		{"all", FilterAll, false},
		{"Pending", FilterPending, false},
		{" completed ", FilterCompleted, false},
		{"done", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFilter(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFilter_Matches(t *testing.T) {
	open := Task{Title: "Buy milk"}
	done := Task{Title: "Fix bug", Completed: true}

	assert.True(t, FilterAll.Matches(open))
	assert.True(t, FilterAll.Matches(done))
	assert.True(t, FilterPending.Matches(open))
	assert.False(t, FilterPending.Matches(done))
	assert.False(t, FilterCompleted.Matches(open))
	assert.True(t, FilterCompleted.Matches(done))
}

func TestViewState_Term(t *testing.T) {
	assert.False(t, ViewState{Search: "   "}.IsSearching())
	assert.True(t, ViewState{Search: " bug "}.IsSearching())
	assert.Equal(t, "bug", ViewState{Search: " bug "}.Term())
}

func TestCounts_For(t *testing.T) {
	c := Counts{All: 5, Pending: 3, Completed: 2}
	assert.Equal(t, 5, c.For(FilterAll))
	assert.Equal(t, 3, c.For(FilterPending))
	assert.Equal(t, 2, c.For(FilterCompleted))
}

func TestSessionState_String(t *testing.T) {
	assert.Equal(t, "anonymous", SessionAnonymous.String())
	assert.Equal(t, "authenticated", SessionAuthenticated.String())
}
