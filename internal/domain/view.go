package domain

import (
	"strings"

	"taskboard/internal/errors"
)

// Filter selects tasks by completion status.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterPending   Filter = "pending"
	FilterCompleted Filter = "completed"
)

// Filters lists every filter in display order.
var Filters = []Filter{FilterAll, FilterPending, FilterCompleted}

// ParseFilter accepts a filter name in any case. An empty string means all.
func ParseFilter(s string) (Filter, error) {
	f := Filter(strings.ToLower(strings.TrimSpace(s)))
	switch f {
	case "":
		return FilterAll, nil
	case FilterAll, FilterPending, FilterCompleted:
		return f, nil
	}
	return "", errors.NewInvalidInputError("filter", s, "must be one of: all, pending, completed")
}

// Matches reports whether t passes the filter.
func (f Filter) Matches(t Task) bool {
	switch f {
	case FilterPending:
		return !t.Completed
	case FilterCompleted:
		return t.Completed
	}
	return true
}

func (f Filter) String() string {
	return string(f)
}

// ViewState is what the user has chosen to look at. It is never persisted.
type ViewState struct {
	Filter Filter
	Search string
}

// Term returns the trimmed search text.
func (s ViewState) Term() string {
	return strings.TrimSpace(s.Search)
}

// IsSearching reports whether a non-blank search term is active.
func (s ViewState) IsSearching() bool {
	return s.Term() != ""
}

// Counts holds the number of tasks per filter over the whole collection.
type Counts struct {
	All       int
	Pending   int
	Completed int
}

// For returns the count shown next to filter f.
func (c Counts) For(f Filter) int {
	switch f {
	case FilterPending:
		return c.Pending
	case FilterCompleted:
		return c.Completed
	}
	return c.All
}

// View is the derived, display-ready projection of the task collection.
type View struct {
	Tasks  []Task
	Counts Counts
	State  ViewState
}

// IsEmpty reports whether nothing passed the filter and search.
func (v View) IsEmpty() bool {
	return len(v.Tasks) == 0
}
