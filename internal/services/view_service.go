package services

import (
	"sort"
	"strings"

	"taskboard/internal/domain"
)

// viewServiceImpl implements the ViewService interface. It holds no state.
type viewServiceImpl struct{}

// NewViewService creates a new ViewService instance
func NewViewService() ViewService {
	return &viewServiceImpl{}
}

// Derive filters tasks by status, then by search term, then sorts by
// priority and due date. Counts always cover the whole collection. tasks is
// not modified.
func (v *viewServiceImpl) Derive(tasks []domain.Task, state domain.ViewState) domain.View {
	if state.Filter == "" {
		state.Filter = domain.FilterAll
	}
	term := strings.ToLower(state.Term())

	var counts domain.Counts
	visible := make([]domain.Task, 0, len(tasks))
	for _, task := range tasks {
		counts.All++
		if task.Completed {
			counts.Completed++
		} else {
			counts.Pending++
		}

		if !state.Filter.Matches(task) || !v.matchesSearch(task, term) {
			continue
		}
		visible = append(visible, task.Clone())
	}

	sort.SliceStable(visible, func(i, j int) bool {
		return v.less(visible[i], visible[j])
	})

	return domain.View{Tasks: visible, Counts: counts, State: state}
}

// matchesSearch checks the lower-cased term against title, description and tags
func (v *viewServiceImpl) matchesSearch(task domain.Task, term string) bool {
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(task.Title), term) ||
		strings.Contains(strings.ToLower(task.Description), term) {
		return true
	}
	for _, tag := range task.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// less orders by priority rank, then due date. Tasks without a usable due
// date go after dated ones of the same priority.
func (v *viewServiceImpl) less(a, b domain.Task) bool {
	if ra, rb := a.Priority.Rank(), b.Priority.Rank(); ra != rb {
		return ra < rb
	}
	dueA, okA := a.Due()
	dueB, okB := b.Due()
	switch {
	case okA && okB:
		return dueA.Before(dueB)
	case okA:
		return true
	default:
		return false
	}
}
