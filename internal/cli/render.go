package cli

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"taskboard/internal/domain"
)

// renderHeader prints the greeting, the per-filter counts and a rule. The
// active filter is highlighted.
func (a *App) renderHeader(theme Theme, user string, view domain.View) {
	a.println(theme.Header.Render(fmt.Sprintf("Welcome back, %s!", user)))

	parts := make([]string, 0, len(domain.Filters))
	for _, f := range domain.Filters {
		label := fmt.Sprintf("%s (%d)", filterLabel(f), view.Counts.For(f))
		if f == view.State.Filter {
			label = theme.Title.Render(label)
		} else {
			label = theme.Muted.Render(label)
		}
		parts = append(parts, label)
	}
	a.println(strings.Join(parts, " · "))
	a.println(theme.Rule.Render(strings.Repeat("─", a.config.Display.Width)))
}

// renderEmpty prints the message for a view with no tasks.
func (a *App) renderEmpty(theme Theme, view domain.View) {
	if view.State.IsSearching() {
		a.println("No tasks match your search.")
		a.println(theme.Muted.Render("Try adjusting your search term."))
		return
	}
	a.println("No tasks found.")
	a.println(theme.Muted.Render("Create your first task with `tb add`."))
}

// renderTask prints one task: a summary line, then the description and the
// creation time indented below it.
func (a *App) renderTask(theme Theme, task domain.Task) {
	check := "[ ]"
	title := theme.Title.Render(task.Title)
	if task.Completed {
		check = "[x]"
		title = theme.Done.Render(task.Title)
	}

	line := []string{
		check,
		theme.ID.Render(a.shortID(task.ID)),
		title,
		theme.Priority(task.Priority).Render(string(task.Priority)),
	}
	if due := a.formatDue(theme, task); due != "" {
		line = append(line, due)
	}
	for _, tag := range task.Tags {
		line = append(line, theme.Tag.Render("#"+tag))
	}
	a.println(strings.Join(line, "  "))

	if task.Description != "" {
		a.println("    " + task.Description)
	}
	a.println("    " + theme.Muted.Render("created "+humanize.RelTime(task.CreatedAt, a.now(), "ago", "from now")))
}

// formatDue shows a due date in the display format. Dates that do not parse
// are shown as stored.
func (a *App) formatDue(theme Theme, task domain.Task) string {
	if task.DueDate == "" {
		return ""
	}
	due, ok := task.Due()
	if !ok {
		return "due " + task.DueDate
	}
	text := "due " + due.Format(a.config.Display.DateFormat)
	if task.IsOverdue(a.now()) {
		return theme.Overdue.Render(text + " (overdue)")
	}
	return theme.Muted.Render(text)
}

func filterLabel(f domain.Filter) string {
	switch f {
	case domain.FilterPending:
		return "Pending"
	case domain.FilterCompleted:
		return "Completed"
	default:
		return "All"
	}
}
