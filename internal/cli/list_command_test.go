package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCommand_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("needs a session", func(t *testing.T) {
		app, _, _ := setupTestApp(t, "")

		err := NewListCommand(app, "").Execute(ctx, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "nobody is logged in, run `tb login <name>` first")
	})

	t.Run("empty collection", func(t *testing.T) {
		app, out, _ := setupLoggedInApp(t, "")

		require.NoError(t, NewListCommand(app, "").Execute(ctx, nil))
		output := out.String()
		assert.Contains(t, output, "Welcome back, Ada!")
		assert.Contains(t, output, "All (0) · Pending (0) · Completed (0)")
		assert.Contains(t, output, "No tasks found.")
		assert.Contains(t, output, "Create your first task with `tb add`.")
	})

	t.Run("search without matches", func(t *testing.T) {
		app, out, _ := setupLoggedInApp(t, "")
		addTask(t, app, "Buy milk", AddOptions{})

		require.NoError(t, NewListCommand(app, "").Execute(ctx, []string{"zebra"}))
		output := out.String()
		assert.Contains(t, output, "No tasks match your search.")
		assert.Contains(t, output, "Try adjusting your search term.")
		assert.Contains(t, output, "All (1) · Pending (1) · Completed (0)")
	})

	t.Run("sorted by priority with counts", func(t *testing.T) {
		app, out, _ := setupLoggedInApp(t, "")
		addTask(t, app, "Low one", AddOptions{Priority: "low"})
		addTask(t, app, "High one", AddOptions{Priority: "high"})
		done := addTask(t, app, "Medium one", AddOptions{Priority: "medium"})
		require.NoError(t, NewToggleCommand(app).Execute(ctx, []string{done}))
		out.Reset()

		require.NoError(t, NewListCommand(app, "").Execute(ctx, nil))
		output := out.String()
		assert.Contains(t, output, "All (3) · Pending (2) · Completed (1)")

		high := strings.Index(output, "High one")
		medium := strings.Index(output, "Medium one")
		low := strings.Index(output, "Low one")
		require.True(t, high >= 0 && medium >= 0 && low >= 0, output)
		assert.Less(t, high, medium)
		assert.Less(t, medium, low)
		assert.Contains(t, output, "[x] "+done[:8])
	})

	t.Run("filter pending", func(t *testing.T) {
		app, out, _ := setupLoggedInApp(t, "")
		addTask(t, app, "Buy milk", AddOptions{})
		bug := addTask(t, app, "Fix bug", AddOptions{})
		require.NoError(t, NewToggleCommand(app).Execute(ctx, []string{bug}))
		out.Reset()

		require.NoError(t, NewListCommand(app, "pending").Execute(ctx, nil))
		output := out.String()
		assert.Contains(t, output, "Buy milk")
		assert.NotContains(t, output, "Fix bug")
		assert.Contains(t, output, "All (2) · Pending (1) · Completed (1)")
	})

	t.Run("rejects an unknown filter", func(t *testing.T) {
		app, _, _ := setupLoggedInApp(t, "")

		err := NewListCommand(app, "someday").Execute(ctx, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be one of: all, pending, completed")
	})

	t.Run("search matches titles, descriptions and tags", func(t *testing.T) {
		app, out, _ := setupLoggedInApp(t, "")
		addTask(t, app, "Buy milk", AddOptions{})
		addTask(t, app, "Fix bug", AddOptions{})
		addTask(t, app, "Triage", AddOptions{Description: "Look at the BUG queue"})
		addTask(t, app, "Refactor", AddOptions{Tags: []string{"bugfix"}})

		require.NoError(t, NewListCommand(app, "").Execute(ctx, []string{"Bug"}))
		output := out.String()
		assert.Contains(t, output, "Fix bug")
		assert.Contains(t, output, "Triage")
		assert.Contains(t, output, "Refactor")
		assert.NotContains(t, output, "Buy milk")
		assert.Contains(t, output, `3 tasks found for "Bug"`)
	})

	t.Run("shows details of a task", func(t *testing.T) {
		app, out, _ := setupLoggedInApp(t, "")
		addTask(t, app, "Plan trip", AddOptions{
			Description: "book the train",
			DueDate:     "2999-12-31",
			Tags:        []string{"travel"},
		})
		addTask(t, app, "Pay rent", AddOptions{DueDate: "2000-01-01"})

		require.NoError(t, NewListCommand(app, "").Execute(ctx, nil))
		output := out.String()
		assert.Contains(t, output, "due Dec 31, 2999")
		assert.Contains(t, output, "due Jan 01, 2000 (overdue)")
		assert.NotContains(t, output, "Dec 31, 2999 (overdue)")
		assert.Contains(t, output, "#travel")
		assert.Contains(t, output, "    book the train")
		assert.Contains(t, output, "created ")
		assert.Contains(t, output, strings.Repeat("─", app.config.Display.Width))
	})
}
