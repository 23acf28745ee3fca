package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize/english"

	"taskboard/internal/api"
	"taskboard/internal/domain"
)

// ListCommand handles the list command
type ListCommand struct {
	app          *App
	api          api.API
	filter       string
	errorHandler *ErrorHandler
}

// NewListCommand creates a new list command handler. An empty filter keeps
// the configured default.
func NewListCommand(app *App, filter string) *ListCommand {
	return &ListCommand{app: app, api: app.api, filter: filter, errorHandler: NewErrorHandler()}
}

// Execute prints the view. Any args form the search term.
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	return c.listTasks(ctx, args)
}

// listTasks sets the filter and search on the API and renders what it derives.
func (c *ListCommand) listTasks(ctx context.Context, args []string) error {
	if c.filter != "" {
		if err := c.api.SetFilter(domain.Filter(c.filter)); err != nil {
			return c.errorHandler.Handle("list tasks", err)
		}
	}
	c.api.SetSearch(strings.Join(args, " "))

	view, err := c.api.View(ctx)
	if err != nil {
		return c.errorHandler.Handle("list tasks", err)
	}
	return c.printView(view)
}

func (c *ListCommand) printView(view domain.View) error {
	theme := c.app.Theme()
	user, _ := c.api.CurrentUser()

	c.app.renderHeader(theme, user, view)
	if view.IsEmpty() {
		c.app.renderEmpty(theme, view)
		return nil
	}

	for _, task := range view.Tasks {
		c.app.renderTask(theme, task)
	}
	if view.State.IsSearching() {
		c.app.println(theme.Muted.Render(fmt.Sprintf("%s found for %q", english.Plural(len(view.Tasks), "task", ""), view.State.Term())))
	}
	return nil
}
