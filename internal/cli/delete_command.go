package cli

import (
	"bufio"
	"context"
	"strings"

	"taskboard/internal/api"
	"taskboard/internal/errors"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	app          *App
	api          api.API
	skipConfirm  bool
	errorHandler *ErrorHandler
}

// NewDeleteCommand creates a new delete command handler. With skipConfirm the
// confirmation prompt is not shown.
func NewDeleteCommand(app *App, skipConfirm bool) *DeleteCommand {
	return &DeleteCommand{app: app, api: app.api, skipConfirm: skipConfirm, errorHandler: NewErrorHandler()}
}

// Execute removes the task named by args[0] after confirmation.
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "delete", "usage: tb delete <id> [--yes]")
	}

	task, err := c.app.resolveTask(ctx, args[0])
	if err != nil {
		return c.errorHandler.Handle("delete task", err)
	}
	if task == nil {
		return nil
	}

	if !c.skipConfirm && !c.confirm(task.Title) {
		c.app.println("Delete cancelled.")
		return nil
	}

	removed, err := c.api.DeleteTask(ctx, task.ID)
	if !removed {
		if err == nil {
			c.app.printf("No task matches %s\n", args[0])
		}
		return c.errorHandler.Handle("delete task", err)
	}
	c.app.printf("Deleted task: %s\n", task.Title)
	return c.errorHandler.Handle("save tasks", err)
}

// confirm asks the user and accepts y or yes in any case.
func (c *DeleteCommand) confirm(title string) bool {
	c.app.printf("%s\nAre you sure you want to delete this task? [y/N]: ", title)
	answer, _ := bufio.NewReader(c.app.in).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	}
	return false
}
