package cli

import (
	"context"

	"taskboard/internal/api"
	"taskboard/internal/errors"
)

// ToggleCommand handles the toggle command
type ToggleCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewToggleCommand creates a new toggle command handler
func NewToggleCommand(app *App) *ToggleCommand {
	return &ToggleCommand{app: app, api: app.api, errorHandler: NewErrorHandler()}
}

// Execute flips the completion flag of the task named by args[0].
func (c *ToggleCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "toggle", "usage: tb toggle <id>")
	}

	task, err := c.app.resolveTask(ctx, args[0])
	if err != nil {
		return c.errorHandler.Handle("toggle task", err)
	}
	if task == nil {
		return nil
	}

	toggled, err := c.api.ToggleTask(ctx, task.ID)
	if toggled == nil {
		if err == nil {
			c.app.printf("No task matches %s\n", args[0])
		}
		return c.errorHandler.Handle("toggle task", err)
	}

	state := "pending"
	if toggled.Completed {
		state = "completed"
	}
	c.app.printf("Marked %s as %s: %s\n", c.app.shortID(toggled.ID), state, toggled.Title)
	return c.errorHandler.Handle("save task", err)
}
