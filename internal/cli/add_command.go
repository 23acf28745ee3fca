package cli

import (
	"context"
	"strings"

	"taskboard/internal/api"
	"taskboard/internal/domain"
	"taskboard/internal/errors"
)

// AddOptions carries the flags of the add command.
type AddOptions struct {
	Description string
	Priority    string
	DueDate     string
	Tags        []string
	Category    string
}

// AddCommand handles the add command
type AddCommand struct {
	app          *App
	api          api.API
	opts         AddOptions
	errorHandler *ErrorHandler
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App, opts AddOptions) *AddCommand {
	return &AddCommand{app: app, api: app.api, opts: opts, errorHandler: NewErrorHandler()}
}

// Execute adds a task titled with the words of args.
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "add", "usage: tb add <title>")
	}

	input := domain.TaskInput{
		Title:       strings.Join(args, " "),
		Description: c.opts.Description,
		DueDate:     c.opts.DueDate,
		Tags:        c.opts.Tags,
		Category:    c.opts.Category,
	}
	if c.opts.Priority != "" {
		priority, err := domain.ParsePriority(c.opts.Priority)
		if err != nil {
			return c.errorHandler.Handle("add task", err)
		}
		input.Priority = priority
	}

	task, err := c.api.AddTask(ctx, input)
	if task == nil {
		return c.errorHandler.Handle("add task", err)
	}
	c.app.printf("Added task %s: %s\n", c.app.shortID(task.ID), task.Title)
	// The task exists in memory even when saving it failed.
	return c.errorHandler.Handle("save task", err)
}
