package cli

import (
	"context"
	"strings"

	"taskboard/internal/api"
	"taskboard/internal/domain"
	"taskboard/internal/errors"
)

// EditOptions carries the flags of the edit command. Nil means the flag was
// not given.
type EditOptions struct {
	Title       *string
	Description *string
	Priority    *string
	DueDate     *string
	Tags        *[]string
	ClearTags   bool
	Untag       []string
	Category    *string
}

// EditCommand handles the edit command
type EditCommand struct {
	app          *App
	api          api.API
	opts         EditOptions
	errorHandler *ErrorHandler
}

// NewEditCommand creates a new edit command handler
func NewEditCommand(app *App, opts EditOptions) *EditCommand {
	return &EditCommand{app: app, api: app.api, opts: opts, errorHandler: NewErrorHandler()}
}

// Execute applies the given flags to the task named by args[0].
func (c *EditCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("command", "edit", "usage: tb edit <id> [flags]")
	}

	patch, err := c.patch()
	if err != nil {
		return c.errorHandler.Handle("edit task", err)
	}
	if patch.IsEmpty() && len(c.opts.Untag) == 0 {
		return errors.NewInvalidInputError("command", "edit", "nothing to change, pass at least one flag")
	}

	task, err := c.app.resolveTask(ctx, args[0])
	if err != nil {
		return c.errorHandler.Handle("edit task", err)
	}
	if task == nil {
		return nil
	}
	c.untag(&patch, task.Tags)

	updated, err := c.api.UpdateTask(ctx, task.ID, patch)
	if updated == nil {
		if err == nil {
			c.app.printf("No task matches %s\n", args[0])
		}
		return c.errorHandler.Handle("edit task", err)
	}
	c.app.printf("Updated task %s: %s\n", c.app.shortID(updated.ID), updated.Title)
	return c.errorHandler.Handle("save task", err)
}

// patch converts the flags into a TaskPatch. -t replaces the tag list and
// wins over --clear-tags.
func (c *EditCommand) patch() (domain.TaskPatch, error) {
	patch := domain.TaskPatch{
		Title:       c.opts.Title,
		Description: c.opts.Description,
		DueDate:     c.opts.DueDate,
		Category:    c.opts.Category,
	}

	if c.opts.Priority != nil {
		priority, err := domain.ParsePriority(*c.opts.Priority)
		if err != nil {
			return domain.TaskPatch{}, err
		}
		patch.Priority = &priority
	}

	switch {
	case c.opts.Tags != nil:
		tags := append([]string(nil), (*c.opts.Tags)...)
		patch.Tags = &tags
	case c.opts.ClearTags:
		tags := []string{}
		patch.Tags = &tags
	}

	return patch, nil
}

// untag drops every --untag tag from the tags being set, or from current when
// the tag list is not being replaced.
func (c *EditCommand) untag(patch *domain.TaskPatch, current []string) {
	if len(c.opts.Untag) == 0 {
		return
	}
	tags := current
	if patch.Tags != nil {
		tags = *patch.Tags
	}
	for _, tag := range c.opts.Untag {
		tags = domain.RemoveTag(tags, strings.TrimSpace(tag))
	}
	patch.Tags = &tags
}
