package cli

import (
	"context"
	"strings"

	"taskboard/internal/api"
	"taskboard/internal/errors"
)

// ThemeCommand handles the theme command
type ThemeCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewThemeCommand creates a new theme command handler
func NewThemeCommand(app *App) *ThemeCommand {
	return &ThemeCommand{app: app, api: app.api, errorHandler: NewErrorHandler()}
}

// Execute shows the theme, or sets it to dark, light or the opposite of the
// current one.
func (c *ThemeCommand) Execute(ctx context.Context, args []string) error {
	if len(args) == 0 {
		c.app.printf("Theme: %s\n", c.app.Theme().Name())
		return nil
	}

	var err error
	switch strings.ToLower(args[0]) {
	case "dark":
		err = c.api.SetDarkMode(ctx, true)
	case "light":
		err = c.api.SetDarkMode(ctx, false)
	case "toggle":
		_, err = c.api.ToggleDarkMode(ctx)
	default:
		return errors.NewInvalidInputError("theme", args[0], "must be one of: dark, light, toggle")
	}

	c.app.printf("Theme set to %s\n", c.app.Theme().Name())
	return c.errorHandler.Handle("save theme", err)
}
