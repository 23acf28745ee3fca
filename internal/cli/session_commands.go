package cli

import (
	"context"
	"strings"

	"taskboard/internal/api"
	"taskboard/internal/errors"
)

// LoginCommand handles the login command
type LoginCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewLoginCommand creates a new login command handler
func NewLoginCommand(app *App) *LoginCommand {
	return &LoginCommand{app: app, api: app.api, errorHandler: NewErrorHandler()}
}

// Execute logs in as the words of args joined by spaces.
func (c *LoginCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("command", "login", "usage: tb login <name>")
	}
	if err := c.api.Login(ctx, strings.Join(args, " ")); err != nil {
		return c.errorHandler.Handle("log in", err)
	}
	user, _ := c.api.CurrentUser()
	c.app.printf("Logged in as %s\n", user)
	return nil
}

// LogoutCommand handles the logout command
type LogoutCommand struct {
	app          *App
	api          api.API
	errorHandler *ErrorHandler
}

// NewLogoutCommand creates a new logout command handler
func NewLogoutCommand(app *App) *LogoutCommand {
	return &LogoutCommand{app: app, api: app.api, errorHandler: NewErrorHandler()}
}

// Execute ends the session. Logging out while anonymous only says so.
func (c *LogoutCommand) Execute(ctx context.Context, args []string) error {
	user, ok := c.api.CurrentUser()
	if !ok {
		c.app.println("Nobody is logged in")
		return nil
	}
	if err := c.api.Logout(ctx); err != nil {
		return c.errorHandler.Handle("log out", err)
	}
	c.app.printf("Goodbye, %s\n", user)
	return nil
}

// WhoamiCommand handles the whoami command
type WhoamiCommand struct {
	app *App
	api api.API
}

// NewWhoamiCommand creates a new whoami command handler
func NewWhoamiCommand(app *App) *WhoamiCommand {
	return &WhoamiCommand{app: app, api: app.api}
}

// Execute prints the current user.
func (c *WhoamiCommand) Execute(ctx context.Context, args []string) error {
	user, ok := c.api.CurrentUser()
	if !ok {
		c.app.println("Nobody is logged in")
		return nil
	}
	c.app.println(user)
	return nil
}
