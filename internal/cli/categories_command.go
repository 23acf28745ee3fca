package cli

import (
	"context"
)

// CategoriesCommand handles the categories command
type CategoriesCommand struct {
	app *App
}

// NewCategoriesCommand creates a new categories command handler
func NewCategoriesCommand(app *App) *CategoriesCommand {
	return &CategoriesCommand{app: app}
}

// Execute prints the categories accepted by add -c and edit -c.
func (c *CategoriesCommand) Execute(ctx context.Context, args []string) error {
	categories := c.app.api.Categories()
	if len(categories) == 0 {
		c.app.println("No categories configured")
		return nil
	}
	theme := c.app.Theme()
	for _, category := range categories {
		c.app.println(theme.Tag.Render(category))
	}
	return nil
}
