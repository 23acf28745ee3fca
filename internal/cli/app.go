package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"taskboard/internal/api"
	"taskboard/internal/config"
	"taskboard/internal/domain"
	"taskboard/internal/errors"
)

// Command is a single CLI action. Flags are bound into the handler when it is
// built, so Execute only sees positional arguments.
type Command interface {
	Execute(ctx context.Context, args []string) error
}

// App holds what every command handler needs: the API, the configuration and
// the terminal streams.
type App struct {
	api    api.API
	config *config.Config
	in     io.Reader
	out    io.Writer
	now    func() time.Time
}

// NewApp creates an App bound to stdin and stdout.
func NewApp(apiInstance api.API, cfg *config.Config) *App {
	return NewAppWithIO(apiInstance, cfg, os.Stdin, os.Stdout)
}

// NewAppWithIO creates an App reading answers from in and printing to out.
func NewAppWithIO(apiInstance api.API, cfg *config.Config, in io.Reader, out io.Writer) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	return &App{
		api:    apiInstance,
		config: cfg,
		in:     in,
		out:    out,
		now:    time.Now,
	}
}

// Theme returns the styles for the persisted dark mode preference.
func (a *App) Theme() Theme {
	return NewTheme(a.out, a.api.DarkMode())
}

func (a *App) printf(format string, args ...interface{}) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...interface{}) {
	fmt.Fprintln(a.out, args...)
}

// shortID trims an id to the configured display length.
func (a *App) shortID(id string) string {
	if n := a.config.Display.IDLength; n > 0 && len(id) > n {
		return id[:n]
	}
	return id
}

// resolveTask looks up the task named by an id prefix. An unknown id is
// reported to the user and yields nil without an error.
func (a *App) resolveTask(ctx context.Context, id string) (*domain.Task, error) {
	task, err := a.api.ResolveTask(ctx, id)
	if errors.IsErrorType(err, errors.ErrorTypeNotFound) {
		a.printf("No task matches %s\n", id)
		return nil, nil
	}
	return task, err
}
