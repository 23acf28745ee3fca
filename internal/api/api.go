// Package api is the state container behind the command line. It owns the
// session, the task collection, the preferences and the current view, and
// recomputes the view after every change.
package api

import (
	"context"

	"taskboard/internal/config"
	"taskboard/internal/domain"
	"taskboard/internal/errors"
	"taskboard/internal/logging"
	"taskboard/internal/persistence"
	"taskboard/internal/repository"
	"taskboard/internal/services"
)

// API defines every operation the presentation layer may invoke.
type API interface {
	// Load restores all state from storage. Call it once before anything else.
	Load(ctx context.Context)

	// Session operations
	Login(ctx context.Context, username string) error
	Logout(ctx context.Context) error
	CurrentUser() (string, bool)

	// Task operations. All of them need a logged-in user.
	AddTask(ctx context.Context, input domain.TaskInput) (*domain.Task, error)
	UpdateTask(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error)
	ToggleTask(ctx context.Context, id string) (*domain.Task, error)
	DeleteTask(ctx context.Context, id string) (bool, error)
	ResolveTask(ctx context.Context, prefix string) (*domain.Task, error)
	ListTasks(ctx context.Context) ([]domain.Task, error)

	// View operations
	SetFilter(filter domain.Filter) error
	SetSearch(term string)
	View(ctx context.Context) (domain.View, error)

	// Preferences
	DarkMode() bool
	SetDarkMode(ctx context.Context, on bool) error
	ToggleDarkMode(ctx context.Context) (bool, error)

	Categories() []string
}

type apiImpl struct {
	services   *services.ServiceContainer
	categories []string

	state domain.ViewState
	view  domain.View
}

// New creates an API backed by repo, using the limits and defaults in cfg.
func New(repo repository.Repository, cfg *config.Config) API {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	store := persistence.NewAdapter(repo)
	return NewWithServices(services.NewServiceContainer(store, cfg), cfg)
}

// NewWithServices creates an API over an existing service container.
func NewWithServices(container *services.ServiceContainer, cfg *config.Config) API {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	filter, err := domain.ParseFilter(cfg.Tasks.DefaultFilter)
	if err != nil {
		filter = domain.FilterAll
	}

	a := &apiImpl{
		services:   container,
		categories: append([]string(nil), cfg.Tasks.Categories...),
		state:      domain.ViewState{Filter: filter},
	}
	a.refresh()
	return a
}

func (a *apiImpl) Load(ctx context.Context) {
	a.services.Load(ctx)
	a.refresh()
	logging.Debugf("state loaded: session=%s tasks=%d darkMode=%t",
		a.services.SessionService.State(), a.view.Counts.All, a.services.PreferenceService.DarkMode())
}

// refresh reruns the view pipeline over the current collection.
func (a *apiImpl) refresh() {
	a.view = a.services.ViewService.Derive(a.services.TaskService.List(), a.state)
}

// requireSession gates the task operations behind a login.
func (a *apiImpl) requireSession(operation string) error {
	if a.services.SessionService.State() != domain.SessionAuthenticated {
		return errors.NewPermissionError(operation, "nobody is logged in, run `tb login <name>` first")
	}
	return nil
}

func (a *apiImpl) Login(ctx context.Context, username string) error {
	return a.services.SessionService.Login(ctx, username)
}

// Logout also resets the view so the next user starts unfiltered.
func (a *apiImpl) Logout(ctx context.Context) error {
	err := a.services.SessionService.Logout(ctx)
	a.state.Search = ""
	a.refresh()
	return err
}

func (a *apiImpl) CurrentUser() (string, bool) {
	return a.services.SessionService.Current()
}

func (a *apiImpl) Categories() []string {
	return append([]string(nil), a.categories...)
}
