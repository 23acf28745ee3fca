package services

import (
	"context"

	"taskboard/internal/config"
	"taskboard/internal/domain"
	"taskboard/internal/validation"
)

// Store is the typed key-value store the services persist through.
// *persistence.Adapter implements it.
type Store interface {
	Read(ctx context.Context, key string, out interface{}) bool
	Write(ctx context.Context, key string, value interface{}) error
	Remove(ctx context.Context, key string) error
}

// SessionService tracks the single local user.
type SessionService interface {
	// Load restores the session saved by a previous run.
	Load(ctx context.Context)

	Login(ctx context.Context, username string) error
	Logout(ctx context.Context) error

	Current() (string, bool)
	State() domain.SessionState
}

// TaskService owns the ordered task collection. Every successful mutation
// writes the whole collection back to the store. When that write fails the
// in-memory change is kept and the storage error is returned alongside the
// result.
type TaskService interface {
	Load(ctx context.Context)

	Add(ctx context.Context, input domain.TaskInput) (*domain.Task, error)
	// Update returns nil, nil when id is unknown.
	Update(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error)
	// ToggleComplete returns nil, nil when id is unknown.
	ToggleComplete(ctx context.Context, id string) (*domain.Task, error)
	// Remove returns false, nil when id is unknown.
	Remove(ctx context.Context, id string) (bool, error)

	// List returns a copy of the collection, most recent first.
	List() []domain.Task
	Get(id string) (*domain.Task, bool)
	// Resolve finds the task whose ID is, or uniquely starts with, prefix.
	Resolve(prefix string) (*domain.Task, error)

	// Err returns the error of the last failed persist, or nil once a later one succeeds.
	Err() error
}

// ViewService derives what the list screen shows.
type ViewService interface {
	Derive(tasks []domain.Task, state domain.ViewState) domain.View
}

// PreferenceService holds presentation settings.
type PreferenceService interface {
	Load(ctx context.Context)
	DarkMode() bool
	SetDarkMode(ctx context.Context, on bool) error
}

// ServiceContainer manages all services and their dependencies
type ServiceContainer struct {
	SessionService    SessionService
	TaskService       TaskService
	ViewService       ViewService
	PreferenceService PreferenceService
}

// NewServiceContainer wires every service to store, using the limits and
// categories in cfg.
func NewServiceContainer(store Store, cfg *config.Config) *ServiceContainer {
	return &ServiceContainer{
		SessionService:    NewSessionService(store, validation.NewValidatorWithConfig(cfg)),
		TaskService:       NewTaskService(store, validation.NewTaskValidatorWithConfig(cfg)),
		ViewService:       NewViewService(),
		PreferenceService: NewPreferenceService(store),
	}
}

// Load restores every service from the store.
func (c *ServiceContainer) Load(ctx context.Context) {
	c.SessionService.Load(ctx)
	c.TaskService.Load(ctx)
	c.PreferenceService.Load(ctx)
}
