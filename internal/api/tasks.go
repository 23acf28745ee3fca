package api

import (
	"context"

	"taskboard/internal/domain"
)

func (a *apiImpl) AddTask(ctx context.Context, input domain.TaskInput) (*domain.Task, error) {
	if err := a.requireSession("add a task"); err != nil {
		return nil, err
	}
	defer a.refresh()
	return a.services.TaskService.Add(ctx, input)
}

// UpdateTask returns nil, nil when id is unknown.
func (a *apiImpl) UpdateTask(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error) {
	if err := a.requireSession("edit a task"); err != nil {
		return nil, err
	}
	defer a.refresh()
	return a.services.TaskService.Update(ctx, id, patch)
}

// ToggleTask returns nil, nil when id is unknown.
func (a *apiImpl) ToggleTask(ctx context.Context, id string) (*domain.Task, error) {
	if err := a.requireSession("toggle a task"); err != nil {
		return nil, err
	}
	defer a.refresh()
	return a.services.TaskService.ToggleComplete(ctx, id)
}

// DeleteTask returns false, nil when id is unknown.
func (a *apiImpl) DeleteTask(ctx context.Context, id string) (bool, error) {
	if err := a.requireSession("delete a task"); err != nil {
		return false, err
	}
	defer a.refresh()
	return a.services.TaskService.Remove(ctx, id)
}

// ResolveTask turns a full or abbreviated ID into a task.
func (a *apiImpl) ResolveTask(ctx context.Context, prefix string) (*domain.Task, error) {
	if err := a.requireSession("look up a task"); err != nil {
		return nil, err
	}
	return a.services.TaskService.Resolve(prefix)
}

// ListTasks returns the whole collection in stored order, most recent first.
func (a *apiImpl) ListTasks(ctx context.Context) ([]domain.Task, error) {
	if err := a.requireSession("list tasks"); err != nil {
		return nil, err
	}
	return a.services.TaskService.List(), nil
}
