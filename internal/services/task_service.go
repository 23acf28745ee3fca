package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskboard/internal/domain"
	"taskboard/internal/errors"
	"taskboard/internal/logging"
	"taskboard/internal/persistence"
	"taskboard/internal/validation"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	store         Store
	mapper        *domain.TaskMapper
	taskValidator *validation.TaskValidator

	tasks      []domain.Task
	persistErr error

	now   func() time.Time
	newID func() string
}

// NewTaskService creates a new TaskService instance
func NewTaskService(store Store, taskValidator *validation.TaskValidator) TaskService {
	return &taskServiceImpl{
		store:         store,
		mapper:        domain.NewTaskMapper(),
		taskValidator: taskValidator,
		tasks:         []domain.Task{},
		now:           time.Now,
		newID:         uuid.NewString,
	}
}

// Load replaces the collection with the stored one. Records that cannot be
// used are skipped with a warning; an unknown priority becomes medium.
func (t *taskServiceImpl) Load(ctx context.Context) {
	var records []persistence.TaskRecord
	t.tasks = []domain.Task{}
	if !t.store.Read(ctx, persistence.KeyTasks, &records) {
		return
	}

	seen := make(map[string]bool, len(records))
	for _, record := range records {
		task, err := t.mapper.FromRecord(record)
		if err != nil {
			logging.Warnf("skipping stored task: %v", err)
			continue
		}
		if err := t.taskValidator.ValidateTask(task); err != nil {
			logging.Warnf("skipping stored task %q: %v", record.ID, err)
			continue
		}
		if seen[task.ID] {
			logging.Warnf("skipping stored task %q: duplicate id", task.ID)
			continue
		}
		seen[task.ID] = true

		if !task.Priority.IsValid() {
			logging.Warnf("task %q has unknown priority %q, using medium", task.ID, task.Priority)
			task.Priority = domain.PriorityMedium
		}
		task.Tags = domain.NormalizeTags(task.Tags)
		t.tasks = append(t.tasks, task)
	}
	logging.Debugf("loaded %d of %d stored tasks", len(t.tasks), len(records))
}

// persist writes the whole collection. Failures are logged and kept for Err.
func (t *taskServiceImpl) persist(ctx context.Context) error {
	err := t.store.Write(ctx, persistence.KeyTasks, t.mapper.ToRecordSlice(t.tasks))
	t.persistErr = err
	if err != nil {
		logging.Warnf("could not save tasks: %v", err)
	}
	return err
}

func (t *taskServiceImpl) indexOf(id string) int {
	for i := range t.tasks {
		if t.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// uniqueID draws IDs until one is not already in use.
func (t *taskServiceImpl) uniqueID() string {
	for {
		id := t.newID()
		if id != "" && t.indexOf(id) < 0 {
			return id
		}
	}
}

// Add validates input and inserts the new task at the head of the collection.
func (t *taskServiceImpl) Add(ctx context.Context, input domain.TaskInput) (*domain.Task, error) {
	if err := t.taskValidator.ValidateInput(input); err != nil {
		return nil, errors.NewValidationError("invalid task", err)
	}
	category, err := t.taskValidator.ResolveCategory(input.Category)
	if err != nil {
		return nil, errors.NewValidationError("invalid task", err)
	}
	input.Category = category

	task := domain.NewTask(t.uniqueID(), input, t.now())
	t.tasks = append([]domain.Task{task}, t.tasks...)
	logging.Debugf("added task %s", task.ID)

	result := task.Clone()
	return &result, t.persist(ctx)
}

// Update applies patch to the task with id. An unknown id is a no-op even
// when the patch is invalid; otherwise the patch is validated before anything
// changes.
func (t *taskServiceImpl) Update(ctx context.Context, id string, patch domain.TaskPatch) (*domain.Task, error) {
	i := t.indexOf(id)
	if i < 0 {
		logging.Debugf("update: no task %s", id)
		return nil, nil
	}

	if err := t.taskValidator.ValidatePatch(patch); err != nil {
		return nil, errors.NewValidationError("invalid update", err)
	}
	if patch.Category != nil {
		category, err := t.taskValidator.ResolveCategory(*patch.Category)
		if err != nil {
			return nil, errors.NewValidationError("invalid update", err)
		}
		patch.Category = &category
	}

	if patch.IsEmpty() {
		result := t.tasks[i].Clone()
		return &result, nil
	}
	patch.Apply(&t.tasks[i])

	result := t.tasks[i].Clone()
	return &result, t.persist(ctx)
}

// ToggleComplete flips the completion flag of the task with id.
func (t *taskServiceImpl) ToggleComplete(ctx context.Context, id string) (*domain.Task, error) {
	i := t.indexOf(id)
	if i < 0 {
		logging.Debugf("toggle: no task %s", id)
		return nil, nil
	}

	t.tasks[i].Completed = !t.tasks[i].Completed
	result := t.tasks[i].Clone()
	return &result, t.persist(ctx)
}

// Remove deletes the task with id.
func (t *taskServiceImpl) Remove(ctx context.Context, id string) (bool, error) {
	i := t.indexOf(id)
	if i < 0 {
		logging.Debugf("remove: no task %s", id)
		return false, nil
	}

	t.tasks = append(t.tasks[:i:i], t.tasks[i+1:]...)
	return true, t.persist(ctx)
}

func (t *taskServiceImpl) List() []domain.Task {
	tasks := make([]domain.Task, len(t.tasks))
	for i := range t.tasks {
		tasks[i] = t.tasks[i].Clone()
	}
	return tasks
}

func (t *taskServiceImpl) Get(id string) (*domain.Task, bool) {
	i := t.indexOf(id)
	if i < 0 {
		return nil, false
	}
	task := t.tasks[i].Clone()
	return &task, true
}

// Resolve matches prefix case-insensitively. An exact ID always wins.
func (t *taskServiceImpl) Resolve(prefix string) (*domain.Task, error) {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if prefix == "" {
		return nil, errors.NewInvalidInputError("id", prefix, "task id is required")
	}
	if task, ok := t.Get(prefix); ok {
		return task, nil
	}

	var match *domain.Task
	for i := range t.tasks {
		if !strings.HasPrefix(strings.ToLower(t.tasks[i].ID), prefix) {
			continue
		}
		if match != nil {
			return nil, errors.NewInvalidInputError("id", prefix, "matches more than one task, use more characters")
		}
		task := t.tasks[i].Clone()
		match = &task
	}
	if match == nil {
		return nil, errors.NewNotFoundError("task", prefix)
	}
	return match, nil
}

func (t *taskServiceImpl) Err() error {
	return t.persistErr
}
