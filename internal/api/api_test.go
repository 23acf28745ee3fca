package api

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/config"
	"taskboard/internal/domain"
	"taskboard/internal/errors"
	"taskboard/internal/logging"
	"taskboard/internal/persistence"
	"taskboard/internal/repository/sqlite"
)

func setupTestAPI(t *testing.T) (API, *sqlite.SQLiteRepository) {
	t.Helper()
	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })

	a := New(repo, config.NewConfig())
	a.Load(context.Background())
	return a, repo
}

func setupLoggedInAPI(t *testing.T) (API, *sqlite.SQLiteRepository) {
	t.Helper()
	a, repo := setupTestAPI(t)
	require.NoError(t, a.Login(context.Background(), "alice"))
	return a, repo
}

func viewTitles(t *testing.T, a API) []string {
	t.Helper()
	view, err := a.View(context.Background())
	require.NoError(t, err)
	out := make([]string, len(view.Tasks))
	for i, task := range view.Tasks {
		out[i] = task.Title
	}
	return out
}

func TestAPI_TaskOperationsNeedLogin(t *testing.T) {
	a, _ := setupTestAPI(t)
	ctx := context.Background()

	assertPermission := func(t *testing.T, err error) {
		t.Helper()
		var appErr *errors.AppError
		require.ErrorAs(t, err, &appErr)
		assert.True(t, appErr.IsType(errors.ErrorTypePermission))
	}

	_, err := a.AddTask(ctx, domain.TaskInput{Title: "x"})
	assertPermission(t, err)
	_, err = a.UpdateTask(ctx, "x", domain.TaskPatch{})
	assertPermission(t, err)
	_, err = a.ToggleTask(ctx, "x")
	assertPermission(t, err)
	_, err = a.DeleteTask(ctx, "x")
	assertPermission(t, err)
	_, err = a.ResolveTask(ctx, "x")
	assertPermission(t, err)
	_, err = a.ListTasks(ctx)
	assertPermission(t, err)
	_, err = a.View(ctx)
	assertPermission(t, err)
}

func TestAPI_LoginLogout(t *testing.T) {
	a, repo := setupTestAPI(t)
	ctx := context.Background()

	err := a.Login(ctx, "   ")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
	_, ok := a.CurrentUser()
	assert.False(t, ok)

	require.NoError(t, a.Login(ctx, " alice "))
	name, ok := a.CurrentUser()
	assert.True(t, ok)
	assert.Equal(t, "alice", name)

	restarted := New(repo, nil)
	restarted.Load(ctx)
	name, _ = restarted.CurrentUser()
	assert.Equal(t, "alice", name)

	require.NoError(t, restarted.Logout(ctx))
	again := New(repo, nil)
	again.Load(ctx)
	_, ok = again.CurrentUser()
	assert.False(t, ok)
}

func TestAPI_ViewRefreshesAfterEveryMutation(t *testing.T) {
	a, _ := setupLoggedInAPI(t)
	ctx := context.Background()

	milk, err := a.AddTask(ctx, domain.TaskInput{Title: "Buy milk", Priority: domain.PriorityLow})
	require.NoError(t, err)
	assert.Equal(t, []string{"Buy milk"}, viewTitles(t, a))

	bug, err := a.AddTask(ctx, domain.TaskInput{Title: "Fix bug", Priority: domain.PriorityHigh})
	require.NoError(t, err)
	assert.Equal(t, []string{"Fix bug", "Buy milk"}, viewTitles(t, a))

	_, err = a.ToggleTask(ctx, bug.ID)
	require.NoError(t, err)
	require.NoError(t, a.SetFilter(domain.FilterPending))
	assert.Equal(t, []string{"Buy milk"}, viewTitles(t, a))

	require.NoError(t, a.SetFilter(domain.FilterCompleted))
	assert.Equal(t, []string{"Fix bug"}, viewTitles(t, a))

	view, err := a.View(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Counts{All: 2, Pending: 1, Completed: 1}, view.Counts)

	require.NoError(t, a.SetFilter(domain.FilterAll))
	a.SetSearch("bug")
	assert.Equal(t, []string{"Fix bug"}, viewTitles(t, a))

	a.SetSearch("")
	title := "Buy oat milk"
	_, err = a.UpdateTask(ctx, milk.ID, domain.TaskPatch{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, []string{"Fix bug", "Buy oat milk"}, viewTitles(t, a))

	removed, err := a.DeleteTask(ctx, bug.ID)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Equal(t, []string{"Buy oat milk"}, viewTitles(t, a))
}

func TestAPI_UnknownIDsAreNoops(t *testing.T) {
	a, _ := setupLoggedInAPI(t)
	ctx := context.Background()

	task, err := a.UpdateTask(ctx, "missing", domain.TaskPatch{})
	assert.NoError(t, err)
	assert.Nil(t, task)

	task, err = a.ToggleTask(ctx, "missing")
	assert.NoError(t, err)
	assert.Nil(t, task)

	removed, err := a.DeleteTask(ctx, "missing")
	assert.NoError(t, err)
	assert.False(t, removed)

	_, err = a.ResolveTask(ctx, "missing")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeNotFound))
}

func TestAPI_SetFilterRejectsUnknown(t *testing.T) {
	a, _ := setupLoggedInAPI(t)

	err := a.SetFilter("done")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))

	view, err := a.View(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.FilterAll, view.State.Filter)
}

func TestAPI_DefaultFilterFromConfig(t *testing.T) {
	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	defer repo.Close()

	cfg := config.NewConfig()
	cfg.Tasks.DefaultFilter = "pending"
	a := New(repo, cfg)
	a.Load(context.Background())
	require.NoError(t, a.Login(context.Background(), "alice"))

	view, err := a.View(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.FilterPending, view.State.Filter)
}

func TestAPI_DarkMode(t *testing.T) {
	a, repo := setupTestAPI(t)
	ctx := context.Background()

	assert.True(t, a.DarkMode())

	on, err := a.ToggleDarkMode(ctx)
	require.NoError(t, err)
	assert.False(t, on)

	restarted := New(repo, nil)
	restarted.Load(ctx)
	assert.False(t, restarted.DarkMode())

	require.NoError(t, restarted.SetDarkMode(ctx, true))
	assert.True(t, restarted.DarkMode())
}

func TestAPI_CorruptStateFallsBackToDefaults(t *testing.T) {
	var logs bytes.Buffer
	prev := logging.SetOutput(&logs)
	defer logging.SetOutput(prev)

	repo, err := sqlite.New(":memory:")
	require.NoError(t, err)
	defer repo.Close()

	ctx := context.Background()
	require.NoError(t, repo.Put(ctx, persistence.KeyUsername, []byte(`{`)))
	require.NoError(t, repo.Put(ctx, persistence.KeyTasks, []byte(`"tasks"`)))
	require.NoError(t, repo.Put(ctx, persistence.KeyDarkMode, []byte(`1`)))

	a := New(repo, nil)
	a.Load(ctx)

	_, ok := a.CurrentUser()
	assert.False(t, ok)
	assert.True(t, a.DarkMode())

	require.NoError(t, a.Login(ctx, "alice"))
	tasks, err := a.ListTasks(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
	assert.Equal(t, 3, bytes.Count(logs.Bytes(), []byte("malformed")))
}

func TestAPI_Categories(t *testing.T) {
	a, _ := setupTestAPI(t)

	categories := a.Categories()
	assert.Equal(t, []string{"Work", "Personal", "Shopping"}, categories)

	categories[0] = "changed"
	assert.Equal(t, "Work", a.Categories()[0])
}

func TestAPI_ListTasksKeepsStoredOrder(t *testing.T) {
	a, _ := setupLoggedInAPI(t)
	ctx := context.Background()

	for _, input := range []domain.TaskInput{
		{Title: "first", Priority: domain.PriorityHigh},
		{Title: "second", Priority: domain.PriorityLow},
	} {
		_, err := a.AddTask(ctx, input)
		require.NoError(t, err)
	}

	tasks, err := a.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "second", tasks[0].Title)
	assert.Equal(t, "first", tasks[1].Title)
}
