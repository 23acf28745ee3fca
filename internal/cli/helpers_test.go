package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"taskboard/internal/api"
	"taskboard/internal/config"
	"taskboard/internal/repository"
	"taskboard/internal/repository/sqlite"
)

// failingRepository wraps a real repository and fails writes on demand.
type failingRepository struct {
	repository.Repository
	failPuts bool
}

func (r *failingRepository) Put(ctx context.Context, key string, value []byte) error {
	if r.failPuts {
		return errors.New("disk full")
	}
	return r.Repository.Put(ctx, key, value)
}

// setupTestApp builds an App over an in-memory store. Answers to prompts are
// read from input.
func setupTestApp(t *testing.T, input string) (*App, *bytes.Buffer, *failingRepository) {
	t.Helper()

	inner, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { inner.Close() })

	repo := &failingRepository{Repository: inner}
	cfg := config.NewConfig()
	apiInstance := api.New(repo, cfg)
	apiInstance.Load(context.Background())

	out := &bytes.Buffer{}
	return NewAppWithIO(apiInstance, cfg, strings.NewReader(input), out), out, repo
}

// setupLoggedInApp is setupTestApp with Ada logged in and the output cleared.
func setupLoggedInApp(t *testing.T, input string) (*App, *bytes.Buffer, *failingRepository) {
	t.Helper()

	app, out, repo := setupTestApp(t, input)
	require.NoError(t, app.api.Login(context.Background(), "Ada"))
	out.Reset()
	return app, out, repo
}

// addTask adds a task through the API and returns its id.
func addTask(t *testing.T, app *App, title string, opts AddOptions) string {
	t.Helper()

	before, err := app.api.ListTasks(context.Background())
	require.NoError(t, err)

	out := app.out
	app.out = &bytes.Buffer{}
	defer func() { app.out = out }()

	require.NoError(t, NewAddCommand(app, opts).Execute(context.Background(), strings.Fields(title)))

	after, err := app.api.ListTasks(context.Background())
	require.NoError(t, err)
	require.Len(t, after, len(before)+1)
	return after[0].ID
}

func strPtr(s string) *string {
	return &s
}
