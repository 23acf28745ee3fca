package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskboard/internal/logging"
	"taskboard/internal/persistence"
)

func TestPreferenceService_DefaultsToDark(t *testing.T) {
	store, _ := setupStore(t)
	service := NewPreferenceService(store)
	service.Load(context.Background())

	assert.True(t, service.DarkMode())
}

func TestPreferenceService_Persists(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()

	require.NoError(t, NewPreferenceService(store).SetDarkMode(ctx, false))

	restarted := NewPreferenceService(store)
	restarted.Load(ctx)
	assert.False(t, restarted.DarkMode())
}

func TestPreferenceService_CorruptValueUsesDefault(t *testing.T) {
	var logs bytes.Buffer
	prev := logging.SetOutput(&logs)
	defer logging.SetOutput(prev)

	_, repo := setupStore(t)
	ctx := context.Background()
	require.NoError(t, repo.Put(ctx, persistence.KeyDarkMode, []byte(`"light"`)))

	service := NewPreferenceService(persistence.NewAdapter(repo))
	service.Load(ctx)
	assert.True(t, service.DarkMode())
	assert.Contains(t, logs.String(), "darkMode")

	require.NoError(t, repo.Put(ctx, persistence.KeyDarkMode, []byte(`null`)))
	require.NoError(t, repo.Put(ctx, persistence.KeyUsername, []byte(`null`)))
	container := NewServiceContainer(persistence.NewAdapter(repo), nil)
	container.Load(ctx)
	assert.True(t, container.PreferenceService.DarkMode(), "null falls back to the default theme")
	_, ok := container.SessionService.Current()
	assert.False(t, ok, "null username means nobody is logged in")
}

func TestServiceContainer_Load(t *testing.T) {
	store, _ := setupStore(t)
	ctx := context.Background()
	require.NoError(t, store.Write(ctx, persistence.KeyUsername, "alice"))
	require.NoError(t, store.Write(ctx, persistence.KeyDarkMode, false))

	container := NewServiceContainer(store, nil)
	container.Load(ctx)

	name, ok := container.SessionService.Current()
	assert.True(t, ok)
	assert.Equal(t, "alice", name)
	assert.False(t, container.PreferenceService.DarkMode())
	assert.Empty(t, container.TaskService.List())
}
