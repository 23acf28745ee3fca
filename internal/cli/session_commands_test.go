package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginCommand_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("joins the name words", func(t *testing.T) {
		app, out, _ := setupTestApp(t, "")

		err := NewLoginCommand(app).Execute(ctx, []string{"Ada", "Lovelace"})
		require.NoError(t, err)
		assert.Equal(t, "Logged in as Ada Lovelace\n", out.String())

		user, ok := app.api.CurrentUser()
		assert.True(t, ok)
		assert.Equal(t, "Ada Lovelace", user)
	})

	t.Run("rejects a blank name", func(t *testing.T) {
		app, out, _ := setupTestApp(t, "")

		err := NewLoginCommand(app).Execute(ctx, []string{"   "})
		require.Error(t, err)
		assert.Equal(t, "failed to log in: username is required", err.Error())
		assert.Empty(t, out.String())

		_, ok := app.api.CurrentUser()
		assert.False(t, ok)
	})

	t.Run("requires a name", func(t *testing.T) {
		app, _, _ := setupTestApp(t, "")

		err := NewLoginCommand(app).Execute(ctx, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "usage: tb login <name>")
	})
}

func TestLogoutCommand_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("ends the session", func(t *testing.T) {
		app, out, _ := setupLoggedInApp(t, "")

		require.NoError(t, NewLogoutCommand(app).Execute(ctx, nil))
		assert.Equal(t, "Goodbye, Ada\n", out.String())

		_, ok := app.api.CurrentUser()
		assert.False(t, ok)
	})

	t.Run("anonymous logout is harmless", func(t *testing.T) {
		app, out, _ := setupTestApp(t, "")

		require.NoError(t, NewLogoutCommand(app).Execute(ctx, nil))
		assert.Equal(t, "Nobody is logged in\n", out.String())
	})
}

func TestWhoamiCommand_Execute(t *testing.T) {
	ctx := context.Background()

	app, out, _ := setupTestApp(t, "")
	require.NoError(t, NewWhoamiCommand(app).Execute(ctx, nil))
	assert.Equal(t, "Nobody is logged in\n", out.String())

	require.NoError(t, app.api.Login(ctx, "Grace"))
	out.Reset()
	require.NoError(t, NewWhoamiCommand(app).Execute(ctx, nil))
	assert.Equal(t, "Grace\n", out.String())
}
