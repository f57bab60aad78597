package cli

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/ilyakharev/glossy/internal/client/models"
	"github.com/ilyakharev/glossy/internal/client/repositories/prefs"
	"github.com/ilyakharev/glossy/internal/logging"
)

func setupApp(t *testing.T) *App {
	t.Helper()
	db, err := sql.Open("sqlite", "file:cli_tests?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS prefs (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	_, err = db.Exec(`DELETE FROM prefs`)
	require.NoError(t, err)

	return &App{
		log:   logging.Discard(),
		db:    db,
		prefs: prefs.NewSQLiteRepository(db),
	}
}

func TestProfileSnapshot_RoundTrip(t *testing.T) {
	a := setupApp(t)
	ctx := context.Background()

	user := &models.User{ID: "u1", Email: "a@b.c", Name: "Ann", Plan: "monthly"}
	require.NoError(t, a.saveProfile(ctx, user))

	got, err := a.loadProfile(ctx)
	require.NoError(t, err)
	require.Equal(t, &models.User{ID: "u1", Email: "a@b.c", Name: "Ann", Plan: "monthly"}, got)
}

func TestProfileSnapshot_NilWhenMissing(t *testing.T) {
	a := setupApp(t)

	got, err := a.loadProfile(context.Background())
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestProfileSnapshot_Wipe(t *testing.T) {
	a := setupApp(t)
	ctx := context.Background()

	require.NoError(t, a.saveProfile(ctx, &models.User{ID: "u1"}))
	require.NoError(t, a.wipeProfile(ctx))

	got, err := a.loadProfile(ctx)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestSaveProfile_NilUserIsNoop(t *testing.T) {
	a := setupApp(t)
	require.NoError(t, a.saveProfile(context.Background(), nil))
}
