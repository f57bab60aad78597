package cli

import (
	"context"

	"github.com/ilyakharev/glossy/internal/client/models"
	"github.com/ilyakharev/glossy/internal/client/repositories/prefs"
	"github.com/ilyakharev/glossy/internal/dbx"
)

// saveProfile persists a snapshot of the profile so a restored session can
// show the user before the first profile fetch. All fields are written in one
// transaction; a crash between keys must not leave a torn profile.
func (a *App) saveProfile(ctx context.Context, user *models.User) error {
	if user == nil {
		return nil
	}
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := prefs.NewSQLiteRepository(tx)
		fields := []struct {
			key   string
			value string
		}{
			{prefs.KeyProfileID, user.ID},
			{prefs.KeyProfileEmail, user.Email},
			{prefs.KeyProfileName, user.Name},
			{prefs.KeyProfilePlan, user.Plan},
		}
		for _, f := range fields {
			if err := repo.Set(ctx, f.key, []byte(f.value)); err != nil {
				return err
			}
		}
		return nil
	})
}

// loadProfile rebuilds the snapshot written by saveProfile. Returns nil when
// no profile is stored.
func (a *App) loadProfile(ctx context.Context) (*models.User, error) {
	id, err := a.prefs.Get(ctx, prefs.KeyProfileID)
	if err != nil {
		return nil, err
	}
	if len(id) == 0 {
		return nil, nil
	}
	email, err := a.prefs.Get(ctx, prefs.KeyProfileEmail)
	if err != nil {
		return nil, err
	}
	name, err := a.prefs.Get(ctx, prefs.KeyProfileName)
	if err != nil {
		return nil, err
	}
	plan, err := a.prefs.Get(ctx, prefs.KeyProfilePlan)
	if err != nil {
		return nil, err
	}
	return &models.User{
		ID:    string(id),
		Email: string(email),
		Name:  string(name),
		Plan:  string(plan),
	}, nil
}

// wipeProfile removes the snapshot, again in one transaction.
func (a *App) wipeProfile(ctx context.Context) error {
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := prefs.NewSQLiteRepository(tx)
		for _, key := range []string{
			prefs.KeyProfileID,
			prefs.KeyProfileEmail,
			prefs.KeyProfileName,
			prefs.KeyProfilePlan,
		} {
			if err := repo.Delete(ctx, key); err != nil {
				return err
			}
		}
		return nil
	})
}
