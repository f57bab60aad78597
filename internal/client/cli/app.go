// Package cli implements the interactive Glossy client shell. It wires the
// session store, request gateway, content caches, and onboarding tracker
// together and exposes them through REPL commands.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/ilyakharev/glossy/internal/client/api"
	"github.com/ilyakharev/glossy/internal/client/config"
	"github.com/ilyakharev/glossy/internal/client/content"
	"github.com/ilyakharev/glossy/internal/client/localdb"
	"github.com/ilyakharev/glossy/internal/client/models"
	"github.com/ilyakharev/glossy/internal/client/onboarding"
	"github.com/ilyakharev/glossy/internal/client/repositories/prefs"
	"github.com/ilyakharev/glossy/internal/client/session"
	"github.com/ilyakharev/glossy/internal/logging"

	_ "modernc.org/sqlite"
)

// App owns the client's long-lived components and the REPL state.
type App struct {
	config     *config.Config
	log        logging.Logger
	db         *sql.DB
	prefs      prefs.Repository
	session    *session.Store
	gateway    *api.HTTPClient
	content    *content.Store
	onboarding *onboarding.Tracker
	reader     *bufio.Reader
	theme      string
}

// NewApp builds the application root: opens the local database, restores a
// persisted session if one exists, and wires the gateway to the session
// store so the bearer header always tracks the current token.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := localdb.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("open local database: %w", err)
	}

	prefsRepo := prefs.NewSQLiteRepository(db)
	sessionStore := session.New(prefsRepo, log)
	gateway := api.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout, log)

	a := &App{
		config:     cfg,
		log:        log,
		db:         db,
		prefs:      prefsRepo,
		session:    sessionStore,
		gateway:    gateway,
		content:    content.NewStore(gateway, defaultSeeds(), log),
		onboarding: onboarding.New(gateway, log),
		reader:     bufio.NewReader(os.Stdin),
		theme:      "light",
	}

	// Token changes flow to the gateway through the subscription; no call
	// site ever sets the header itself.
	sessionStore.OnChange(gateway.AttachToken)

	// A 401 anywhere tears the session down and sends the user back to the
	// login prompt.
	gateway.OnUnauthorized(func(ctx context.Context) {
		_ = sessionStore.Clear(ctx)
		a.onboarding.Reset()
		fmt.Println("Session expired, please log in again.")
	})

	if err := sessionStore.Restore(ctx); err != nil {
		log.Warn(ctx, "session restore failed", "error", err)
	}
	// A restored session has a token but no user until a profile fetch; fill
	// it from the snapshot saved at the last login when one exists.
	if tok := sessionStore.Token(); tok != "" {
		if user, err := a.loadProfile(ctx); err != nil {
			log.Warn(ctx, "profile load failed", "error", err)
		} else if user != nil {
			if err := sessionStore.Set(ctx, tok, user); err != nil {
				log.Warn(ctx, "session persist failed", "error", err)
			}
		}
	}
	a.loadTheme(ctx)

	return a, nil
}

// Run starts the REPL and blocks until the user exits or ctx is canceled.
func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

// Close releases the database and transport resources.
func (a *App) Close() {
	_ = a.gateway.Close()
	_ = a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.session.Token() != ""
}

func (a *App) loadTheme(ctx context.Context) {
	v, err := a.prefs.Get(ctx, prefs.KeyThemeMode)
	if err != nil || len(v) == 0 {
		return
	}
	a.theme = string(v)
}

// SetTheme switches the UI theme and persists the choice.
func (a *App) SetTheme(ctx context.Context, mode string) error {
	a.theme = mode
	return a.prefs.Set(ctx, prefs.KeyThemeMode, []byte(mode))
}

// defaultSeeds returns the static category tags shown before the first
// categories fetch completes.
func defaultSeeds() content.Seeds {
	return content.Seeds{
		models.PostTypeMagazines: {
			{ID: "lifestyle", Name: "Lifestyle", Icon: "sparkles", Color: "#E8B4B8"},
			{ID: "tech", Name: "Technology", Icon: "cpu", Color: "#7FB3D5"},
			{ID: "culture", Name: "Culture", Icon: "masks", Color: "#F5CBA7"},
		},
		models.PostTypeArticles: {
			{ID: "longread", Name: "Long Reads", Icon: "book", Color: "#A9DFBF"},
			{ID: "opinion", Name: "Opinion", Icon: "chat", Color: "#D7BDE2"},
		},
		models.PostTypeDigests: {
			{ID: "daily", Name: "Daily", Icon: "sun", Color: "#FAD7A0"},
			{ID: "weekly", Name: "Weekly", Icon: "calendar", Color: "#AED6F1"},
		},
	}
}
