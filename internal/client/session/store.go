// Package session holds the authenticated identity for the running client:
// the bearer token and, when known, the user profile.
//
// The store is the single owner of session state. The token is mirrored to
// durable storage on every change and read back once at cold start, so
// protected requests issued before the first login of a new process still
// carry the previous session's credential. Interested components (the request
// gateway above all) subscribe to changes instead of polling.
package session

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ilyakharev/glossy/internal/client/models"
	"github.com/ilyakharev/glossy/internal/client/repositories/prefs"
	"github.com/ilyakharev/glossy/internal/logging"
)

// Store is a mutex-guarded (token, user) pair with durable token mirroring
// and change subscriptions. The zero session (nil) means unauthenticated.
//
// Both fields always change together under one lock acquisition; no reader
// can observe a token without its accompanying user state, except for the
// deliberate partial session produced by Restore (token only, user unknown).
type Store struct {
	mu      sync.RWMutex
	session *models.Session
	subs    []func(token string)

	repo prefs.Repository
	log  logging.Logger
}

// New constructs a Store backed by the given durable prefs repository.
func New(repo prefs.Repository, log logging.Logger) *Store {
	return &Store{repo: repo, log: log.With("component", "session")}
}

// Set atomically replaces the session with (token, user) and mirrors the
// token to durable storage. user may be nil for a partial session.
//
// The mirror write happens before the in-memory commit and the subscriber
// callbacks, so no component acts on a token that storage does not yet hold.
// A failed write does not block the session for the running process: the
// commit still happens and the error reports the divergence.
func (s *Store) Set(ctx context.Context, token string, user *models.User) error {
	persistErr := s.repo.Set(ctx, prefs.KeySessionToken, []byte(token))
	if persistErr != nil {
		s.log.Warn(ctx, "session token not persisted, session will not survive restart", "error", persistErr)
	}

	s.mu.Lock()
	s.session = &models.Session{Token: token, User: user}
	subs := slices.Clone(s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(token)
	}

	if persistErr != nil {
		return fmt.Errorf("persist session token: %w", persistErr)
	}
	return nil
}

// Clear atomically nulls both token and user and removes the durable token.
// Clearing an already-empty store is a no-op. Storage is touched first, same
// as Set; the in-memory session is nulled regardless of the outcome.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.RLock()
	wasSet := s.session != nil
	s.mu.RUnlock()

	var persistErr error
	if wasSet {
		if persistErr = s.repo.Delete(ctx, prefs.KeySessionToken); persistErr != nil {
			s.log.Warn(ctx, "persisted session token not removed", "error", persistErr)
		}
	}

	s.mu.Lock()
	s.session = nil
	subs := slices.Clone(s.subs)
	s.mu.Unlock()

	for _, fn := range subs {
		fn("")
	}

	if persistErr != nil {
		return fmt.Errorf("remove session token: %w", persistErr)
	}
	return nil
}

// Token returns the current bearer token, or "" when unauthenticated.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return ""
	}
	return s.session.Token
}

// User returns the current user profile, or nil when unknown.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return nil
	}
	return s.session.User
}

// Session returns a copy of the current session, or nil when unauthenticated.
func (s *Store) Session() *models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return nil
	}
	copied := *s.session
	return &copied
}

// OnChange registers fn to be called with the new token value ("" on clear)
// after every committed session change. Callbacks run synchronously on the
// mutating goroutine and must not call back into the store.
func (s *Store) OnChange(fn func(token string)) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

// Restore reads the persisted token and, if present and not expired,
// installs a partial session (token only, user unknown). Intended to run
// once at process start, before any protected request is issued. A token
// whose JWT exp claim is already past is discarded instead of replayed.
func (s *Store) Restore(ctx context.Context) error {
	raw, err := s.repo.Get(ctx, prefs.KeySessionToken)
	if err != nil {
		return fmt.Errorf("read session token: %w", err)
	}
	if len(raw) == 0 {
		return nil
	}

	token := string(raw)
	if tokenExpired(token, time.Now()) {
		s.log.Info(ctx, "persisted token expired, discarding")
		if err := s.repo.Delete(ctx, prefs.KeySessionToken); err != nil {
			return fmt.Errorf("remove expired token: %w", err)
		}
		return nil
	}

	s.log.Info(ctx, "session restored from storage")
	return s.Set(ctx, token, nil)
}

// tokenExpired reports whether token is a JWT whose exp claim is in the past.
// Opaque (non-JWT) tokens and JWTs without exp are treated as still valid;
// the server remains the authority and will answer 401 if not.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(now)
}
