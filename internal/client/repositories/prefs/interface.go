// Package prefs is the durable key-value storage of the client: the session
// token and user preferences (theme mode) survive process restarts here.
package prefs

import "context"

// Well-known keys.
const (
	KeySessionToken = "session_token"
	KeyThemeMode    = "theme_mode"

	// Profile snapshot, written together on login so a restored session can
	// show the user before the first profile fetch.
	KeyProfileID    = "profile_id"
	KeyProfileEmail = "profile_email"
	KeyProfileName  = "profile_name"
	KeyProfilePlan  = "profile_plan"
)

// Repository is a small durable key-value store. Get returns nil (no error)
// for a missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
