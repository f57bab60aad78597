package models

// User is the authenticated account profile.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Verified bool   `json:"verified"`
	Plan     string `json:"plan"`
}

// Session is the (token, user) pair representing an authenticated identity.
// User may be nil for a partial session restored from durable storage on cold
// start, where only the token is known until a profile fetch completes.
type Session struct {
	Token string `json:"token"`
	User  *User  `json:"user,omitempty"`
}
