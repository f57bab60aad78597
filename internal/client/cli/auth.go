package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ilyakharev/glossy/internal/client/api"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and establishes a session on success.
func (a *App) Login(ctx context.Context) {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return
	}

	sess, err := a.gateway.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, api.ErrUnavailable) {
			fmt.Println("Server unavailable, try again later.")
			return
		}
		fmt.Println("Login failed:", err)
		return
	}

	if err := a.session.Set(ctx, sess.Token, sess.User); err != nil {
		a.log.Warn(ctx, "session persist failed", "error", err)
	}
	if err := a.saveProfile(ctx, sess.User); err != nil {
		a.log.Warn(ctx, "profile persist failed", "error", err)
	}
	fmt.Println("Logged in.")
}

// Signup prompts for account details and establishes a session on success.
func (a *App) Signup(ctx context.Context) {
	name, err := getSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		return
	}
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return
	}

	sess, err := a.gateway.Signup(ctx, name, email, password)
	if err != nil {
		fmt.Println("Signup failed:", err)
		return
	}

	if err := a.session.Set(ctx, sess.Token, sess.User); err != nil {
		a.log.Warn(ctx, "session persist failed", "error", err)
	}
	if err := a.saveProfile(ctx, sess.User); err != nil {
		a.log.Warn(ctx, "profile persist failed", "error", err)
	}
	fmt.Println("Account created. Check your email for a verification code.")
}

// Verify confirms the account email with the one-time code sent at signup
// and installs the returned (now verified) session.
func (a *App) Verify(ctx context.Context) {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return
	}
	code, err := getSimpleText(a.reader, "Enter the code from your email", os.Stdout)
	if err != nil {
		return
	}

	sess, err := a.gateway.VerifyOTP(ctx, email, code)
	if err != nil {
		fmt.Println("Verification failed:", err)
		return
	}

	if err := a.session.Set(ctx, sess.Token, sess.User); err != nil {
		a.log.Warn(ctx, "session persist failed", "error", err)
	}
	if err := a.saveProfile(ctx, sess.User); err != nil {
		a.log.Warn(ctx, "profile persist failed", "error", err)
	}
	fmt.Println("Email verified.")
}

// ResetPassword walks the request-code / verify / set-new-password flow.
func (a *App) ResetPassword(ctx context.Context) {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return
	}
	if err := a.gateway.RequestPasswordReset(ctx, email); err != nil {
		fmt.Println("Request failed:", err)
		return
	}

	code, err := getSimpleText(a.reader, "Enter the code from your email", os.Stdout)
	if err != nil {
		return
	}
	password, err := getPassword(os.Stdout)
	if err != nil {
		return
	}
	if err := a.gateway.SetNewPassword(ctx, email, code, password); err != nil {
		fmt.Println("Password change failed:", err)
		return
	}
	fmt.Println("Password updated, please log in.")
}

// Logout clears the session (memory and durable storage) and local progress.
func (a *App) Logout(ctx context.Context) {
	if err := a.session.Clear(ctx); err != nil {
		a.log.Warn(ctx, "session clear failed", "error", err)
	}
	if err := a.wipeProfile(ctx); err != nil {
		a.log.Warn(ctx, "profile wipe failed", "error", err)
	}
	a.onboarding.Reset()
	fmt.Println("Logged out.")
}

// WhoAmI fetches and prints the profile, completing a partial session
// restored at cold start.
func (a *App) WhoAmI(ctx context.Context) {
	user, err := a.gateway.Profile(ctx)
	if err != nil {
		fmt.Println("Profile fetch failed:", err)
		return
	}
	if err := a.session.Set(ctx, a.session.Token(), user); err != nil {
		a.log.Warn(ctx, "session persist failed", "error", err)
	}
	if err := a.saveProfile(ctx, user); err != nil {
		a.log.Warn(ctx, "profile persist failed", "error", err)
	}
	fmt.Printf("%s <%s> plan=%s verified=%v\n", user.Name, user.Email, user.Plan, user.Verified)
}
