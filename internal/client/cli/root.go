package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ilyakharev/glossy/internal/client/models"
)

func (a *App) getStatus() string {
	s := string(a.content.ActiveType())
	if u := a.session.User(); u != nil {
		s = u.Email + " " + s
	} else if a.isLoggedIn() {
		s = "signed-in " + s
	}
	return fmt.Sprintf("(%s)", s)
}

// Root runs the command loop until exit or EOF.
func (a *App) Root(ctx context.Context) {
	fmt.Println("Welcome to Glossy (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("glossy %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Println("Available commands: use <magazines|articles|digests>, refresh [bucket], show, categories, whoami, verify, onboarding <intro|status|next|plan|pay|prefs|complete>, theme <light|dark>, logout, exit")
			} else {
				fmt.Println("Available commands: login, signup, verify, reset-password, theme <light|dark>, exit")
			}

		case "login":
			a.Login(ctx)
		case "signup":
			a.Signup(ctx)
		case "verify":
			a.Verify(ctx)
		case "reset-password":
			a.ResetPassword(ctx)
		case "logout":
			a.Logout(ctx)
		case "whoami":
			a.WhoAmI(ctx)

		case "use":
			if len(args) == 0 {
				fmt.Println("Usage: use <magazines|articles|digests>")
				continue
			}
			a.Use(models.PostType(args[0]))
		case "refresh":
			a.Refresh(ctx, args)
		case "show":
			a.Show()
		case "categories":
			a.ShowCategories()

		case "onboarding":
			if len(args) == 0 {
				fmt.Println("Usage: onboarding <intro|status|next|plan|pay|prefs|complete>")
				continue
			}
			a.Onboarding(ctx, args[0], args[1:])

		case "theme":
			if len(args) == 0 {
				fmt.Println("Current theme:", a.theme)
				continue
			}
			if err := a.SetTheme(ctx, args[0]); err != nil {
				fmt.Println("Failed to save theme:", err)
			}

		case "exit", "quit":
			fmt.Println("Bye!")
			return

		default:
			fmt.Println("Unknown command:", cmd)
		}
	}
}
