package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ilyakharev/glossy/internal/client/models"
)

func (a *App) userID() string {
	if u := a.session.User(); u != nil {
		return u.ID
	}
	return ""
}

// Onboarding dispatches the onboarding subcommands.
func (a *App) Onboarding(ctx context.Context, sub string, args []string) {
	userID := a.userID()
	if userID == "" {
		fmt.Println("Log in (and run 'whoami') first.")
		return
	}

	switch sub {
	case "intro":
		a.onboarding.MarkIntroCompleted()
		fmt.Println("Intro completed. Next step:", a.onboarding.NextStep())

	case "status":
		if err := a.onboarding.Refresh(ctx, userID); err != nil {
			fmt.Println("Status fetch failed:", err)
			return
		}
		st := a.onboarding.State()
		fmt.Printf("intro=%v plan=%v payment=%v completed=%v selected_plan=%q\n",
			st.IntroCompleted, st.PlanSelectionCompleted, st.PaymentCompleted,
			st.OnboardingCompleted, st.SelectedPlan)

	case "next":
		fmt.Println("Next step:", a.onboarding.NextStep())

	case "plan":
		if len(args) == 0 {
			fmt.Println("Usage: onboarding plan <plan-id>")
			return
		}
		if err := a.onboarding.SelectPlan(ctx, userID, args[0]); err != nil {
			fmt.Println("Plan selection failed:", err)
			return
		}
		fmt.Println("Plan selected:", args[0])

	case "pay":
		card, err := getSimpleText(a.reader, "Enter card token", os.Stdout)
		if err != nil {
			return
		}
		req := models.PaymentRequest{
			UserID:    userID,
			PlanID:    a.onboarding.State().SelectedPlan,
			CardToken: card,
		}
		if err := a.onboarding.ProcessPayment(ctx, req); err != nil {
			fmt.Println("Payment failed:", err)
			return
		}
		fmt.Println("Payment accepted.")

	case "prefs":
		line, err := getSimpleText(a.reader, "Enter interests (comma-separated)", os.Stdout)
		if err != nil {
			return
		}
		var prefs []string
		for _, p := range strings.Split(line, ",") {
			if p = strings.TrimSpace(p); p != "" {
				prefs = append(prefs, p)
			}
		}
		if err := a.onboarding.SavePreferences(ctx, userID, prefs); err != nil {
			fmt.Println("Saving preferences failed:", err)
			return
		}
		fmt.Println("Preferences saved.")

	case "complete":
		if err := a.onboarding.Complete(ctx, userID); err != nil {
			fmt.Println("Completion failed:", err)
			return
		}
		fmt.Println("Onboarding completed.")

	default:
		fmt.Println("Usage: onboarding <intro|status|next|plan|pay|prefs|complete>")
	}
}
