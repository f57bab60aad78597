// Package onboarding tracks the user's progress through the linear signup
// flow: intro → plan-selection → payment → completed.
//
// Step booleans are monotonic: remote operations only ever move them to true.
// The single exception is Refresh, which replaces the whole state with the
// server's authoritative view and may therefore move a step back to false.
package onboarding

import "github.com/ilyakharev/glossy/internal/client/models"

// NextStep is the pure decision table mapping completion flags to the step
// the user should be shown next. OnboardingCompleted is derived from the
// three step flags, not consulted directly, so a stored "completed" flag can
// never skip an unfinished step.
func NextStep(st models.OnboardingState) models.Step {
	switch {
	case !st.IntroCompleted:
		return models.StepIntro
	case !st.PlanSelectionCompleted:
		return models.StepPlanSelection
	case !st.PaymentCompleted:
		return models.StepPayment
	default:
		return models.StepCompleted
	}
}
