package models

// Step names a stage of the onboarding flow, in order.
type Step string

const (
	StepIntro         Step = "intro"
	StepPlanSelection Step = "plan-selection"
	StepPayment       Step = "payment"
	StepCompleted     Step = "completed"
)

// OnboardingState is the locally tracked onboarding progress. Step booleans
// are monotonic: once true they stay true, except when replaced wholesale by
// an authoritative server status (see onboarding.Tracker.Refresh) or by an
// explicit reset.
type OnboardingState struct {
	IntroCompleted         bool     `json:"intro_completed"`
	PlanSelectionCompleted bool     `json:"plan_selection_completed"`
	PaymentCompleted       bool     `json:"payment_completed"`
	OnboardingCompleted    bool     `json:"onboarding_completed"`
	SelectedPlan           string   `json:"selected_plan,omitempty"`
	Preferences            []string `json:"preferences,omitempty"`
	PaymentInProgress      bool     `json:"payment_in_progress"`
	PaymentError           string   `json:"payment_error,omitempty"`
}

// OnboardingStatus is the server's authoritative view of a user's onboarding
// progress, returned by the status endpoint.
type OnboardingStatus struct {
	IntroCompleted         bool     `json:"intro_completed"`
	PlanSelectionCompleted bool     `json:"plan_selection_completed"`
	PaymentCompleted       bool     `json:"payment_completed"`
	OnboardingCompleted    bool     `json:"onboarding_completed"`
	SelectedPlan           string   `json:"selected_plan,omitempty"`
	Preferences            []string `json:"preferences,omitempty"`
}

// PaymentRequest carries the details for the payment-processing endpoint.
type PaymentRequest struct {
	UserID    string `json:"user_id"`
	PlanID    string `json:"plan_id"`
	CardToken string `json:"card_token"`
}
