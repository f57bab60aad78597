package onboarding

import (
	"context"
	"sync"

	"github.com/ilyakharev/glossy/internal/client/api"
	"github.com/ilyakharev/glossy/internal/client/models"
	"github.com/ilyakharev/glossy/internal/logging"
)

// Tracker is the mutable onboarding progress for the current user. Remote
// operations go through the shared API client; local state only advances on
// success, so a failed call never leaves partial progress behind.
type Tracker struct {
	client api.Client
	log    logging.Logger

	mu      sync.RWMutex
	state   models.OnboardingState
	lastErr string
}

// New constructs a Tracker with zero progress.
func New(client api.Client, log logging.Logger) *Tracker {
	return &Tracker{client: client, log: log.With("component", "onboarding")}
}

// State returns a copy of the current onboarding state.
func (t *Tracker) State() models.OnboardingState {
	t.mu.RLock()
	defer t.mu.RUnlock()
	st := t.state
	st.Preferences = append([]string(nil), t.state.Preferences...)
	return st
}

// NextStep returns the step to show next for the current state.
func (t *Tracker) NextStep() models.Step {
	return NextStep(t.State())
}

// Err returns the last non-payment operation error message, or "".
func (t *Tracker) Err() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.lastErr
}

// MarkIntroCompleted records that the intro screens were viewed. Local only;
// the server learns about it with the next status save.
func (t *Tracker) MarkIntroCompleted() {
	t.mu.Lock()
	t.state.IntroCompleted = true
	t.mu.Unlock()
}

// SelectPlan submits the chosen plan. On success the selection is recorded
// and the plan-selection step marked complete; choosing a different plan
// later updates only the selection, the completed flag stays true.
func (t *Tracker) SelectPlan(ctx context.Context, userID, planID string) error {
	if err := t.client.SelectPlan(ctx, userID, planID); err != nil {
		t.mu.Lock()
		t.lastErr = err.Error()
		t.mu.Unlock()
		return err
	}

	t.mu.Lock()
	t.state.SelectedPlan = planID
	t.state.PlanSelectionCompleted = true
	t.lastErr = ""
	t.mu.Unlock()
	return nil
}

// ProcessPayment submits payment details. PaymentInProgress is set for the
// duration of the call; on failure the payment step stays incomplete and the
// error is recorded in PaymentError.
func (t *Tracker) ProcessPayment(ctx context.Context, req models.PaymentRequest) error {
	t.mu.Lock()
	t.state.PaymentInProgress = true
	t.state.PaymentError = ""
	t.mu.Unlock()

	err := t.client.ProcessPayment(ctx, req)

	t.mu.Lock()
	t.state.PaymentInProgress = false
	if err != nil {
		t.state.PaymentError = err.Error()
	} else {
		t.state.PaymentCompleted = true
	}
	t.mu.Unlock()
	return err
}

// ClearPaymentError resets PaymentError without touching progress.
func (t *Tracker) ClearPaymentError() {
	t.mu.Lock()
	t.state.PaymentError = ""
	t.mu.Unlock()
}

// SavePreferences stores the user's content interests on the server and,
// on success, locally.
func (t *Tracker) SavePreferences(ctx context.Context, userID string, preferences []string) error {
	if err := t.client.SavePreferences(ctx, userID, preferences); err != nil {
		t.mu.Lock()
		t.lastErr = err.Error()
		t.mu.Unlock()
		return err
	}

	t.mu.Lock()
	t.state.Preferences = append([]string(nil), preferences...)
	t.lastErr = ""
	t.mu.Unlock()
	return nil
}

// Complete marks onboarding finished on the server. Calling it again after
// completion is a no-op: no request is sent and no state changes.
func (t *Tracker) Complete(ctx context.Context, userID string) error {
	t.mu.RLock()
	done := t.state.OnboardingCompleted
	t.mu.RUnlock()
	if done {
		return nil
	}

	if err := t.client.CompleteOnboarding(ctx, userID); err != nil {
		t.mu.Lock()
		t.lastErr = err.Error()
		t.mu.Unlock()
		return err
	}

	t.mu.Lock()
	t.state.OnboardingCompleted = true
	t.lastErr = ""
	t.mu.Unlock()
	return nil
}

// Refresh replaces local progress wholesale with the server's status.
//
// This is the sole exception to step monotonicity: the server is
// authoritative, so a step recorded true locally may come back false here
// (e.g. a payment reversed on the backend).
func (t *Tracker) Refresh(ctx context.Context, userID string) error {
	status, err := t.client.OnboardingStatus(ctx, userID)
	if err != nil {
		t.mu.Lock()
		t.lastErr = err.Error()
		t.mu.Unlock()
		return err
	}

	t.mu.Lock()
	t.state = models.OnboardingState{
		IntroCompleted:         status.IntroCompleted,
		PlanSelectionCompleted: status.PlanSelectionCompleted,
		PaymentCompleted:       status.PaymentCompleted,
		OnboardingCompleted:    status.OnboardingCompleted,
		SelectedPlan:           status.SelectedPlan,
		Preferences:            append([]string(nil), status.Preferences...),
	}
	t.lastErr = ""
	t.mu.Unlock()

	t.log.Info(ctx, "onboarding state reconciled with server")
	return nil
}

// Reset wipes all local progress. Used on logout.
func (t *Tracker) Reset() {
	t.mu.Lock()
	t.state = models.OnboardingState{}
	t.lastErr = ""
	t.mu.Unlock()
}
