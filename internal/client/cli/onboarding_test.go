package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ilyakharev/glossy/internal/client/api"
	"github.com/ilyakharev/glossy/internal/client/models"
	"github.com/ilyakharev/glossy/internal/client/onboarding"
	"github.com/ilyakharev/glossy/internal/client/session"
)

// stubClient is a no-op api.Client for dispatcher tests.
type stubClient struct{}

var _ api.Client = (*stubClient)(nil)

func (stubClient) Close() error { return nil }
func (stubClient) Login(ctx context.Context, email, password string) (*models.Session, error) {
	return nil, nil
}
func (stubClient) Signup(ctx context.Context, name, email, password string) (*models.Session, error) {
	return nil, nil
}
func (stubClient) RequestPasswordReset(ctx context.Context, email string) error { return nil }
func (stubClient) VerifyOTP(ctx context.Context, email, code string) (*models.Session, error) {
	return nil, nil
}
func (stubClient) SetNewPassword(ctx context.Context, email, code, password string) error {
	return nil
}
func (stubClient) Profile(ctx context.Context) (*models.User, error) { return nil, nil }
func (stubClient) FetchPosts(ctx context.Context, domain models.PostType, bucket models.Bucket) ([]models.Post, error) {
	return nil, nil
}
func (stubClient) FetchCategories(ctx context.Context, domain models.PostType) ([]models.CategoryTag, error) {
	return nil, nil
}
func (stubClient) SelectPlan(ctx context.Context, userID, planID string) error { return nil }
func (stubClient) ProcessPayment(ctx context.Context, req models.PaymentRequest) error {
	return nil
}
func (stubClient) SavePreferences(ctx context.Context, userID string, preferences []string) error {
	return nil
}
func (stubClient) CompleteOnboarding(ctx context.Context, userID string) error { return nil }
func (stubClient) OnboardingStatus(ctx context.Context, userID string) (*models.OnboardingStatus, error) {
	return nil, nil
}

// A fresh user must be able to get past the intro step from the shell; the
// intro subcommand is the only local way forward.
func TestOnboardingIntro_AdvancesNextStep(t *testing.T) {
	a := setupApp(t)
	ctx := context.Background()

	a.session = session.New(a.prefs, a.log)
	a.onboarding = onboarding.New(stubClient{}, a.log)
	require.NoError(t, a.session.Set(ctx, "tok-1", &models.User{ID: "u1"}))

	require.Equal(t, models.StepIntro, a.onboarding.NextStep())
	a.Onboarding(ctx, "intro", nil)
	require.Equal(t, models.StepPlanSelection, a.onboarding.NextStep())
	require.True(t, a.onboarding.State().IntroCompleted)
}

func TestOnboarding_RequiresKnownUser(t *testing.T) {
	a := setupApp(t)
	ctx := context.Background()

	a.session = session.New(a.prefs, a.log)
	a.onboarding = onboarding.New(stubClient{}, a.log)

	// no session at all: the dispatcher must not touch the tracker
	a.Onboarding(ctx, "intro", nil)
	require.False(t, a.onboarding.State().IntroCompleted)
}
