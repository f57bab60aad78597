package api

import (
	"context"

	"github.com/ilyakharev/glossy/internal/client/models"
)

// Client is the transport-agnostic contract for talking to the Glossy
// backend. Services depend on this interface, never on HTTPClient directly,
// so tests can substitute fakes.
type Client interface {
	Close() error

	// Auth.
	Login(ctx context.Context, email, password string) (*models.Session, error)
	Signup(ctx context.Context, name, email, password string) (*models.Session, error)
	RequestPasswordReset(ctx context.Context, email string) error
	VerifyOTP(ctx context.Context, email, code string) (*models.Session, error)
	SetNewPassword(ctx context.Context, email, code, password string) error
	Profile(ctx context.Context) (*models.User, error)

	// Content.
	FetchPosts(ctx context.Context, domain models.PostType, bucket models.Bucket) ([]models.Post, error)
	FetchCategories(ctx context.Context, domain models.PostType) ([]models.CategoryTag, error)

	// Onboarding.
	SelectPlan(ctx context.Context, userID, planID string) error
	ProcessPayment(ctx context.Context, req models.PaymentRequest) error
	SavePreferences(ctx context.Context, userID string, preferences []string) error
	CompleteOnboarding(ctx context.Context, userID string) error
	OnboardingStatus(ctx context.Context, userID string) (*models.OnboardingStatus, error)
}
