package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sethvargo/go-retry"

	"github.com/ilyakharev/glossy/internal/client/models"
	"github.com/ilyakharev/glossy/internal/logging"
)

const (
	defaultTimeout = 10 * time.Second
	retryBase      = 100 * time.Millisecond
	maxRetries     = 2
)

// HTTPClient is the REST/JSON implementation of Client.
//
// The bearer token is held internally and injected into every outgoing
// request; AttachToken must be called whenever the session token changes
// (session.Store.OnChange is the intended wiring, so call sites never manage
// the header themselves). A 401 response triggers the registered
// OnUnauthorized hook exactly once per response before the call is rejected
// with ErrUnauthorized.
type HTTPClient struct {
	baseURL string
	http    *http.Client
	log     logging.Logger

	mu             sync.RWMutex
	token          string
	onUnauthorized func(ctx context.Context)
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient constructs a gateway for the given base URL, e.g.
// "https://api.glossy.example". A zero timeout falls back to the default.
func NewHTTPClient(baseURL string, timeout time.Duration, log logging.Logger) *HTTPClient {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		log:     log.With("component", "api"),
	}
}

// AttachToken sets or removes (empty string) the bearer token used for all
// subsequent requests. The change is visible to the next call issued.
func (c *HTTPClient) AttachToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

// OnUnauthorized registers the session-revocation hook invoked on every 401
// response. Passing nil removes the hook; a 401 with no hook registered is
// still rejected with ErrUnauthorized.
func (c *HTTPClient) OnUnauthorized(fn func(ctx context.Context)) {
	c.mu.Lock()
	c.onUnauthorized = fn
	c.mu.Unlock()
}

// Close releases idle transport connections.
func (c *HTTPClient) Close() error {
	c.http.CloseIdleConnections()
	return nil
}

// errorBody is the backend's error envelope.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (b errorBody) text() string {
	if b.Message != "" {
		return b.Message
	}
	return b.Error
}

// do issues one API call. Network failures (no response) are retried with
// exponential backoff and surface as ErrUnavailable; HTTP error statuses are
// never retried. On 2xx the body is decoded into out when out is non-nil.
func (c *HTTPClient) do(ctx context.Context, method, path string, in, out any) error {
	var payload []byte
	if in != nil {
		var err error
		payload, err = json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	requestID := uuid.NewString()

	backoff := retry.WithMaxRetries(maxRetries, retry.NewExponential(retryBase))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		var body io.Reader
		if payload != nil {
			body = bytes.NewReader(payload)
		}

		req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
		if err != nil {
			return err
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("X-Request-Id", requestID)
		if payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}

		c.mu.RLock()
		token := c.token
		c.mu.RUnlock()
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}

		resp, err := c.http.Do(req)
		if err != nil {
			c.log.Warn(ctx, "request failed", "method", method, "path", path, "request_id", requestID, "error", err)
			return retry.RetryableError(fmt.Errorf("%w: %v", ErrUnavailable, err))
		}
		defer resp.Body.Close()

		raw, err := io.ReadAll(resp.Body)
		if err != nil {
			return retry.RetryableError(fmt.Errorf("%w: %v", ErrUnavailable, err))
		}

		switch {
		case resp.StatusCode == http.StatusUnauthorized:
			c.revoke(ctx)
			return ErrUnauthorized

		case resp.StatusCode < 200 || resp.StatusCode > 299:
			var eb errorBody
			_ = json.Unmarshal(raw, &eb)
			msg := eb.text()
			if msg == "" {
				msg = http.StatusText(resp.StatusCode)
			}
			return &StatusError{Status: resp.StatusCode, Message: msg}
		}

		if out != nil {
			if err := json.Unmarshal(raw, out); err != nil {
				return fmt.Errorf("decode response: %w", err)
			}
		}
		return nil
	})
}

// revoke fires the one-shot revocation hook for a 401 response. Missing hook
// is not an error.
func (c *HTTPClient) revoke(ctx context.Context) {
	c.mu.RLock()
	fn := c.onUnauthorized
	c.mu.RUnlock()

	c.log.Warn(ctx, "authorization expired, revoking session")
	if fn != nil {
		fn(ctx)
	}
}

type sessionResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

func (r *sessionResponse) session() *models.Session {
	return &models.Session{Token: r.Token, User: r.User}
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.Session, error) {
	in := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{email, password}

	var out sessionResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", in, &out); err != nil {
		return nil, err
	}
	return out.session(), nil
}

func (c *HTTPClient) Signup(ctx context.Context, name, email, password string) (*models.Session, error) {
	in := struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}{name, email, password}

	var out sessionResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/signup", in, &out); err != nil {
		return nil, err
	}
	return out.session(), nil
}

func (c *HTTPClient) RequestPasswordReset(ctx context.Context, email string) error {
	in := struct {
		Email string `json:"email"`
	}{email}
	return c.do(ctx, http.MethodPost, "/api/auth/password-reset", in, nil)
}

func (c *HTTPClient) VerifyOTP(ctx context.Context, email, code string) (*models.Session, error) {
	in := struct {
		Email string `json:"email"`
		Code  string `json:"code"`
	}{email, code}

	var out sessionResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/verify-otp", in, &out); err != nil {
		return nil, err
	}
	return out.session(), nil
}

func (c *HTTPClient) SetNewPassword(ctx context.Context, email, code, password string) error {
	in := struct {
		Email    string `json:"email"`
		Code     string `json:"code"`
		Password string `json:"password"`
	}{email, code, password}
	return c.do(ctx, http.MethodPost, "/api/auth/password", in, nil)
}

func (c *HTTPClient) Profile(ctx context.Context) (*models.User, error) {
	var out models.User
	if err := c.do(ctx, http.MethodGet, "/api/profile", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) FetchPosts(ctx context.Context, domain models.PostType, bucket models.Bucket) ([]models.Post, error) {
	var out struct {
		Posts []models.Post `json:"posts"`
	}
	path := fmt.Sprintf("/api/content/%s/%s", domain, bucket)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Posts, nil
}

func (c *HTTPClient) FetchCategories(ctx context.Context, domain models.PostType) ([]models.CategoryTag, error) {
	var out struct {
		Categories []models.CategoryTag `json:"categories"`
	}
	path := fmt.Sprintf("/api/content/%s/categories", domain)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out.Categories, nil
}

func (c *HTTPClient) SelectPlan(ctx context.Context, userID, planID string) error {
	in := struct {
		UserID string `json:"user_id"`
		PlanID string `json:"plan_id"`
	}{userID, planID}
	return c.do(ctx, http.MethodPost, "/api/onboarding/plan", in, nil)
}

func (c *HTTPClient) ProcessPayment(ctx context.Context, req models.PaymentRequest) error {
	return c.do(ctx, http.MethodPost, "/api/onboarding/payment", req, nil)
}

func (c *HTTPClient) SavePreferences(ctx context.Context, userID string, preferences []string) error {
	in := struct {
		UserID      string   `json:"user_id"`
		Preferences []string `json:"preferences"`
	}{userID, preferences}
	return c.do(ctx, http.MethodPost, "/api/onboarding/preferences", in, nil)
}

func (c *HTTPClient) CompleteOnboarding(ctx context.Context, userID string) error {
	in := struct {
		UserID string `json:"user_id"`
	}{userID}
	return c.do(ctx, http.MethodPost, "/api/onboarding/complete", in, nil)
}

func (c *HTTPClient) OnboardingStatus(ctx context.Context, userID string) (*models.OnboardingStatus, error) {
	var out models.OnboardingStatus
	path := "/api/onboarding/status?user_id=" + url.QueryEscape(userID)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
