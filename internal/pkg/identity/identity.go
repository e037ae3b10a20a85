package identity

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/yamamoto-dev/pointbox/internal/pkg/env"
)

// ErrInvalidToken is returned when the identity provider rejects the
// bearer token (expired, revoked, malformed).
var ErrInvalidToken = errors.New("invalid token")

// Identity is a verified user as reported by the identity provider.
type Identity struct {
	ID    string
	Email *string
}

// Verifier resolves a bearer token to a user identity. Handlers depend
// on this interface so tests can run without a live auth service.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Client verifies tokens against a GoTrue-compatible auth endpoint
// (Supabase). Every request sends the project API key plus the user's
// bearer token.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// NewClientFromEnv builds a client from AUTH_URL / AUTH_ANON_KEY.
func NewClientFromEnv() *Client {
	return NewClient(
		env.GetEnv("AUTH_URL", ""),
		env.GetEnv("AUTH_ANON_KEY", ""),
	)
}

func (c *Client) Verify(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}
	if c.baseURL == "" {
		return nil, fmt.Errorf("auth base URL is not set")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/v1/user", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build auth request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach auth service: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		// fall through to decode
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, ErrInvalidToken
	default:
		return nil, fmt.Errorf("auth service returned status %d", resp.StatusCode)
	}

	var user userResponse
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("failed to decode auth response: %w", err)
	}

	// GoTrue subjects are UUIDs; anything else means a broken response.
	if _, err := uuid.Parse(user.ID); err != nil {
		return nil, fmt.Errorf("auth service returned malformed user id %q", user.ID)
	}

	ident := &Identity{ID: user.ID}
	if user.Email != "" {
		email := user.Email
		ident.Email = &email
	}
	return ident, nil
}
