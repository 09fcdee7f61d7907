package auth

import (
	"context"
	"fmt"
	"strings"

	"parts-admin/internal/core/cache"
)

const tokenCacheKey = "admin_token"

// TokenStore persists the admin bearer token in the credential cache.
// It replaces ambient browser-storage style access with an explicit object
// threaded into the HTTP client construction, so the attach-token behavior is
// testable without a real cache backend.
type TokenStore struct {
	cache cache.Cache
}

// NewTokenStore creates a TokenStore backed by the given cache.
func NewTokenStore(c cache.Cache) *TokenStore {
	return &TokenStore{
		cache: c,
	}
}

// Set stores the admin token. The token never expires in the cache; it is
// cleared explicitly on logout or replaced on the next login.
func (s *TokenStore) Set(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("token must not be empty")
	}

	if err := s.cache.Set(ctx, tokenCacheKey, []byte(token), 0); err != nil {
		return fmt.Errorf("failed to store admin token: %w", err)
	}
	return nil
}

// Get retrieves the admin token. It returns an empty string when no token is stored.
func (s *TokenStore) Get(ctx context.Context) (string, error) {
	data, err := s.cache.Get(ctx, tokenCacheKey)
	if err != nil {
		if strings.Contains(err.Error(), "key not found") {
			return "", nil
		}
		return "", fmt.Errorf("failed to read admin token: %w", err)
	}
	return string(data), nil
}

// Clear removes the stored token.
func (s *TokenStore) Clear(ctx context.Context) error {
	if err := s.cache.Delete(ctx, tokenCacheKey); err != nil {
		return fmt.Errorf("failed to clear admin token: %w", err)
	}
	return nil
}

// Token implements httpclient.TokenSource. Cache errors are swallowed here:
// an unreadable token behaves like an absent one and the backend rejects the
// unauthenticated call.
func (s *TokenStore) Token() string {
	token, err := s.Get(context.Background())
	if err != nil {
		return ""
	}
	return token
}
