package httpclient

import (
	"net/http"
	"time"

	"parts-admin/internal/core/logger"

	"go.uber.org/zap"
)

// TokenSource supplies the bearer token attached to outgoing backend requests.
// Implementations may read from the credential cache or return a fixed value
// in tests; an empty token means the request goes out unauthenticated.
type TokenSource interface {
	// Token returns the current admin token, or an empty string when absent.
	Token() string
}

// StaticToken is a TokenSource returning a fixed token. Intended for tests.
type StaticToken string

// Token implements TokenSource.
func (s StaticToken) Token() string { return string(s) }

// LoggingRoundTripper captures request details for debugging.
type LoggingRoundTripper struct {
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
}

// RoundTrip executes the request and logs details.
func (lrt *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	logger.Get().Debug("HTTP Request Started",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
	)

	resp, err := lrt.Proxied.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		logger.Get().Error("HTTP Request Failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err
	}

	logger.Get().Debug("HTTP Request Completed",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Int("status_code", resp.StatusCode),
		zap.Duration("duration", duration),
	)

	return resp, nil
}

// BearerAuthRoundTripper attaches the admin bearer token to every request.
type BearerAuthRoundTripper struct {
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
	// Tokens supplies the token for each request.
	Tokens TokenSource
}

// RoundTrip attaches the Authorization header when a token is present.
func (brt *BearerAuthRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if token := brt.Tokens.Token(); token != "" {
		// Clone before mutating; RoundTrippers must not modify the original request.
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return brt.Proxied.RoundTrip(req)
}

// NewClient returns an http.Client with logging middleware.
// A timeout of 0 means no client-side timeout.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Transport: &LoggingRoundTripper{
			Proxied: http.DefaultTransport,
		},
		Timeout: timeout,
	}
}

// NewAuthenticatedClient returns an http.Client that logs requests and attaches
// the bearer token supplied by tokens.
func NewAuthenticatedClient(timeout time.Duration, tokens TokenSource) *http.Client {
	return &http.Client{
		Transport: &BearerAuthRoundTripper{
			Proxied: &LoggingRoundTripper{
				Proxied: http.DefaultTransport,
			},
			Tokens: tokens,
		},
		Timeout: timeout,
	}
}
