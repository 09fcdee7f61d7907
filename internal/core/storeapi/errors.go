package storeapi

import (
	"errors"
	"net/http"
)

// UserMessage returns the backend-supplied message for err, or fallback when
// the failure had no structured message (network errors, empty bodies).
func UserMessage(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// HTTPStatus returns the status to surface for err: the backend's own status
// when it reported one, 502 for transport-level failures.
func HTTPStatus(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return http.StatusBadGateway
}

// IsUnauthorized reports whether the backend rejected the cached credential.
// Handlers surface these as a uniform session notice so the admin UI can
// redirect to login regardless of the backend's own wording.
func IsUnauthorized(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}
