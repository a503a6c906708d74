package api

import (
	"fmt"
	"net/http"
)

// Error is a rejection returned by the game API. Detail carries the
// server-provided message when the response body had one.
type Error struct {
	StatusCode int
	Detail     string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api: %s (status %d)", e.Detail, e.StatusCode)
	}
	return fmt.Sprintf("api: request failed (status %d)", e.StatusCode)
}

// IsUnauthorized reports whether the server rejected the bearer token.
func (e *Error) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// Detail extracts the server-provided detail message from err, or returns
// fallback when err carries none. Pages use this to surface domain
// rejections (insufficient credits, cooldown active) verbatim.
func Detail(err error, fallback string) string {
	if apiErr, ok := err.(*Error); ok && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}
