package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnavailable means the server could not be reached at all.
	ErrUnavailable = errors.New("server unavailable")
	// ErrUnauthorized matches any *Error with status 401.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotLoggedIn is returned before a request that needs a token is sent.
	ErrNotLoggedIn = errors.New("not logged in")
)

// Error is a non-2xx answer from the server. Message is the server's
// {"message": ...} text when present.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d %s", e.Status, http.StatusText(e.Status))
	}
	return e.Message
}

func (e *Error) Is(target error) bool {
	return target == ErrUnauthorized && e.Status == http.StatusUnauthorized
}
