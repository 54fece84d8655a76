package session

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Callers match them with errors.Is; ErrStorage and
// ErrInvalidCredentials are deliberately distinct so the UI can tell
// "couldn't save your session" apart from "wrong password".
var (
	// ErrInvalidCredentials means an empty or malformed identifier/secret.
	// It is returned before any I/O happens.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrStorage means a credential store read/write/delete failed at the
	// platform level. Retrying the operation may help.
	ErrStorage = errors.New("storage failure")

	// ErrNotAuthenticated means no session was present when one was required.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrNetwork is surfaced opaquely from the authenticator collaborator.
	ErrNetwork = errors.New("network error")
)

// ServerError is an authenticator-side failure passed through unchanged.
type ServerError struct {
	Code    int
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("server error %d: %s", e.Code, e.Message)
}

// Message maps an error to a single human-readable string suitable for the UI.
func Message(err error) string {
	var se *ServerError
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInvalidCredentials):
		return "Check your email and password and try again."
	case errors.Is(err, ErrStorage):
		return "Couldn't save your session. Please try again."
	case errors.Is(err, ErrNotAuthenticated):
		return "Please sign in to continue."
	case errors.Is(err, ErrNetwork):
		return "Network unavailable. Check your connection and try again."
	case errors.As(err, &se):
		return se.Message
	default:
		return "Something went wrong. Please try again."
	}
}
