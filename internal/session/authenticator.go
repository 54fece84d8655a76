package session

import "context"

// Authenticator is the external capability that verifies identity and issues
// tokens. The demo app ships a success-always implementation (see the
// demoauth package); a real backend client must satisfy the same contract so
// the Manager is unaffected by swapping it.
//
// Errors returned by implementations should be one of the kinds declared in
// this package (ErrInvalidCredentials, ErrNetwork, *ServerError); the Manager
// passes them through without interpretation.
//
// All methods must honor context cancellation/timeouts.
type Authenticator interface {
	// SignIn verifies the identifier/secret pair and yields a grant.
	SignIn(ctx context.Context, identifier, secret string) (*Grant, error)

	// SignUp creates an account and yields a grant for it.
	SignUp(ctx context.Context, identifier, secret, displayName string) (*Grant, error)

	// Refresh exchanges the current token for a fresh one. force requests a
	// new token even when the current one is still considered valid.
	Refresh(ctx context.Context, userID, token string, force bool) (string, error)
}
