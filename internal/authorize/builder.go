// Package authorize attaches the current session token to outbound requests.
// It never constructs or sends requests itself, and it never lets a request
// that requires authorization go out without the token: absence of a session
// is a typed, recoverable failure instead.
package authorize

import (
	"context"
	"net/http"

	"github.com/eaterapp/eaterauth/internal/common"
	"github.com/eaterapp/eaterauth/internal/session"
)

// SessionSource yields the current session, or nil when there is none.
// *session.Manager satisfies it.
type SessionSource interface {
	CurrentSession(ctx context.Context) (*session.Session, error)
}

// TokenRefresher extends SessionSource with token refresh, used by the gRPC
// interceptor to retry once after an Unauthenticated response.
type TokenRefresher interface {
	SessionSource
	RefreshToken(ctx context.Context, force bool) (*session.Session, error)
}

// Builder decorates HTTP requests with the session's bearer token.
type Builder struct {
	sessions SessionSource
}

func NewBuilder(sessions SessionSource) *Builder {
	return &Builder{sessions: sessions}
}

// Authorize returns a clone of req with the Authorization header populated
// from the current session token. The input request is left untouched. When
// no session exists it returns session.ErrNotAuthenticated, which callers
// should treat as a prompt to re-authenticate.
func (b *Builder) Authorize(ctx context.Context, req *http.Request) (*http.Request, error) {
	s, err := b.sessions.CurrentSession(ctx)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, session.ErrNotAuthenticated
	}

	out := req.Clone(ctx)
	out.Header.Set(common.AuthorizationHeaderName, "Bearer "+s.Token)
	return out, nil
}
