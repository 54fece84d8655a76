package authorize

import (
	"context"
	"net/http"
	"testing"

	"github.com/eaterapp/eaterauth/internal/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSessions implements SessionSource and TokenRefresher.
type fakeSessions struct {
	Session *session.Session
	Err     error

	RefreshSession *session.Session
	RefreshErr     error
	RefreshCalls   int
}

func (f *fakeSessions) CurrentSession(ctx context.Context) (*session.Session, error) {
	return f.Session, f.Err
}

func (f *fakeSessions) RefreshToken(ctx context.Context, force bool) (*session.Session, error) {
	f.RefreshCalls++
	if f.RefreshErr != nil {
		return nil, f.RefreshErr
	}
	if f.RefreshSession != nil {
		f.Session = f.RefreshSession
	}
	return f.RefreshSession, nil
}

func newRequest(t *testing.T) *http.Request {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, "https://api.eater.app/v1/orders", nil)
	require.NoError(t, err)
	return req
}

func TestAuthorize_AttachesSessionToken(t *testing.T) {
	fs := &fakeSessions{Session: &session.Session{UserID: "user-42", Token: "tok-abc"}}
	b := NewBuilder(fs)

	req := newRequest(t)
	out, err := b.Authorize(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, out)

	assert.Equal(t, "Bearer tok-abc", out.Header.Get("Authorization"))
}

func TestAuthorize_NoSession(t *testing.T) {
	fs := &fakeSessions{}
	b := NewBuilder(fs)

	req := newRequest(t)
	out, err := b.Authorize(context.Background(), req)
	require.ErrorIs(t, err, session.ErrNotAuthenticated)
	assert.Nil(t, out)

	// the original request gained no token field
	assert.Empty(t, req.Header.Get("Authorization"))
}

func TestAuthorize_InputRequestUntouched(t *testing.T) {
	fs := &fakeSessions{Session: &session.Session{UserID: "u", Token: "tok"}}
	b := NewBuilder(fs)

	req := newRequest(t)
	_, err := b.Authorize(context.Background(), req)
	require.NoError(t, err)

	assert.Empty(t, req.Header.Get("Authorization"), "Authorize must clone, not mutate")
}

func TestAuthorize_StorageErrorPropagates(t *testing.T) {
	fs := &fakeSessions{Err: session.ErrStorage}
	b := NewBuilder(fs)

	_, err := b.Authorize(context.Background(), newRequest(t))
	require.ErrorIs(t, err, session.ErrStorage)
	require.NotErrorIs(t, err, session.ErrNotAuthenticated,
		"storage failure must stay distinguishable from a missing session")
}
