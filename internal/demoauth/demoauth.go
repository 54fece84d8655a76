// Package demoauth is the demo implementation of the session.Authenticator
// contract. It accepts any non-empty credentials, mints HS256 JWTs locally,
// and derives stable user IDs from the identifier, so the client works end to
// end with no backend reachable. A real backend client must preserve the same
// contract so the session manager is unaffected by swapping it in.
package demoauth

import (
	"context"
	"strings"
	"time"

	"github.com/eaterapp/eaterauth/internal/session"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTokenTTL is the lifetime of issued tokens when none is configured.
const DefaultTokenTTL = 15 * time.Minute

// userNamespace seeds uuid.NewSHA1 so an identifier always maps to the same
// user ID across sign-ins.
var userNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://eater.app/users"))

// Claims carries the standard registered claims plus the user ID.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

type Authenticator struct {
	secret   []byte
	tokenTTL time.Duration
	now      func() time.Time // injectable for testing
}

// New creates a demo authenticator signing tokens with secret. tokenTTL <= 0
// selects DefaultTokenTTL.
func New(secret []byte, tokenTTL time.Duration) *Authenticator {
	if tokenTTL <= 0 {
		tokenTTL = DefaultTokenTTL
	}
	return &Authenticator{secret: secret, tokenTTL: tokenTTL, now: time.Now}
}

// SignIn accepts any non-empty identifier/secret pair and yields a grant with
// a stable user ID for the identifier.
func (a *Authenticator) SignIn(ctx context.Context, identifier, secret string) (*session.Grant, error) {
	if identifier == "" || secret == "" {
		return nil, session.ErrInvalidCredentials
	}
	return a.grantFor(identifier, displayNameFor(identifier))
}

// SignUp behaves like SignIn; the demo backend has no notion of an existing
// account. displayName, when given, overrides the derived one.
func (a *Authenticator) SignUp(ctx context.Context, identifier, secret, displayName string) (*session.Grant, error) {
	if identifier == "" || secret == "" {
		return nil, session.ErrInvalidCredentials
	}
	if displayName == "" {
		displayName = displayNameFor(identifier)
	}
	return a.grantFor(identifier, displayName)
}

// Refresh returns the current token if it still verifies for userID and force
// is unset; otherwise it mints a fresh one.
func (a *Authenticator) Refresh(ctx context.Context, userID, token string, force bool) (string, error) {
	if userID == "" {
		return "", session.ErrInvalidCredentials
	}
	if !force {
		if uid, err := a.parseUserID(token); err == nil && uid == userID {
			return token, nil
		}
	}
	return a.issueToken(userID)
}

func (a *Authenticator) grantFor(identifier, displayName string) (*session.Grant, error) {
	userID := uuid.NewSHA1(userNamespace, []byte(identifier)).String()

	token, err := a.issueToken(userID)
	if err != nil {
		return nil, err
	}

	return &session.Grant{
		UserID:  userID,
		Token:   token,
		Profile: session.Profile{DisplayName: displayName},
	}, nil
}

func (a *Authenticator) issueToken(userID string) (string, error) {
	now := a.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.tokenTTL)),
		},
		UserID: userID,
	})
	return token.SignedString(a.secret)
}

func (a *Authenticator) parseUserID(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, jwt.WithTimeFunc(a.now))
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", session.ErrInvalidCredentials
	}
	return claims.UserID, nil
}

// displayNameFor derives a default display name from the identifier's local
// part, e.g. "demo@eater.app" -> "demo".
func displayNameFor(identifier string) string {
	if at := strings.IndexByte(identifier, '@'); at > 0 {
		return identifier[:at]
	}
	return identifier
}
