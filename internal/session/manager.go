package session

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/eaterapp/eaterauth/internal/credstore"
	"github.com/eaterapp/eaterauth/internal/logging"
)

// DefaultMinSecretLength is the sign-up policy applied when no explicit
// minimum is configured.
const DefaultMinSecretLength = 6

// Manager owns the two-state authentication machine and all transitions into
// and out of it. It holds no session state in memory: every read goes back to
// the credential store, so there is no second source of truth to desync.
//
// Slot write ordering: token is written first and userId last on the way in,
// and token is deleted first on the way out. Because a session requires both
// slots, a crash between the two writes resolves to "unauthenticated", the
// safe default.
type Manager struct {
	store        credstore.Store
	auth         Authenticator
	log          logging.Logger
	minSecretLen int

	// mu serializes whole auth operations (sign-in/up/out, refresh), so two
	// in-flight attempts cannot interleave their slot writes and the latest
	// completing operation wins deterministically.
	mu sync.Mutex
}

// NewManager wires a Manager to its credential store and authenticator.
// minSecretLen <= 0 selects DefaultMinSecretLength.
func NewManager(store credstore.Store, auth Authenticator, log logging.Logger, minSecretLen int) *Manager {
	if minSecretLen <= 0 {
		minSecretLen = DefaultMinSecretLength
	}
	return &Manager{store: store, auth: auth, log: log, minSecretLen: minSecretLen}
}

// SignIn authenticates identifier/secret and persists the resulting session.
// Empty or whitespace-only input fails with ErrInvalidCredentials before the
// authenticator is contacted. Signing in over an existing session simply overwrites it.
func (m *Manager) SignIn(ctx context.Context, identifier, secret string) (*Session, error) {
	if strings.TrimSpace(identifier) == "" || strings.TrimSpace(secret) == "" {
		return nil, ErrInvalidCredentials
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	grant, err := m.auth.SignIn(ctx, identifier, secret)
	if err != nil {
		return nil, err
	}

	if err := m.persistGrant(ctx, grant); err != nil {
		return nil, err
	}

	m.log.Info(ctx, "signed in", "userID", grant.UserID)
	return sessionFromGrant(grant), nil
}

// SignUp creates an account via the authenticator and persists the resulting
// session. In addition to the SignIn checks it enforces the minimum secret
// length before contacting the authenticator.
func (m *Manager) SignUp(ctx context.Context, identifier, secret, displayName string) (*Session, error) {
	if strings.TrimSpace(identifier) == "" || strings.TrimSpace(secret) == "" {
		return nil, ErrInvalidCredentials
	}
	if len(secret) < m.minSecretLen {
		return nil, fmt.Errorf("%w: secret shorter than %d characters", ErrInvalidCredentials, m.minSecretLen)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	grant, err := m.auth.SignUp(ctx, identifier, secret, displayName)
	if err != nil {
		return nil, err
	}

	if err := m.persistGrant(ctx, grant); err != nil {
		return nil, err
	}

	m.log.Info(ctx, "signed up", "userID", grant.UserID)
	return sessionFromGrant(grant), nil
}

// SignOut deletes the credential slots and transitions to Unauthenticated.
// Signing out with no session present is a success; only a platform storage
// failure is reported.
func (m *Manager) SignOut(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// token first: once it is gone the session no longer exists, whatever
	// happens to the remaining slots.
	for _, slot := range []string{SlotToken, SlotUserID, SlotDisplayName, SlotPhoneNumber} {
		if err := m.store.Delete(ctx, slot); err != nil {
			m.log.Error(ctx, "credential delete failed", "slot", slot, "error", err)
			return fmt.Errorf("%w: delete %s slot", ErrStorage, slot)
		}
	}

	m.log.Info(ctx, "signed out")
	return nil
}

// CurrentSession reconstructs the session from the credential slots. It
// returns (nil, nil) when no session exists: a session requires both the
// token and userId slots, so a partial state reads as absent. This is a pure
// read, safe to call repeatedly and concurrently.
func (m *Manager) CurrentSession(ctx context.Context) (*Session, error) {
	token, ok, err := m.store.Get(ctx, SlotToken)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s slot", ErrStorage, SlotToken)
	}
	if !ok {
		return nil, nil
	}

	userID, ok, err := m.store.Get(ctx, SlotUserID)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s slot", ErrStorage, SlotUserID)
	}
	if !ok {
		return nil, nil
	}

	s := &Session{UserID: userID, Token: token}
	if v, ok, err := m.store.Get(ctx, SlotDisplayName); err == nil && ok {
		s.DisplayName = v
	}
	if v, ok, err := m.store.Get(ctx, SlotPhoneNumber); err == nil && ok {
		s.PhoneNumber = v
	}
	return s, nil
}

// IsAuthenticated reports whether a complete session is present.
func (m *Manager) IsAuthenticated(ctx context.Context) bool {
	s, err := m.CurrentSession(ctx)
	return err == nil && s != nil
}

// RefreshToken asks the authenticator for a fresh token and overwrites the
// token slot only; userId is untouched. On any failure the existing session
// is left intact: a stale-but-present token beats an availability regression,
// so refresh failure never implies sign-out.
func (m *Manager) RefreshToken(ctx context.Context, force bool) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cur, err := m.CurrentSession(ctx)
	if err != nil {
		return nil, err
	}
	if cur == nil {
		return nil, ErrNotAuthenticated
	}

	token, err := m.auth.Refresh(ctx, cur.UserID, cur.Token, force)
	if err != nil {
		m.log.Warn(ctx, "token refresh failed, keeping current session", "error", err)
		return nil, err
	}

	if err := m.store.Save(ctx, SlotToken, token); err != nil {
		m.log.Error(ctx, "credential write failed", "slot", SlotToken, "error", err)
		return nil, fmt.Errorf("%w: save %s slot", ErrStorage, SlotToken)
	}

	cur.Token = token
	m.log.Debug(ctx, "token refreshed", "userID", cur.UserID)
	return cur, nil
}

// persistGrant writes the slots for a fresh grant. userId goes last: it is
// the commit point that makes the session observable, so an interrupted
// persist resolves to "unauthenticated" rather than a half-session.
func (m *Manager) persistGrant(ctx context.Context, grant *Grant) error {
	if err := m.store.Save(ctx, SlotToken, grant.Token); err != nil {
		m.log.Error(ctx, "credential write failed", "slot", SlotToken, "error", err)
		return fmt.Errorf("%w: save %s slot", ErrStorage, SlotToken)
	}

	if err := m.persistProfileSlot(ctx, SlotDisplayName, grant.Profile.DisplayName); err != nil {
		return err
	}
	if err := m.persistProfileSlot(ctx, SlotPhoneNumber, grant.Profile.PhoneNumber); err != nil {
		return err
	}

	if err := m.store.Save(ctx, SlotUserID, grant.UserID); err != nil {
		m.log.Error(ctx, "credential write failed", "slot", SlotUserID, "error", err)
		return fmt.Errorf("%w: save %s slot", ErrStorage, SlotUserID)
	}
	return nil
}

// persistProfileSlot saves a non-empty profile value, or clears the slot so a
// previous account's profile cannot leak into the new session.
func (m *Manager) persistProfileSlot(ctx context.Context, slot, value string) error {
	op := "save"
	var err error
	if value == "" {
		op = "delete"
		err = m.store.Delete(ctx, slot)
	} else {
		err = m.store.Save(ctx, slot, value)
	}
	if err != nil {
		m.log.Error(ctx, "credential write failed", "slot", slot, "op", op, "error", err)
		return fmt.Errorf("%w: %s %s slot", ErrStorage, op, slot)
	}
	return nil
}

func sessionFromGrant(g *Grant) *Session {
	return &Session{
		UserID:      g.UserID,
		Token:       g.Token,
		DisplayName: g.Profile.DisplayName,
		PhoneNumber: g.Profile.PhoneNumber,
	}
}
