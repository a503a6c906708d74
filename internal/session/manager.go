package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/golang-jwt/jwt/v5"

	"bellum/internal/api"
	"bellum/internal/log"
	"bellum/internal/storage"
)

// Settings is the slice of the local store the session layer needs.
type Settings interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

// Authenticator is the slice of the API client the session layer needs.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*api.AuthResponse, error)
	Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error)
}

// Identity is the snapshot derived from the token payload. The token is
// never verified client-side; the server remains the authority and will
// reject stale bearers with a 401.
type Identity struct {
	UserID   int64
	Email    string
	Nickname string
}

// Manager holds the process-wide authentication state. All state changes
// commit synchronously: when Login returns, the new state is observable
// by every reader.
type Manager struct {
	mu            sync.RWMutex
	settings      Settings
	auth          Authenticator
	token         string
	identity      Identity
	authenticated bool
	expired       bool
	expiryWatcher []func()
}

// NewManager creates a session manager over the given settings store.
func NewManager(settings Settings) *Manager {
	return &Manager{settings: settings}
}

// SetAuthenticator wires the API client in after construction; the client
// itself depends on the manager for its token source.
func (m *Manager) SetAuthenticator(auth Authenticator) {
	m.auth = auth
}

// Restore re-derives the session from a previously persisted token.
// An absent or undecodable token leaves the manager logged out.
func (m *Manager) Restore() {
	token, err := m.settings.Get(storage.KeyToken)
	if err != nil {
		log.Warn("Could not read persisted token", "error", err)
		return
	}
	if token == "" {
		return
	}
	if !m.AdoptToken(token) {
		log.Info("Persisted token was not usable, starting logged out")
	}
}

// Login exchanges credentials for a token and establishes the session.
func (m *Manager) Login(ctx context.Context, email, password string) error {
	resp, err := m.auth.Login(ctx, email, password)
	if err != nil {
		return err
	}
	if !m.AdoptToken(resp.AccessToken) {
		return fmt.Errorf("login: server issued an unusable token")
	}
	return nil
}

// Register creates an account and establishes its session.
func (m *Manager) Register(ctx context.Context, req api.RegisterRequest) error {
	resp, err := m.auth.Register(ctx, req)
	if err != nil {
		return err
	}
	if !m.AdoptToken(resp.AccessToken) {
		return fmt.Errorf("register: server issued an unusable token")
	}
	return nil
}

// AdoptToken persists the token and derives the identity from its payload.
// A token missing the required claims, or one that does not decode at all,
// results in a logged-out state with storage cleared; the two cases are
// deliberately indistinguishable to callers.
func (m *Manager) AdoptToken(token string) bool {
	identity, ok := decodeIdentity(token)

	m.mu.Lock()
	defer m.mu.Unlock()

	if !ok {
		m.clearLocked()
		return false
	}

	if err := m.settings.Set(storage.KeyToken, token); err != nil {
		log.Error("Could not persist token", "error", err)
		m.clearLocked()
		return false
	}

	m.token = token
	m.identity = identity
	m.authenticated = true
	m.expired = false
	log.Info("Session established", "user_id", identity.UserID)
	return true
}

// Logout clears the persisted token and all derived state.
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.clearLocked()
	log.Info("Session cleared")
}

// clearLocked resets state and storage; callers hold the write lock.
func (m *Manager) clearLocked() {
	if err := m.settings.Delete(storage.KeyToken); err != nil {
		log.Warn("Could not clear persisted token", "error", err)
	}
	m.token = ""
	m.identity = Identity{}
	m.authenticated = false
	m.expired = false
}

// ExpireSession force-clears the identity and raises the expired flag.
// The API transport invokes this on a 401 response; registered watchers
// (the session-expired modal) are notified outside the lock.
func (m *Manager) ExpireSession() {
	m.mu.Lock()
	m.clearLocked()
	m.expired = true
	watchers := make([]func(), len(m.expiryWatcher))
	copy(watchers, m.expiryWatcher)
	m.mu.Unlock()

	for _, fn := range watchers {
		fn()
	}
}

// OnExpired registers a watcher for session expiry. Unlike the single
// overwritable callback slot the browser client used, every registered
// watcher is notified.
func (m *Manager) OnExpired(fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.expiryWatcher = append(m.expiryWatcher, fn)
}

// Token returns the current bearer token, or "" when logged out. It
// satisfies api.TokenSource.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

// IsAuthenticated reports whether the last token decode produced a full
// identity.
func (m *Manager) IsAuthenticated() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.authenticated
}

// Identity returns the current identity snapshot.
func (m *Manager) Identity() Identity {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.identity
}

// Expired reports whether the session ended via server-side rejection
// rather than an explicit logout.
func (m *Manager) Expired() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.expired
}

// AcknowledgeExpiry lowers the expired flag once the UI has shown it.
func (m *Manager) AcknowledgeExpiry() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.expired = false
}

// decodeIdentity extracts the identity claims from an unverified token
// payload. The session is usable only when both the user id and the
// subject are present.
func decodeIdentity(token string) (Identity, bool) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		log.Debug("Token did not decode", "error", err)
		return Identity{}, false
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Identity{}, false
	}

	userID, ok := claimInt64(claims["user_id"])
	if !ok {
		return Identity{}, false
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return Identity{}, false
	}
	nickname, _ := claims["nickname"].(string)

	return Identity{UserID: userID, Email: sub, Nickname: nickname}, true
}

// claimInt64 accepts the numeric encodings JSON decoding can produce for
// an id claim.
func claimInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case int64:
		return n, true
	default:
		return 0, false
	}
}
