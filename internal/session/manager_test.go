package session

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"

	"bellum/internal/api"
	"bellum/internal/storage"
)

type memSettings struct {
	values map[string]string
}

func newMemSettings() *memSettings {
	return &memSettings{values: make(map[string]string)}
}

func (m *memSettings) Get(key string) (string, error) {
	return m.values[key], nil
}

func (m *memSettings) Set(key, value string) error {
	m.values[key] = value
	return nil
}

func (m *memSettings) Delete(key string) error {
	delete(m.values, key)
	return nil
}

func encodeSegment(v any) string {
	data, _ := json.Marshal(v)
	return base64.RawURLEncoding.EncodeToString(data)
}

func makeToken(claims map[string]any) string {
	header := encodeSegment(map[string]string{"alg": "HS256", "typ": "JWT"})
	payload := encodeSegment(claims)
	return header + "." + payload + ".c2lnbmF0dXJl"
}

func TestAdoptTokenValid(t *testing.T) {
	settings := newMemSettings()
	m := NewManager(settings)

	token := makeToken(map[string]any{
		"user_id":  float64(7),
		"sub":      "pilot@example.com",
		"nickname": "Aezakimi",
	})

	if !m.AdoptToken(token) {
		t.Fatal("expected valid token to be adopted")
	}
	if !m.IsAuthenticated() {
		t.Error("expected authenticated state")
	}

	identity := m.Identity()
	if identity.UserID != 7 {
		t.Errorf("expected user id 7, got %d", identity.UserID)
	}
	if identity.Email != "pilot@example.com" {
		t.Errorf("unexpected email %q", identity.Email)
	}
	if identity.Nickname != "Aezakimi" {
		t.Errorf("unexpected nickname %q", identity.Nickname)
	}

	if stored := settings.values[storage.KeyToken]; stored != token {
		t.Errorf("token was not persisted, got %q", stored)
	}
	if m.Token() != token {
		t.Error("token source does not return the adopted token")
	}
}

func TestAdoptTokenRejections(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{"missing sub", makeToken(map[string]any{"user_id": float64(7)})},
		{"missing user_id", makeToken(map[string]any{"sub": "pilot@example.com"})},
		{"non-numeric user_id", makeToken(map[string]any{"user_id": "seven", "sub": "x@y.z"})},
		{"bad base64 payload", "eyJhbGciOiJIUzI1NiJ9.!!!not-base64!!!.sig"},
		{"non-JSON payload", "eyJhbGciOiJIUzI1NiJ9." + base64.RawURLEncoding.EncodeToString([]byte("not json")) + ".sig"},
		{"not a token at all", "garbage"},
		{"empty", ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			settings := newMemSettings()
			settings.values[storage.KeyToken] = "stale-token"
			m := NewManager(settings)

			if m.AdoptToken(tc.token) {
				t.Fatal("expected token to be rejected")
			}
			if m.IsAuthenticated() {
				t.Error("expected unauthenticated state")
			}
			if _, ok := settings.values[storage.KeyToken]; ok {
				t.Error("expected storage to be cleared defensively")
			}
		})
	}
}

func TestLogoutClearsEverything(t *testing.T) {
	settings := newMemSettings()
	m := NewManager(settings)
	m.AdoptToken(makeToken(map[string]any{"user_id": float64(1), "sub": "a@b.c"}))

	m.Logout()

	if m.IsAuthenticated() {
		t.Error("expected unauthenticated state after logout")
	}
	if m.Token() != "" {
		t.Error("expected token to be cleared")
	}
	if _, ok := settings.values[storage.KeyToken]; ok {
		t.Error("expected persisted token to be removed")
	}
}

func TestExpireSessionNotifiesAllWatchers(t *testing.T) {
	settings := newMemSettings()
	m := NewManager(settings)
	m.AdoptToken(makeToken(map[string]any{"user_id": float64(1), "sub": "a@b.c"}))

	first, second := 0, 0
	m.OnExpired(func() { first++ })
	m.OnExpired(func() { second++ })

	m.ExpireSession()

	if first != 1 || second != 1 {
		t.Errorf("expected both watchers to fire once, got %d and %d", first, second)
	}
	if !m.Expired() {
		t.Error("expected expired flag to be raised")
	}
	if m.IsAuthenticated() {
		t.Error("expected identity to be force-cleared")
	}

	m.AcknowledgeExpiry()
	if m.Expired() {
		t.Error("expected expired flag to be lowered")
	}
}

func TestRestoreFromPersistedToken(t *testing.T) {
	settings := newMemSettings()
	token := makeToken(map[string]any{"user_id": float64(3), "sub": "x@y.z"})
	settings.values[storage.KeyToken] = token

	m := NewManager(settings)
	m.Restore()

	if !m.IsAuthenticated() {
		t.Fatal("expected session to restore from persisted token")
	}
	if m.Identity().UserID != 3 {
		t.Errorf("expected user id 3, got %d", m.Identity().UserID)
	}

	empty := NewManager(newMemSettings())
	empty.Restore()
	if empty.IsAuthenticated() {
		t.Error("expected no session without a persisted token")
	}
}

type fakeAuth struct {
	token string
	err   error
}

func (f *fakeAuth) Login(context.Context, string, string) (*api.AuthResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &api.AuthResponse{AccessToken: f.token}, nil
}

func (f *fakeAuth) Register(context.Context, api.RegisterRequest) (*api.AuthResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &api.AuthResponse{AccessToken: f.token}, nil
}

func TestLoginCommitsSynchronously(t *testing.T) {
	settings := newMemSettings()
	m := NewManager(settings)
	m.SetAuthenticator(&fakeAuth{token: makeToken(map[string]any{"user_id": float64(9), "sub": "p@q.r"})})

	if err := m.Login(context.Background(), "p@q.r", "secret"); err != nil {
		t.Fatalf("unexpected login error: %v", err)
	}
	// No settling delay: the state must be observable immediately.
	if !m.IsAuthenticated() {
		t.Error("expected authenticated state right after Login returns")
	}
}

func TestLoginRejectsUnusableToken(t *testing.T) {
	m := NewManager(newMemSettings())
	m.SetAuthenticator(&fakeAuth{token: "not-a-token"})

	if err := m.Login(context.Background(), "p@q.r", "secret"); err == nil {
		t.Fatal("expected error for unusable token")
	}
	if m.IsAuthenticated() {
		t.Error("expected unauthenticated state")
	}
}

func TestLoginPropagatesServerRejection(t *testing.T) {
	m := NewManager(newMemSettings())
	wantErr := errors.New("invalid credentials")
	m.SetAuthenticator(&fakeAuth{err: wantErr})

	if err := m.Login(context.Background(), "p@q.r", "wrong"); !errors.Is(err, wantErr) {
		t.Fatalf("expected server rejection to propagate, got %v", err)
	}
}
