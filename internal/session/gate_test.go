package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coolfrog-dev/coolfrog/internal/domain"
)

type MockStore struct {
	MockGet func(ctx context.Context, token domain.Token) ([]byte, bool, error)
	calls   int
}

func (m *MockStore) Get(ctx context.Context, token domain.Token) ([]byte, bool, error) {
	m.calls++
	if m.MockGet != nil {
		return m.MockGet(ctx, token)
	}
	return nil, false, nil
}

func mapStore(records map[string]string) *MockStore {
	return &MockStore{MockGet: func(_ context.Context, token domain.Token) ([]byte, bool, error) {
		data, ok := records[token]
		return []byte(data), ok, nil
	}}
}

func TestParseCookieHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   map[string]string
	}{
		{"empty", "", map[string]string{}},
		{"single", "session-id=abc", map[string]string{"session-id": "abc"}},
		{"spaces around pairs", "  theme=dark ;  session-id=abc  ", map[string]string{"theme": "dark", "session-id": "abc"}},
		{"value containing equals", "session-id=abc==", map[string]string{"session-id": "abc=="}},
		{"first occurrence wins", "session-id=one; session-id=two", map[string]string{"session-id": "one"}},
		{"pairs without equals skipped", "garbage; ;session-id=abc;=nameless", map[string]string{"session-id": "abc"}},
		{"empty value kept", "session-id=", map[string]string{"session-id": ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCookieHeader(tt.header))
		})
	}
}

func TestGateResolve(t *testing.T) {
	store := mapStore(map[string]string{
		"good":      `{"username":"alice"}`,
		"extra":     `{"username":"bob","created":"2024-01-01"}`,
		"no-user":   `{"email":"x@y.z"}`,
		"blank":     `{"username":"   "}`,
		"not-json":  `alice`,
		"json-null": `null`,
	})
	gate := NewGate(store, "")

	tests := []struct {
		name     string
		header   string
		wantUser string
	}{
		{"valid session", "session-id=good", "alice"},
		{"unknown fields ignored", "other=1; session-id=extra", "bob"},
		{"no cookie header", "", ""},
		{"different cookie only", "theme=dark", ""},
		{"empty token", "session-id=", ""},
		{"unknown token", "session-id=missing", ""},
		{"record without username", "session-id=no-user", ""},
		{"blank username", "session-id=blank", ""},
		{"record not json", "session-id=not-json", ""},
		{"record json null", "session-id=json-null", ""},
		{"malformed header", ";;;==;session", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := gate.Resolve(context.Background(), tt.header)
			if tt.wantUser == "" {
				assert.ErrorIs(t, err, ErrUnauthenticated)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantUser, s.Username)
		})
	}
}

func TestGateResolve_NoStoreAccessWithoutCookie(t *testing.T) {
	store := &MockStore{}
	gate := NewGate(store, "session-id")

	_, err := gate.Resolve(context.Background(), "theme=dark")
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.Equal(t, 0, store.calls)
}

func TestGateResolve_StoreFailure(t *testing.T) {
	storeErr := errors.New("connection refused")
	gate := NewGate(&MockStore{MockGet: func(context.Context, domain.Token) ([]byte, bool, error) {
		return nil, false, storeErr
	}}, "")

	_, err := gate.Resolve(context.Background(), "session-id=abc")
	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, ErrUnauthenticated)
}

func TestGateResolve_CustomCookieName(t *testing.T) {
	gate := NewGate(mapStore(map[string]string{"t": `{"username":"carol"}`}), "sid")

	s, err := gate.Resolve(context.Background(), "session-id=t; sid=t")
	require.NoError(t, err)
	assert.Equal(t, "carol", s.Username)
	assert.Equal(t, "t", s.Token)
	assert.Equal(t, "sid", gate.CookieName())
}
