// Package session resolves the opaque session cookie of a request to the user
// it belongs to. Sessions are issued and expired elsewhere; this package only reads.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/coolfrog-dev/coolfrog/internal/domain"
)

const DefaultCookieName = "session-id"

// ErrUnauthenticated covers a missing cookie, an unknown token and an unreadable record.
var ErrUnauthenticated = errors.New("unauthenticated")

// Store looks a token up in the external session store. found is false when the
// store has no entry; err is reserved for the store itself failing.
type Store interface {
	Get(ctx context.Context, token domain.Token) (data []byte, found bool, err error)
}

type Gate struct {
	store      Store
	cookieName string
}

func NewGate(store Store, cookieName string) *Gate {
	if cookieName == "" {
		cookieName = DefaultCookieName
	}
	return &Gate{store: store, cookieName: cookieName}
}

func (g *Gate) CookieName() string {
	return g.cookieName
}

// Resolve maps a raw Cookie header to a session. It returns ErrUnauthenticated
// for anything short of a valid record and a wrapped error when the store fails.
func (g *Gate) Resolve(ctx context.Context, cookieHeader string) (*domain.Session, error) {
	token, ok := ParseCookieHeader(cookieHeader)[g.cookieName]
	if !ok || token == "" {
		return nil, ErrUnauthenticated
	}

	data, found, err := g.store.Get(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("session store lookup: %w", err)
	}
	if !found {
		return nil, ErrUnauthenticated
	}

	session, err := decodeRecord(data)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	session.Token = token
	return session, nil
}

func decodeRecord(data []byte) (*domain.Session, error) {
	var session domain.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	if strings.TrimSpace(session.Username) == "" {
		return nil, errors.New("session record without username")
	}
	return &session, nil
}

// ParseCookieHeader splits a Cookie header into name/value pairs. Pairs are
// separated by ';' and trimmed; the value is everything after the first '='.
// The first occurrence of a name wins and pairs without '=' are skipped.
func ParseCookieHeader(header string) map[string]string {
	cookies := make(map[string]string)
	for _, pair := range strings.Split(header, ";") {
		name, value, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, dup := cookies[name]; dup {
			continue
		}
		cookies[name] = strings.TrimSpace(value)
	}
	return cookies
}
