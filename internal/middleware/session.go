package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/coolfrog-dev/coolfrog/internal/domain"
	"github.com/coolfrog-dev/coolfrog/internal/logger"
	"github.com/coolfrog-dev/coolfrog/internal/session"
)

const UnauthorizedMessage = "Unauthorized - Please log in."

type key int

const sessionKey key = 0

type SessionResolver interface {
	Resolve(ctx context.Context, cookieHeader string) (*domain.Session, error)
}

// RequireSession answers 401 unless the Cookie header resolves to a session.
// Nothing behind it runs for an anonymous request.
func RequireSession(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s, err := resolver.Resolve(r.Context(), r.Header.Get("Cookie"))
			if err != nil {
				if errors.Is(err, session.ErrUnauthenticated) {
					http.Error(w, UnauthorizedMessage, http.StatusUnauthorized)
					return
				}
				logger.Log.Error("session lookup failed", "path", r.URL.Path, "error", err)
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), s)))
		})
	}
}

func WithSession(ctx context.Context, s *domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// GetSessionFromContext returns nil outside RequireSession.
func GetSessionFromContext(r *http.Request) *domain.Session {
	s, ok := r.Context().Value(sessionKey).(*domain.Session)
	if !ok {
		return nil
	}
	return s
}
