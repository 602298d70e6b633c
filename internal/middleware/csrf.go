package middleware

import (
	"context"
	"net/http"

	"github.com/coolfrog-dev/coolfrog/internal/csrf"
	"github.com/coolfrog-dev/coolfrog/internal/logger"
)

// Names the HTML forms and static/app.js agree on.
const (
	DefaultCSRFCookie = "csrf_token"
	DefaultCSRFField  = "csrf_token"
	DefaultCSRFHeader = "X-CSRF-Token"
)

const csrfCookieMaxAge = 24 * 60 * 60

type csrfContextKey struct{}

// CSRFConfig describes the double-submit contract: the token travels in
// CookieName and comes back in FormField or Header. Empty names take the defaults.
type CSRFConfig struct {
	SecureCookies bool
	CookieName    string
	FormField     string
	Header        string
}

func (c CSRFConfig) withDefaults() CSRFConfig {
	if c.CookieName == "" {
		c.CookieName = DefaultCSRFCookie
	}
	if c.FormField == "" {
		c.FormField = DefaultCSRFField
	}
	if c.Header == "" {
		c.Header = DefaultCSRFHeader
	}
	return c
}

// GenerateCSRFToken makes sure the client holds a token cookie and exposes
// it to templates through the request context.
func GenerateCSRFToken(config CSRFConfig) func(http.Handler) http.Handler {
	config = config.withDefaults()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ""
			if cookie, err := r.Cookie(config.CookieName); err == nil {
				token = cookie.Value
			}
			if token == "" {
				var err error
				if token, err = csrf.GenerateToken(); err != nil {
					logger.Log.Error("failed to generate CSRF token", "error", err)
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
					return
				}
				http.SetCookie(w, &http.Cookie{
					Name:     config.CookieName,
					Value:    token,
					Path:     "/",
					HttpOnly: true,
					Secure:   config.SecureCookies,
					SameSite: http.SameSiteLaxMode,
					MaxAge:   csrfCookieMaxAge,
				})
			}

			ctx := context.WithValue(r.Context(), csrfContextKey{}, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ValidateCSRFToken answers 403 when a form submission does not echo the
// cookie token. Mount it on the state-changing routes only.
func ValidateCSRFToken(config CSRFConfig) func(http.Handler) http.Handler {
	config = config.withDefaults()
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodGet || r.Method == http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}

			cookie, err := r.Cookie(config.CookieName)
			if err != nil {
				logger.Log.Warn("CSRF cookie missing", "path", r.URL.Path)
				http.Error(w, "CSRF token missing", http.StatusForbidden)
				return
			}

			submitted := r.Header.Get(config.Header)
			if submitted == "" {
				if err := r.ParseForm(); err != nil {
					http.Error(w, "Invalid form data", http.StatusBadRequest)
					return
				}
				submitted = r.PostFormValue(config.FormField)
			}

			if !csrf.Equal(cookie.Value, submitted) {
				logger.Log.Warn("CSRF token mismatch", "path", r.URL.Path)
				http.Error(w, "CSRF token invalid", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func GetCSRFTokenFromContext(r *http.Request) string {
	token, _ := r.Context().Value(csrfContextKey{}).(string)
	return token
}
