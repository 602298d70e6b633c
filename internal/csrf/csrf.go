// Package csrf issues and compares the double-submit tokens of the HTML forms.
package csrf

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
)

const tokenBytes = 32

// GenerateToken returns a random URL-safe token without padding, so it can sit
// in a cookie and a form field unescaped.
func GenerateToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Equal reports whether the submitted token matches the cookie one. An empty
// token never matches.
func Equal(cookieToken, submitted string) bool {
	if cookieToken == "" || submitted == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(cookieToken), []byte(submitted)) == 1
}
