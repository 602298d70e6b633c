package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCSRFToken(t *testing.T) {
	var seen string
	handler := GenerateCSRFToken(CSRFConfig{SecureCookies: true})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetCSRFTokenFromContext(r)
	}))

	t.Run("IssuesCookie", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/forums", nil))

		cookies := rr.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, DefaultCSRFCookie, cookies[0].Name)
		assert.True(t, cookies[0].Secure)
		assert.True(t, cookies[0].HttpOnly)
		assert.Equal(t, cookies[0].Value, seen)
	})

	t.Run("ReusesCookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/forums", nil)
		req.AddCookie(&http.Cookie{Name: DefaultCSRFCookie, Value: "existing"})
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)

		assert.Empty(t, rr.Result().Cookies())
		assert.Equal(t, "existing", seen)
	})
}

func TestValidateCSRFToken(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := ValidateCSRFToken(CSRFConfig{})(next)

	post := func(cookie, formToken, header string) *httptest.ResponseRecorder {
		form := url.Values{"post_id": {"p-1"}}
		if formToken != "" {
			form.Set(DefaultCSRFField, formToken)
		}
		req := httptest.NewRequest(http.MethodPost, "/forums/topic/t/delete-post", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		if cookie != "" {
			req.AddCookie(&http.Cookie{Name: DefaultCSRFCookie, Value: cookie})
		}
		if header != "" {
			req.Header.Set(DefaultCSRFHeader, header)
		}
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr
	}

	assert.Equal(t, http.StatusNoContent, post("tok", "tok", "").Code)
	assert.Equal(t, http.StatusNoContent, post("tok", "", "tok").Code)
	assert.Equal(t, http.StatusForbidden, post("tok", "other", "").Code)
	assert.Equal(t, http.StatusForbidden, post("", "tok", "").Code)
	assert.Equal(t, http.StatusForbidden, post("tok", "", "").Code)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/forums", nil))
	assert.Equal(t, http.StatusNoContent, rr.Code, "safe methods pass through")
}

func TestCSRFConfig_CustomNames(t *testing.T) {
	config := CSRFConfig{CookieName: "xsrf", FormField: "token", Header: "X-Token"}
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	rr := httptest.NewRecorder()
	GenerateCSRFToken(config)(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/forums", nil))
	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "xsrf", cookies[0].Name)

	handler := ValidateCSRFToken(config)(next)
	send := func(field, header string) int {
		req := httptest.NewRequest(http.MethodPost, "/forums/add-topic",
			strings.NewReader(url.Values{field: {"tok"}}.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.AddCookie(&http.Cookie{Name: "xsrf", Value: "tok"})
		if header != "" {
			req.Header.Set(header, "tok")
		}
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, req)
		return rr.Code
	}

	assert.Equal(t, http.StatusNoContent, send("token", ""))
	assert.Equal(t, http.StatusNoContent, send("other", "X-Token"))
	assert.Equal(t, http.StatusForbidden, send(DefaultCSRFField, ""))
	assert.Equal(t, http.StatusForbidden, send("other", DefaultCSRFHeader))
}
