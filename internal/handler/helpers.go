package handler

import (
	"net/http"

	"github.com/coolfrog-dev/coolfrog/internal/domain"
	internal_errors "github.com/coolfrog-dev/coolfrog/internal/errors"
	"github.com/coolfrog-dev/coolfrog/internal/logger"
	mw "github.com/coolfrog-dev/coolfrog/internal/middleware"
)

// writeError answers with the status attached to err. Unclassified errors
// become a bare 500 and their detail only goes to the log.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := internal_errors.StatusCode(err)
	if status >= http.StatusInternalServerError {
		logger.Log.Error("request failed", "action", actionFromRequest(r), "method", r.Method, "path", r.URL.Path, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	http.Error(w, err.Error(), status)
}

// requestScope returns the family and caller of a gated request. Both are set
// by router middleware; their absence is a wiring bug.
func requestScope(w http.ResponseWriter, r *http.Request) (domain.Family, *domain.Session, bool) {
	family, ok := familyFromRequest(r)
	s := mw.GetSessionFromContext(r)
	if !ok || s == nil {
		logger.Log.Error("handler reached without family or session", "path", r.URL.Path)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return domain.Family{}, nil, false
	}
	return family, s, true
}

func parseForm(w http.ResponseWriter, r *http.Request) bool {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return false
	}
	return true
}

// NotFound answers 404 for GET and 400 for anything else.
func NotFound(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
		return
	}
	http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
}
