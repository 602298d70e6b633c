package errors

import (
	stderrors "errors"
	"net/http"
)

// ErrorWithStatusCode carries the HTTP status the handler layer should answer with.
// Any other error reaching a handler is treated as an internal failure.
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

func NotFound(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusNotFound}
}

func BadRequest(message string) error {
	return &ErrorWithStatusCode{Message: message, StatusCode: http.StatusBadRequest}
}

// StatusCode reports the status attached to err, or 500 for unclassified errors.
func StatusCode(err error) int {
	var e *ErrorWithStatusCode
	if stderrors.As(err, &e) {
		return e.StatusCode
	}
	return http.StatusInternalServerError
}

func IsNotFound(err error) bool {
	return err != nil && StatusCode(err) == http.StatusNotFound
}

func IsBadRequest(err error) bool {
	return err != nil && StatusCode(err) == http.StatusBadRequest
}
