package failure

import (
	"errors"
	"net/http"
)

// Failure carries the HTTP status a handler should answer with. Message is what the client
// sees in the error body; cause, when set, is the underlying error kept for errors.Is/As.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`

	cause error
}

func (e *Failure) Error() string {
	return e.Message
}

func (e *Failure) Unwrap() error {
	return e.cause
}

func newFailure(code int, msg string, cause error) *Failure {
	return &Failure{Code: code, Message: msg, cause: cause}
}

// BadRequest is a client error whose message is taken from err. A nil err stays nil.
func BadRequest(err error) error {
	if err == nil {
		return nil
	}

	return newFailure(http.StatusBadRequest, err.Error(), err)
}

func BadRequestFromString(msg string) error {
	return newFailure(http.StatusBadRequest, msg, nil)
}

// InternalError surfaces a store or infrastructure error verbatim as a 500. A nil err stays nil.
func InternalError(err error) error {
	if err == nil {
		return nil
	}

	return newFailure(http.StatusInternalServerError, err.Error(), err)
}

func NotFound(msg string) error {
	return newFailure(http.StatusNotFound, msg, nil)
}

// GetCode returns the status carried by err, or 500 for anything that is not a Failure.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
