package constants

import "net/http"

// CodedError carries the HTTP status the API error handler should answer with.
type CodedError struct {
	msg  string
	code int
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

func NewCodedError(msg string, code int) *CodedError {
	return &CodedError{msg: msg, code: code}
}

var (
	ErrDBNotFound   = NewCodedError("not found", http.StatusNotFound)
	ErrUnauthorized = NewCodedError("unauthorized", http.StatusUnauthorized)
)
