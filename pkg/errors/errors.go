package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// JWT and tokens
	ErrInvalidSigningMethod = errors.New("unexpected token signing method")
	ErrInvalidToken         = errors.New("invalid token")
	ErrTokenExpired         = errors.New("token has expired")
	ErrTokenIsNotRefresh    = errors.New("token is not a refresh token")
	ErrTokenIsNotAccess     = errors.New("token is not an access token")

	// Authentication
	ErrEmptyAuthHeader    = errors.New("authorization header is missing")
	ErrInvalidAuthHeader  = errors.New("malformed authorization header")
	ErrInvalidCredentials = errors.New("invalid email or password")

	// Context
	ErrActorNotFoundInContext = errors.New("caller identity not found in request context")
)

// HttpError is the structured error every service returns across the
// presentation boundary. Code doubles as the error kind: 400 validation,
// 403 authorization, 404 not found, 409 conflict.
type HttpError struct {
	Code    int
	Message string
	Err     error
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err}
}

func NewValidationError(format string, args ...interface{}) *HttpError {
	return &HttpError{Code: http.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}

func NewAuthorizationError(format string, args ...interface{}) *HttpError {
	return &HttpError{Code: http.StatusForbidden, Message: fmt.Sprintf(format, args...)}
}

func NewNotFoundError(format string, args ...interface{}) *HttpError {
	return &HttpError{Code: http.StatusNotFound, Message: fmt.Sprintf(format, args...)}
}

func NewConflictError(format string, args ...interface{}) *HttpError {
	return &HttpError{Code: http.StatusConflict, Message: fmt.Sprintf(format, args...)}
}

func isCode(err error, code int) bool {
	var httpErr *HttpError
	return errors.As(err, &httpErr) && httpErr.Code == code
}

func IsValidation(err error) bool    { return isCode(err, http.StatusBadRequest) }
func IsAuthorization(err error) bool { return isCode(err, http.StatusForbidden) }
func IsNotFound(err error) bool      { return isCode(err, http.StatusNotFound) }
func IsConflict(err error) bool      { return isCode(err, http.StatusConflict) }
