package utils

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	apperrors "gearguard/pkg/errors"
)

type HttpResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Body    interface{} `json:"body,omitempty"`
}

func SuccessResponse(ctx echo.Context, body interface{}, message string, code int) error {
	return ctx.JSON(code, &HttpResponse{
		Status:  true,
		Message: message,
		Body:    body,
	})
}

// ErrorResponse maps domain errors to HTTP statuses. Auth plumbing errors
// become 401; structured HttpErrors carry their own code; everything else is
// an internal error with a generic message.
func ErrorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	message := "internal server error"

	var httpErr *apperrors.HttpError
	var validationErrs validator.ValidationErrors
	var echoErr *echo.HTTPError
	switch {
	case errors.As(err, &httpErr):
		code = httpErr.Code
		message = httpErr.Message
	case errors.As(err, &validationErrs):
		code = http.StatusBadRequest
		message = err.Error()
	case errors.As(err, &echoErr):
		// Bind failures surface as echo.HTTPError with their own code.
		code = echoErr.Code
		message = fmt.Sprint(echoErr.Message)
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		code = http.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, apperrors.ErrEmptyAuthHeader),
		errors.Is(err, apperrors.ErrInvalidAuthHeader),
		errors.Is(err, apperrors.ErrInvalidToken),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenIsNotRefresh),
		errors.Is(err, apperrors.ErrTokenIsNotAccess),
		errors.Is(err, apperrors.ErrActorNotFoundInContext):
		code = http.StatusUnauthorized
		message = err.Error()
	}

	return ctx.JSON(code, &HttpResponse{
		Status:  false,
		Message: message,
	})
}
