package http

import (
	"errors"
	"net/http"

	"tracker/internal/core/application/usecases/commands"
	"tracker/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps domain error kinds to HTTP status codes. Anything the
// mapping does not recognize is a 500; domain errors never hide behind
// success responses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, commands.ErrCallerNotPrivileged):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrInsufficientCustody):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrDuplicateTimeRecord):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes the mapped error response.
func fail(ctx echo.Context, err error) error {
	code := statusFor(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "internal error"
	}
	return ctx.JSON(code, Error{Code: code, Message: message})
}
