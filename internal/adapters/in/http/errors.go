package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"backoffice/internal/core/application/usecases/commands"
	"backoffice/internal/pkg/errs"
)

// writeError maps application errors to HTTP status codes. Domain and
// validation failures carry their message to the client; anything
// unrecognized is suppressed to a generic 500 so internals never leak.
func writeError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return writeErrorResponse(ctx, http.StatusNotFound, err.Error())

	case errors.Is(err, commands.ErrInvalidCredentials),
		errors.Is(err, commands.ErrRefreshTokenInvalid),
		errors.Is(err, commands.ErrRefreshTokenExpired):
		return writeErrorResponse(ctx, http.StatusUnauthorized, err.Error())

	case errors.Is(err, commands.ErrAccountDisabled):
		return writeErrorResponse(ctx, http.StatusForbidden, err.Error())

	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return writeErrorResponse(ctx, http.StatusBadRequest, err.Error())

	default:
		return writeErrorResponse(ctx, http.StatusInternalServerError, "internal server error")
	}
}

func writeErrorResponse(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}
