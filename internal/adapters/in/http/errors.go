package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/AbnerVital/7KDelivery/internal/core/application/usecases/commands"
	"github.com/AbnerVital/7KDelivery/internal/core/domain/model/order"
	"github.com/AbnerVital/7KDelivery/internal/core/domain/services"
	"github.com/AbnerVital/7KDelivery/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError maps application errors onto HTTP status codes. Unexpected
// errors are logged and answered with a generic 500 so internals never leak.
func respondError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, order.ErrInvalidTransition):
		return ctx.JSON(http.StatusConflict, errorJSON{Error: err.Error()})

	case errors.Is(err, commands.ErrNotResourceOwner):
		return ctx.JSON(http.StatusUnauthorized, errorJSON{Error: err.Error()})

	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, errorJSON{Error: err.Error()})

	case errors.Is(err, commands.ErrProductUnavailable),
		errors.Is(err, commands.ErrMinimumOrderNotMet),
		errors.Is(err, services.ErrStoreLocationNotConfigured),
		errors.Is(err, services.ErrCoordinatesRequired),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, errorJSON{Error: err.Error()})

	default:
		slog.Error("request failed", "method", ctx.Request().Method, "path", ctx.Path(), "error", err)
		return ctx.JSON(http.StatusInternalServerError, errorJSON{Error: "internal server error"})
	}
}

func respondBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorJSON{Error: message})
}
