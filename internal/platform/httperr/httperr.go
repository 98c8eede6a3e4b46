// Package httperr maps store failure kinds onto HTTP errors at the echo
// boundary.
package httperr

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/safetynet/alerts/internal/platform/datastore"
)

// From converts a store or directory error into an echo HTTP error.
// NotFound maps to 404, AlreadyExists to 409, InvalidInput to 400;
// anything else is a 500.
func From(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, datastore.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, datastore.ErrAlreadyExists):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, datastore.ErrInvalidInput):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
