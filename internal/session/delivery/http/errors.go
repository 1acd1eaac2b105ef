package http

import (
	"errors"
	"net/http"

	"partner-dashboard-srv/internal/session"
	pkgErrors "partner-dashboard-srv/pkg/errors"
)

var (
	errSessionRequired = pkgErrors.NewHTTPError(http.StatusUnauthorized, "Session is required")
	errInvalidPage     = pkgErrors.NewHTTPError(http.StatusBadRequest, "Unknown page")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, session.ErrSessionRequired):
		return errSessionRequired
	case errors.Is(err, errUnknownPage):
		return errInvalidPage
	default:
		panic(err)
	}
}
