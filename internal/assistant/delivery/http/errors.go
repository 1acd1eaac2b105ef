package http

import (
	"errors"
	"net/http"

	"partner-dashboard-srv/internal/assistant"
	"partner-dashboard-srv/internal/datasource"
	"partner-dashboard-srv/internal/model"
	"partner-dashboard-srv/internal/session"
	pkgErrors "partner-dashboard-srv/pkg/errors"
)

var (
	errNoFile              = pkgErrors.NewHTTPError(http.StatusNotFound, "No file processed yet. Please upload a file first.")
	errInvalidSource       = pkgErrors.NewHTTPError(http.StatusBadRequest, "Unknown data source.")
	errSourceUnavailable   = pkgErrors.NewHTTPError(http.StatusBadRequest, "The selected data source has not been uploaded.")
	errCombinedUnavailable = pkgErrors.NewHTTPError(http.StatusBadRequest, "Both data sources must be available for combined analysis.")
	errSessionRequired     = pkgErrors.NewHTTPError(http.StatusUnauthorized, "Session is required")
	errEmptyQuery          = pkgErrors.NewHTTPError(http.StatusBadRequest, "Message is empty")
)

func (h *handler) mapError(err error) error {
	var validationErr *pkgErrors.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return validationErr
	case errors.Is(err, datasource.ErrNoFile):
		return errNoFile
	case errors.Is(err, model.ErrUnknownDataSource):
		return errInvalidSource
	case errors.Is(err, datasource.ErrSourceUnavailable):
		return errSourceUnavailable
	case errors.Is(err, datasource.ErrCombinedUnavailable):
		return errCombinedUnavailable
	case errors.Is(err, session.ErrSessionRequired):
		return errSessionRequired
	case errors.Is(err, assistant.ErrEmptyQuery):
		return errEmptyQuery
	}
	panic(err)
}
