package http

import (
	"errors"
	"net/http"

	"partner-dashboard-srv/internal/datasource"
	"partner-dashboard-srv/internal/model"
	"partner-dashboard-srv/internal/partner"
	"partner-dashboard-srv/internal/session"
	"partner-dashboard-srv/pkg/analysisapi"
	pkgErrors "partner-dashboard-srv/pkg/errors"
	"partner-dashboard-srv/pkg/generation"
)

var (
	errNoFile              = pkgErrors.NewHTTPError(http.StatusNotFound, "No file processed yet. Please upload a file first.")
	errInvalidSource       = pkgErrors.NewHTTPError(http.StatusBadRequest, "Unknown data source.")
	errSourceUnavailable   = pkgErrors.NewHTTPError(http.StatusBadRequest, "The selected data source has not been uploaded.")
	errCombinedUnavailable = pkgErrors.NewHTTPError(http.StatusBadRequest, "Both data sources must be available for combined analysis.")
	errSuperseded          = pkgErrors.NewHTTPError(http.StatusConflict, "A newer request replaced this one.")
	errSessionRequired     = pkgErrors.NewHTTPError(http.StatusUnauthorized, "Session is required")
	errInvalidTab          = pkgErrors.NewHTTPError(http.StatusBadRequest, "Tab must be positive, top or underperforming.")
	errInvalidPreset       = pkgErrors.NewHTTPError(http.StatusBadRequest, "Unknown date preset.")
	errInvalidDate         = pkgErrors.NewHTTPError(http.StatusBadRequest, "Dates must be in YYYY-MM-DD format.")
	errInvalidDateRange    = pkgErrors.NewHTTPError(http.StatusBadRequest, "Start date must not be after end date.")
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
	case errors.Is(err, generation.ErrSuperseded):
		return errSuperseded
	case errors.Is(err, session.ErrSessionRequired):
		return errSessionRequired
	case errors.Is(err, partner.ErrInvalidTab):
		return errInvalidTab
	case errors.Is(err, partner.ErrInvalidPreset):
		return errInvalidPreset
	case errors.Is(err, partner.ErrInvalidDate):
		return errInvalidDate
	case errors.Is(err, partner.ErrInvalidDateRange):
		return errInvalidDateRange
	}
	if httpErr, ok := analysisapi.ToHTTPError(err); ok {
		return httpErr
	}
	panic(err)
}
