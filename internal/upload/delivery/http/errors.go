package http

import (
	"errors"
	"net/http"

	"partner-dashboard-srv/internal/session"
	"partner-dashboard-srv/internal/upload"
	"partner-dashboard-srv/pkg/analysisapi"
	pkgErrors "partner-dashboard-srv/pkg/errors"
)

var (
	errNoFileSelected   = pkgErrors.NewHTTPError(http.StatusBadRequest, "Please select at least one file to upload.")
	errInvalidExtension = pkgErrors.NewHTTPError(http.StatusBadRequest, "Only .xlsx files are accepted.")
	errInvalidWorkbook  = pkgErrors.NewHTTPError(http.StatusBadRequest, "The file could not be read as an Excel workbook.")
	errFileTooLarge     = pkgErrors.NewHTTPError(http.StatusRequestEntityTooLarge, "The file is too large.")
	errDuplicateSource  = pkgErrors.NewHTTPError(http.StatusBadRequest, "Only one file per data source can be uploaded.")
	errInvalidSource    = pkgErrors.NewHTTPError(http.StatusBadRequest, "Source must be myAffiliate or dynamicWorks.")
	errFileIDRequired   = pkgErrors.NewHTTPError(http.StatusBadRequest, "File id is required.")
	errLoadStoredFiles  = pkgErrors.NewHTTPError(http.StatusBadGateway, "Failed to load previously uploaded files.")
	errProgressNotFound = pkgErrors.NewHTTPError(http.StatusNotFound, "Unknown upload.")
	errHistoryDisabled  = pkgErrors.NewHTTPError(http.StatusNotFound, "Upload history is not enabled.")
	errSessionRequired  = pkgErrors.NewHTTPError(http.StatusUnauthorized, "Session is required")
	errUnreadableFile   = pkgErrors.NewHTTPError(http.StatusBadRequest, "The uploaded file could not be read.")
)

func (h *handler) mapError(err error) error {
	var validationErr *pkgErrors.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return validationErr
	case errors.Is(err, upload.ErrNoFileSelected):
		return errNoFileSelected
	case errors.Is(err, upload.ErrInvalidExtension):
		return errInvalidExtension
	case errors.Is(err, upload.ErrInvalidWorkbook):
		return errInvalidWorkbook
	case errors.Is(err, upload.ErrFileTooLarge):
		return errFileTooLarge
	case errors.Is(err, upload.ErrDuplicateSource):
		return errDuplicateSource
	case errors.Is(err, upload.ErrInvalidSource), errors.Is(err, session.ErrInvalidSource):
		return errInvalidSource
	case errors.Is(err, upload.ErrFileIDRequired), errors.Is(err, session.ErrFileIDRequired):
		return errFileIDRequired
	case errors.Is(err, upload.ErrLoadStoredFiles):
		return errLoadStoredFiles
	case errors.Is(err, upload.ErrProgressNotFound):
		return errProgressNotFound
	case errors.Is(err, upload.ErrHistoryDisabled):
		return errHistoryDisabled
	case errors.Is(err, session.ErrSessionRequired):
		return errSessionRequired
	case errors.Is(err, errUnreadablePart):
		return errUnreadableFile
	}
	if httpErr, ok := analysisapi.ToHTTPError(err); ok {
		return httpErr
	}
	panic(err)
}
