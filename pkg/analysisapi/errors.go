package analysisapi

import (
	"errors"
	"fmt"
	"net/http"

	pkgErrors "partner-dashboard-srv/pkg/errors"
)

var (
	ErrFileIDRequired      = errors.New("analysisapi: file id is required")
	ErrInvalidSource       = errors.New("analysisapi: source must be myAffiliate or dynamicWorks")
	ErrComparisonNeedsBoth = errors.New("analysisapi: both data sources must be available for comparison")
	ErrUnavailable         = errors.New("analysisapi: analysis service unavailable")
)

// APIError is an error reported by the analysis service in an {"error": "..."} body.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("analysisapi: %d: %s", e.StatusCode, e.Message)
}

// ClientStatus is the status to relay to our own caller: 4xx passes through,
// anything else is reported as a bad gateway.
func (e *APIError) ClientStatus() int {
	if e.StatusCode >= 400 && e.StatusCode < 500 {
		return e.StatusCode
	}
	return http.StatusBadGateway
}

// Message returns the human-readable text for err: the service's own message,
// the transport failure text, or err's text.
func Message(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	var te *transportError
	if errors.As(err, &te) {
		return te.Err.Error()
	}
	return err.Error()
}

type transportError struct {
	Op  string
	Err error
}

func (e *transportError) Error() string {
	return fmt.Sprintf("analysisapi: %s: %v", e.Op, e.Err)
}

func (e *transportError) Unwrap() error { return e.Err }

func (e *transportError) Is(target error) bool { return target == ErrUnavailable }

// ToHTTPError converts a remote failure into the error relayed to our caller.
// The second result is false for errors that did not come from the analysis service.
func ToHTTPError(err error) (*pkgErrors.HTTPError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return pkgErrors.NewHTTPError(apiErr.ClientStatus(), apiErr.Message), true
	}
	if errors.Is(err, ErrUnavailable) {
		return pkgErrors.NewHTTPError(http.StatusBadGateway, Message(err)), true
	}
	return nil, false
}
