package datasource

import "errors"

var (
	ErrCombinedUnavailable = errors.New("datasource: combined analysis needs both data sources")
	ErrSourceUnavailable   = errors.New("datasource: requested data source has not been uploaded")
	ErrNoFile              = errors.New("datasource: no file processed yet")
)
