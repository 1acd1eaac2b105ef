package country

import "errors"

var (
	ErrNoPositiveCountries = errors.New("country: no countries with positive revenue")
	ErrCountryNotFound     = errors.New("country: country has no positive revenue in the window")
)
