package overall

import "errors"

var ErrNoDataEitherSource = errors.New("overall: no data available from either source")
