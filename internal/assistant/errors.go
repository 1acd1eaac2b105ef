package assistant

import "errors"

var ErrEmptyQuery = errors.New("assistant: query is empty")
