package session

import "errors"

var (
	ErrSessionRequired = errors.New("session: session id is required")
	ErrInvalidSource   = errors.New("session: source must be myAffiliate or dynamicWorks")
	ErrFileIDRequired  = errors.New("session: file id is required")
	ErrNothingToCommit = errors.New("session: no file id to commit")
)
