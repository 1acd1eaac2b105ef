package log

const (
	ModeProduction  = "production"
	ModeDevelopment = "debug"

	EncodingConsole = "console"
	EncodingJSON    = "json"
)

type ctxKey string

// RequestIDKey carries the request id attached by middleware.
const RequestIDKey ctxKey = "request_id"

// SessionIDKey carries the browser session id attached by middleware.
const SessionIDKey ctxKey = "session_id"
