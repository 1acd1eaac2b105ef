package paginator

const (
	DefaultPage = 1
	// DefaultLimit is the upload history page size.
	DefaultLimit = 20
	MaxLimit     = 100
)
