package response

const (
	// DateFormat is the wire format for Date values.
	DateFormat = "2006-01-02"
	// DateTimeFormat is the wire format for DateTime values.
	DateTimeFormat = "2006-01-02 15:04:05"

	MessageSuccess  = "Success"
	MessageInternal = "Something went wrong"

	ErrorCodeSuccess = 0
)
