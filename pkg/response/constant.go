package response

// Response messages and codes.
const (
	MessageSuccess          = "Success"
	DefaultErrorMessage     = "Something went wrong"
	InternalServerErrorCode = 500

	// DateTimeFormat is the wire format for timestamps in API responses.
	DateTimeFormat = "2006-01-02T15:04:05Z07:00"
)
