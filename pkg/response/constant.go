package response

const (
	// DefaultStackTraceDepth limits captured frames for bug reports.
	DefaultStackTraceDepth = 32
	// DefaultErrorMessage hides internal details from clients.
	DefaultErrorMessage = "Something went wrong"
	// MessageSuccess is the message for successful responses.
	MessageSuccess = "Success"

	ValidationErrorCode     = 400
	ValidationErrorMsg      = "Validation error"
	InternalServerErrorCode = 500

	// DateFormat and DateTimeFormat are the wire formats for Date/DateTime.
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"

	// DiscordMaxMessageLen is the chunk size for webhook bug reports.
	DiscordMaxMessageLen = 2000
)
