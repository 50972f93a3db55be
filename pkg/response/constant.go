package response

const (
	MessageSuccess = "Success"
	// UnknownErrorCode is reported for errors that are not a pkg/errors HTTPError.
	UnknownErrorCode = 1

	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04:05"
)
