package response

const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong, please try again later"

	InternalServerErrorCode = 500
	TooManyRequestsCode     = 429

	// The appointment domain speaks DD-MM-YYYY everywhere, so the response
	// layer marshals dates the same way.
	DateFormat     = "02-01-2006"
	DateTimeFormat = "02-01-2006 15:04"
)
