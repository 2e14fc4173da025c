package http

const (
	CodeUnknown          = "UNKNOWN"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeInvalidJSON      = "INVALID_JSON"
	CodeInvalidForm      = "INVALID_FORM"
	CodeRateLimited      = "RATE_LIMITED"
	CodeRequestTooLarge  = "REQUEST_TOO_LARGE"
)
