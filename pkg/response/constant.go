package response

// Error codes carried in Resp.ErrorCode. Zero means success; the other
// codes let clients branch without parsing messages.
const (
	CodeOK          = 0
	CodeBadRequest  = 1
	CodeRateLimited = 429
	CodeInternal    = 500
)

const (
	// MessageSuccess is the message of a successful response.
	MessageSuccess = "Success"

	// DefaultErrorMessage hides internal error detail from clients.
	DefaultErrorMessage = "Something went wrong"

	// MessageRateLimited is returned when a client exceeds its request budget.
	MessageRateLimited = "too many requests, slow down"
)
