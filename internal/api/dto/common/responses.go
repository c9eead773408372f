package common

// APIResponse is the envelope returned by every contact relay endpoint
type APIResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// Client-facing error messages. Internal detail never reaches the caller.
const (
	MsgInvalidJSON       = "Invalid JSON"
	MsgRecaptchaRequired = "reCAPTCHA token required"
	MsgRecaptchaFailed   = "reCAPTCHA verification failed"
	MsgSendFailed        = "Failed to send email"
	MsgInternalServer    = "Internal server error"
)

// NewSuccessResponse creates a new successful API response
func NewSuccessResponse() APIResponse {
	return APIResponse{OK: true}
}

// NewErrorResponse creates a new error API response
func NewErrorResponse(message string) APIResponse {
	return APIResponse{
		OK:    false,
		Error: message,
	}
}
