package dto

// APIResponse is the success envelope every endpoint returns.
type APIResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// ErrorResponse is the error envelope: a single human-readable message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewAPIResponse creates a success envelope.
func NewAPIResponse(message string, data interface{}) APIResponse {
	return APIResponse{Message: message, Data: data}
}

// NewErrorResponse creates an error envelope.
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: message}
}
