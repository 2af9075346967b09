package dto

// ErrorResponse is the JSON body returned for every failed request.
// Internal failures carry a generic message; raw error text is never leaked.
type ErrorResponse struct {
	Error string `json:"error" example:"course not found"`
}

// NewErrorResponse creates a standard error response
func NewErrorResponse(message string) *ErrorResponse {
	return &ErrorResponse{Error: message}
}
