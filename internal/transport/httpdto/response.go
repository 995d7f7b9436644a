package httpdto

// ErrorResponse is the JSON error body. Validation failures on the
// signup/login/resetPassword/addMessage routes respond with plain text
// instead; that asymmetry is part of the wire contract.
type ErrorResponse struct {
	Error string `json:"error"`
}

func NewErrorResponse(err string) ErrorResponse {
	return ErrorResponse{Error: err}
}
