package dto

// ErrorResponse is the error body returned by every endpoint. Code is the
// machine-readable error kind; Message is safe to show to a user.
type ErrorResponse struct {
	Code    string   `json:"code,omitempty"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}
