package dto

// ErrorResponse is the uniform error body: a domain error code plus a
// human-readable message. Internal failures carry a masked message.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
