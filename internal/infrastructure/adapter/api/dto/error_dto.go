package dto

// Response is the envelope every endpoint answers with.
// Status 0 means success, anything else is an application error code.
type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}
