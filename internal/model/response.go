package model

// APIResponse is the uniform envelope every endpoint returns.
// Success sets Error to null; failure sets Data to null.
type APIResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
	Error   any    `json:"error"`
}

// ErrorDetail carries the store's structured error when one is available.
type ErrorDetail struct {
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

func Success(message string, data any) APIResponse {
	return APIResponse{Message: message, Data: data}
}

func Fail(message string, detail any) APIResponse {
	return APIResponse{Message: message, Error: detail}
}

type PingResponse struct {
	Message string `json:"message"`
}

type RootResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
