package dto

// Response is the JSON envelope every API endpoint replies with.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

// OK builds a success envelope.
func OK(data interface{}, message string) Response {
	return Response{Success: true, Data: data, Message: message}
}

// Fail builds an error envelope. err is the short machine-ish label, message
// the human-readable explanation.
func Fail(err, message string) Response {
	return Response{Success: false, Error: err, Message: message}
}
