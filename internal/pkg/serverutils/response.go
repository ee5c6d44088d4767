package serverutils

// SuccessEnvelope is the standard success body: {success, message, data}.
type SuccessEnvelope[T any] struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

func SuccessResponse[T any](message string, data T) SuccessEnvelope[T] {
	return SuccessEnvelope[T]{
		Success: true,
		Message: message,
		Data:    data,
	}
}

// ErrorEnvelope is the standard failure body: {success:false, code, message}.
type ErrorEnvelope struct {
	Success bool   `json:"success"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func ErrorResponse(code int, message string) ErrorEnvelope {
	return ErrorEnvelope{
		Success: false,
		Code:    code,
		Message: message,
	}
}
