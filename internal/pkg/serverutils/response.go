package serverutils

type BaseResponse[T any] struct {
	Success bool                `json:"success"`
	Code    int                 `json:"code"`
	Message string              `json:"message"`
	Data    T                   `json:"data"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

func SuccessResponse[T any](message string, data T) BaseResponse[T] {
	return BaseResponse[T]{
		Success: true,
		Code:    200,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(code int, message string) BaseResponse[any] {
	return BaseResponse[any]{
		Success: false,
		Code:    code,
		Message: message,
	}
}

// ValidationErrorResponse carries field level errors alongside the payload
// the client needs to redisplay its form.
func ValidationErrorResponse[T any](message string, data T, errors map[string][]string) BaseResponse[T] {
	return BaseResponse[T]{
		Success: false,
		Code:    400,
		Message: message,
		Data:    data,
		Errors:  errors,
	}
}
