package serverutils

// Response is the envelope for endpoints whose payload shape is ours to
// choose. Endpoints with an externally-fixed wire contract (index and query
// responses) return their DTOs unwrapped instead.
type Response[T any] struct {
	Message string `json:"message"`
	Data    T      `json:"data"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Message: message,
		Data:    data,
	}
}
