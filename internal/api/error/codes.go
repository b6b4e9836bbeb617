package error

import "net/http"

type ErrorCode string

const (
	UnknownError        ErrorCode = "unknown_error"
	InternalServerError ErrorCode = "internal_server_error"
	BadRequest          ErrorCode = "bad_request"
	ValidationError     ErrorCode = "validation_error"
	PersistenceError    ErrorCode = "persistence_error"
	IngredientMismatch  ErrorCode = "ingredient_mismatch"
	InvalidServings     ErrorCode = "invalid_servings"
	ImportNotConfigured ErrorCode = "import_not_configured"
	TooManyRequests     ErrorCode = "too_many_requests"
)

var errorCodeToStatusCode = map[ErrorCode]int{
	UnknownError:        0, // No error code - unknown
	InternalServerError: http.StatusInternalServerError,
	BadRequest:          http.StatusBadRequest,
	ValidationError:     http.StatusUnprocessableEntity,
	PersistenceError:    http.StatusInternalServerError,
	IngredientMismatch:  http.StatusUnprocessableEntity,
	InvalidServings:     http.StatusUnprocessableEntity,
	ImportNotConfigured: http.StatusServiceUnavailable,
	TooManyRequests:     http.StatusTooManyRequests,
}

func (ec ErrorCode) StatusCode() int {
	return errorCodeToStatusCode[ec]
}

func (ec ErrorCode) String() string {
	return string(ec)
}
