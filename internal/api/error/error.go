// Package error contains the API error body and its codes.
package error

import (
	"fmt"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/matt-dz/cookingpuppy/internal/recipe"
)

type Error struct {
	Status  int                 `json:"status"`
	Code    ErrorCode           `json:"code"`
	Message string              `json:"message"`
	ErrorID string              `json:"error_id"`
	Fields  []recipe.FieldError `json:"fields,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d %s: %s", e.Status, e.Code, e.Message)
}

func New(code ErrorCode, message, errorID string) *Error {
	status := code.StatusCode()
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return &Error{
		Status:  status,
		Code:    code,
		Message: message,
		ErrorID: errorID,
	}
}

// Encode writes e as the response.
func (e *Error) Encode(w http.ResponseWriter) error {
	body, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("marshaling error body: %w", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.Status)
	if _, err := w.Write(body); err != nil {
		return fmt.Errorf("writing error body: %w", err)
	}
	return nil
}

func EncodeError(w http.ResponseWriter, code ErrorCode, message, errorID string) error {
	return New(code, message, errorID).Encode(w)
}

func EncodeInternalError(w http.ResponseWriter, errorID string) error {
	return EncodeError(w, InternalServerError, "internal server error", errorID)
}

// EncodeValidationError reports every invalid field of a submission.
func EncodeValidationError(w http.ResponseWriter, verr *recipe.ValidationError, errorID string) error {
	e := New(ValidationError, "recipe is invalid", errorID)
	e.Fields = verr.Fields
	return e.Encode(w)
}
