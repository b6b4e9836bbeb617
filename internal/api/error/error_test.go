package error

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/matt-dz/cookingpuppy/internal/recipe"
)

func TestStatusCode(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want int
	}{
		{BadRequest, http.StatusBadRequest},
		{ValidationError, http.StatusUnprocessableEntity},
		{PersistenceError, http.StatusInternalServerError},
		{IngredientMismatch, http.StatusUnprocessableEntity},
		{ImportNotConfigured, http.StatusServiceUnavailable},
		{UnknownError, 0},
		{"made_up", 0},
	}

	for _, tt := range tests {
		if got := tt.code.StatusCode(); got != tt.want {
			t.Errorf("%s.StatusCode() = %d, want %d", tt.code, got, tt.want)
		}
	}
}

func TestEncodeError(t *testing.T) {
	w := httptest.NewRecorder()
	if err := EncodeError(w, BadRequest, "malformed json", "42"); err != nil {
		t.Fatalf("EncodeError() error = %v", err)
	}

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
	var body Error
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	want := Error{Status: 400, Code: BadRequest, Message: "malformed json", ErrorID: "42"}
	if body.Status != want.Status || body.Code != want.Code || body.Message != want.Message || body.ErrorID != want.ErrorID {
		t.Errorf("body = %+v, want %+v", body, want)
	}
	if body.Fields != nil {
		t.Errorf("fields = %+v, want none", body.Fields)
	}
}

func TestEncodeUnknownCode(t *testing.T) {
	w := httptest.NewRecorder()
	_ = EncodeError(w, UnknownError, "??", "1")
	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", w.Code)
	}
}

func TestEncodeValidationError(t *testing.T) {
	w := httptest.NewRecorder()
	verr := &recipe.ValidationError{Fields: []recipe.FieldError{{Field: "name", Message: "must not be empty"}}}
	if err := EncodeValidationError(w, verr, "7"); err != nil {
		t.Fatalf("EncodeValidationError() error = %v", err)
	}

	if w.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422", w.Code)
	}
	var body Error
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if body.Code != ValidationError || len(body.Fields) != 1 || body.Fields[0].Field != "name" {
		t.Errorf("body = %+v", body)
	}
}
